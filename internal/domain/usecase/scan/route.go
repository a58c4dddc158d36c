package scan

import (
	"fmt"
	"net/url"
	"strings"

	errs "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
)

// PaymentRouteTemplate is the payment-entry destination as registered with
// the presentation
const PaymentRouteTemplate = "payment/{name}/{upiId}?qrData={qrData}"

const (
	paymentRoutePrefix = "payment/"
	paramQRData        = "qrData"
)

// PaymentRoute builds the payment-entry destination for an intent:
// payment/{name}/{upiId}?qrData={payload}. Every value is form encoded,
// so spaces travel as '+'. The payload parameter is left out when empty.
func PaymentRoute(intent entity.PaymentIntent) string {
	route := paymentRoutePrefix + url.QueryEscape(intent.Name) + "/" + url.QueryEscape(intent.UpiID)
	if intent.RawPayload != "" {
		route += "?" + paramQRData + "=" + url.QueryEscape(intent.RawPayload)
	}
	return route
}

// ParsePaymentRoute decodes a route produced by PaymentRoute
func ParsePaymentRoute(route string) (entity.PaymentIntent, error) {
	rest, ok := strings.CutPrefix(route, paymentRoutePrefix)
	if !ok {
		return entity.PaymentIntent{}, fmt.Errorf("%w: not a payment route %q", errs.ErrInvalidRequest, route)
	}

	path, rawQuery, _ := strings.Cut(rest, "?")
	encodedName, encodedAddress, ok := strings.Cut(path, "/")
	if !ok || encodedAddress == "" {
		return entity.PaymentIntent{}, fmt.Errorf("%w: payment route %q has no address", errs.ErrInvalidRequest, route)
	}

	name, err := url.QueryUnescape(encodedName)
	if err != nil {
		return entity.PaymentIntent{}, fmt.Errorf("%w: bad name in %q: %v", errs.ErrInvalidRequest, route, err)
	}
	address, err := url.QueryUnescape(encodedAddress)
	if err != nil {
		return entity.PaymentIntent{}, fmt.Errorf("%w: bad address in %q: %v", errs.ErrInvalidRequest, route, err)
	}

	intent := entity.PaymentIntent{Name: name, UpiID: address}
	if rawQuery != "" {
		values, err := url.ParseQuery(rawQuery)
		if err != nil {
			return entity.PaymentIntent{}, fmt.Errorf("%w: bad query in %q: %v", errs.ErrInvalidRequest, route, err)
		}
		intent.RawPayload = values.Get(paramQRData)
	}

	return intent, nil
}
