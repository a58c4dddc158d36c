package scan

import (
	"net/url"
	"strings"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
)

// PaymentScheme is the prefix every payment payload starts with
const PaymentScheme = "upi://pay"

// Query parameters read from a payment payload. Everything else is ignored.
const (
	paramPayeeAddress = "pa"
	paramPayeeName    = "pn"
)

// ParseIntent extracts a payment intent from a scanned payload.
// ok is false unless the payload carries a non-blank payee address;
// a payload that does not parse as a URI counts as having none.
func ParseIntent(raw string) (entity.PaymentIntent, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return entity.PaymentIntent{}, false
	}

	query := u.Query()
	address := query.Get(paramPayeeAddress)
	if strings.TrimSpace(address) == "" {
		return entity.PaymentIntent{}, false
	}

	return entity.PaymentIntent{
		UpiID:      address,
		Name:       query.Get(paramPayeeName),
		RawPayload: raw,
	}, true
}

// IsPaymentPayload reports whether the text looks like a payment request
func IsPaymentPayload(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return len(trimmed) >= len(PaymentScheme) &&
		strings.EqualFold(trimmed[:len(PaymentScheme)], PaymentScheme)
}

// SelectPaymentPayload returns the first payment payload among the values
// decoded from one frame
func SelectPaymentPayload(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if IsPaymentPayload(candidate) {
			return candidate, true
		}
	}
	return "", false
}
