package entity

import (
	"fmt"
	"strings"
	"time"

	tport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// Reference layouts
const (
	transactionRefLayout = "060102150405" // yyMMddHHmmss, milliseconds appended separately
	utrDigits            = 12
	maskedAccountPrefix  = "XXXXXX"
)

// GenerateTransactionRef returns "T" + yyMMddHHmmssSSS + three random digits (100-999)
func GenerateTransactionRef(at time.Time, rnd tport.RandomSource) string {
	millis := at.Nanosecond() / int(time.Millisecond)
	suffix := tport.IntRange(rnd, 100, 999)
	return fmt.Sprintf("T%s%03d%d", at.Format(transactionRefLayout), millis, suffix)
}

// GenerateUtrNumber returns a 12-digit settlement reference
func GenerateUtrNumber(rnd tport.RandomSource) string {
	var b strings.Builder
	b.Grow(utrDigits)
	for i := 0; i < utrDigits; i++ {
		b.WriteByte(byte('0' + rnd.IntN(10)))
	}
	return b.String()
}

// GenerateMaskedAccount returns a masked funding account like XXXXXX1234
func GenerateMaskedAccount(rnd tport.RandomSource) string {
	return fmt.Sprintf("%s%d", maskedAccountPrefix, tport.IntRange(rnd, 1000, 9999))
}
