package payment

import (
	"regexp"
	"strconv"
)

// amountPattern admits digits with at most one decimal point
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// ValidateAmount gates the payment form's amount field. It accepts a plain
// decimal that parses to a positive number; everything else is rejected
// the same way.
func ValidateAmount(input string) (float64, bool) {
	if input == "" || !amountPattern.MatchString(input) {
		return 0, false
	}

	amount, err := strconv.ParseFloat(input, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}

	return amount, true
}
