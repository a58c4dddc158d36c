package entity

import (
	"math"
	"strconv"
	"strings"
)

// RupeeSymbol prefixes every formatted amount
const RupeeSymbol = "₹"

// FormatRupees formats an amount with two decimals and Indian digit grouping:
// the last three integer digits form one group, the rest are grouped in pairs.
// For example:
// - 1234.5 becomes "₹1,234.50"
// - 100000 becomes "₹1,00,000.00"
func FormatRupees(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))

	whole := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	if negative && cents != 0 {
		b.WriteByte('-')
	}
	b.WriteString(RupeeSymbol)
	b.WriteString(groupIndian(whole))
	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// FormatPlainAmount renders the amount the way receipts show it: ₹250.00
func FormatPlainAmount(amount float64) string {
	return RupeeSymbol + strconv.FormatFloat(amount, 'f', 2, 64)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
