package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupees(t *testing.T) {
	testCases := []struct {
		input    float64
		expected string
	}{
		{0, "₹0.00"},
		{0.5, "₹0.50"},
		{250, "₹250.00"},
		{1234.5, "₹1,234.50"},
		{99999.99, "₹99,999.99"},
		{100000, "₹1,00,000.00"},
		{12345678.9, "₹1,23,45,678.90"},
		{-1500, "-₹1,500.00"},
		{0.005, "₹0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatRupees(tc.input))
		})
	}
}

func TestFormatPlainAmount(t *testing.T) {
	assert.Equal(t, "₹250.00", FormatPlainAmount(250))
	assert.Equal(t, "₹1234.57", FormatPlainAmount(1234.567))
}

func TestTransactionFormattedAmount(t *testing.T) {
	tx := &Transaction{Amount: 150000}
	assert.Equal(t, "₹1,50,000.00", tx.FormattedAmount())
}
