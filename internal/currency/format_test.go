package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "usd grouping", amount: "1234.5", code: "USD", want: "$1,234.50"},
		{name: "usd lower case code", amount: "1234.5", code: "usd", want: "$1,234.50"},
		{name: "usd padded code", amount: "10", code: "  USD ", want: "$10.00"},
		{name: "eur symbol right with space", amount: "1234.5", code: "EUR", want: "1 234,50 €"},
		{name: "jpy no decimals", amount: "1000", code: "JPY", want: "¥1,000"},
		{name: "jpy rounds half up", amount: "999.5", code: "JPY", want: "¥1,000"},
		{name: "chf apostrophe and space", amount: "1234.5", code: "CHF", want: "CHF 1'234.50"},
		{name: "try dot thousands", amount: "1234567.891", code: "TRY", want: "₺1.234.567,89"},
		{name: "dkk without thousands separator", amount: "1234567.5", code: "DKK", want: "1234567,50 kr."},
		{name: "brl left with space", amount: "1500", code: "BRL", want: "R$ 1.500,00"},
		{name: "small amount", amount: "7.005", code: "USD", want: "$7.01"},
		{name: "zero", amount: "0", code: "USD", want: "$0.00"},
		{name: "exactly three digits", amount: "999", code: "GBP", want: "£999.00"},
		{name: "six digits", amount: "123456", code: "GBP", want: "£123,456.00"},
		{name: "seven digits", amount: "1234567", code: "GBP", want: "£1,234,567.00"},
		{name: "negative keeps sign on number", amount: "-1234.5", code: "USD", want: "$-1,234.50"},
		{name: "negative right symbol", amount: "-1234.5", code: "EUR", want: "-1 234,50 €"},
		{name: "negative rounding to zero drops sign", amount: "-0.001", code: "USD", want: "$0.00"},
		{name: "unknown code falls back", amount: "42", code: "XXX", want: "42.00 XXX"},
		{name: "unknown code kept as given", amount: "1234.567", code: "abc", want: "1234.57 abc"},
		{name: "empty code falls back", amount: "5", code: "", want: "5.00 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tt.amount), tt.code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatFloat(1234.5, "USD"))
	assert.Equal(t, "₹307.80", FormatFloat(307.8, "INR"))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("USD"))
	assert.True(t, IsSupported("eur"))
	assert.True(t, IsSupported(" huf "))
	assert.False(t, IsSupported("XXX"))
	assert.False(t, IsSupported(""))
}

func TestCodes(t *testing.T) {
	codes := Codes()
	assert.Len(t, codes, 32)
	assert.IsIncreasing(t, codes)
	assert.Contains(t, codes, "VND")
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1", groupThousands("1", ","))
	assert.Equal(t, "1,000", groupThousands("1000", ","))
	assert.Equal(t, "10 000 000", groupThousands("10000000", " "))
	assert.Equal(t, "1000", groupThousands("1000", ""))
}
