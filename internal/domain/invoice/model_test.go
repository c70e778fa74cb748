package invoice

import (
	"testing"
	"time"

	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/types"
	"github.com/invocli/invocli/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	validator.NewValidator()
}

func sampleInvoice() *Invoice {
	return &Invoice{
		From:     "Your Company, Inc.",
		To:       "Your Customer, Inc.",
		Items:    []Item{{Item: "Widget", Quantity: 2, Rate: 150}},
		Tax:      8,
		Discount: 5,
		Currency: "USD",
	}
}

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 20, want: "0.2"},
		{in: 0.2, want: "0.2"},
		{in: 1, want: "0.01"},
		{in: 0, want: "0"},
		{in: 0.999, want: "0.999"},
		{in: 100, want: "1"},
		{in: 7.5, want: "0.075"},
	}
	for _, tt := range tests {
		got := NormalizeRate(tt.in)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "NormalizeRate(%v) = %s", tt.in, got)
	}
}

func TestInvoice_Normalize(t *testing.T) {
	inv := &Invoice{
		From:     "  Acme ",
		To:       "Globex",
		Items:    []Item{{Item: " Consulting ", Quantity: 1, Rate: 10}},
		TaxType:  "INCLUSIVE",
		Currency: " ",
	}
	inv.Normalize(Defaults{Currency: "EUR", TaxMode: types.TaxModeExclusive})

	assert.Equal(t, "Acme", inv.From)
	assert.Equal(t, "Consulting", inv.Items[0].Item)
	assert.Equal(t, "EUR", inv.Currency)
	assert.Equal(t, types.TaxModeInclusive, inv.TaxType)

	empty := &Invoice{}
	empty.Normalize(Defaults{})
	assert.Equal(t, "USD", empty.Currency)
	assert.Equal(t, types.TaxModeExclusive, empty.TaxType)
}

func TestInvoice_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(inv *Invoice)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Invoice) {}},
		{name: "no_items", mutate: func(inv *Invoice) { inv.Items = nil }, wantErr: true},
		{name: "missing_sender", mutate: func(inv *Invoice) { inv.From = "" }, wantErr: true},
		{name: "zero_quantity", mutate: func(inv *Invoice) { inv.Items[0].Quantity = 0 }, wantErr: true},
		{name: "negative_rate", mutate: func(inv *Invoice) { inv.Items[0].Rate = -1 }, wantErr: true},
		{name: "tax_above_hundred", mutate: func(inv *Invoice) { inv.Tax = 120 }, wantErr: true},
		{name: "bad_email", mutate: func(inv *Invoice) { inv.ToEmail = "nope" }, wantErr: true},
		{name: "bad_tax_type", mutate: func(inv *Invoice) { inv.TaxType = "gross" }, wantErr: true},
		{name: "bad_date", mutate: func(inv *Invoice) { inv.Date = "2024-02-30" }, wantErr: true},
		{name: "display_date", mutate: func(inv *Invoice) { inv.Date = "31.12.2024" }},
		{name: "custom_currency", mutate: func(inv *Invoice) { inv.Currency = "BTC" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := sampleInvoice()
			tt.mutate(inv)
			err := inv.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInvoice_Breakdown(t *testing.T) {
	inv := sampleInvoice()

	b, err := inv.Breakdown()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(b.GrossSubtotal))
	assert.True(t, decimal.NewFromFloat(307.8).Equal(b.Total))
	assert.Equal(t, types.TaxModeExclusive, b.TaxMode)

	// fractions and percentages price the same
	inv.Tax, inv.Discount = 0.08, 0.05
	again, err := inv.Breakdown()
	require.NoError(t, err)
	assert.True(t, b.Total.Equal(again.Total))

	inv.TaxType = types.TaxModeInclusive
	incl, err := inv.Breakdown()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(285).Equal(incl.Total))
}

func TestInvoice_IssueDate(t *testing.T) {
	now := time.Date(2025, 3, 9, 17, 45, 0, 0, time.Local)

	inv := sampleInvoice()
	got, err := inv.IssueDate(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local), got)

	inv.Date = "2024-07-01"
	got, err = inv.IssueDate(now)
	require.NoError(t, err)
	assert.Equal(t, "01.07.2024", got.Format(DisplayDateLayout))
}
