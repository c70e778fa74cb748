package pricing

import (
	"testing"

	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func widgets() []LineItem {
	return []LineItem{{Description: "Widget", Quantity: d("2"), Rate: d("150")}}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, d(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual)
}

func TestComputeBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		params   Params
		expected Breakdown
	}{
		{
			name:  "exclusive_with_tax_and_discount",
			items: widgets(),
			params: Params{
				TaxRate:      d("0.08"),
				DiscountRate: d("0.05"),
				TaxMode:      types.TaxModeExclusive,
			},
			expected: Breakdown{
				GrossSubtotal:   d("300"),
				DiscountAmount:  d("15"),
				DiscountedTotal: d("285"),
				NetSubtotal:     d("285"),
				TaxAmount:       d("22.8"),
				Total:           d("307.8"),
			},
		},
		{
			name:  "inclusive_with_tax_and_discount",
			items: widgets(),
			params: Params{
				TaxRate:      d("0.08"),
				DiscountRate: d("0.05"),
				TaxMode:      types.TaxModeInclusive,
			},
			expected: Breakdown{
				GrossSubtotal:   d("300"),
				DiscountAmount:  d("15"),
				DiscountedTotal: d("285"),
				NetSubtotal:     d("285").Div(d("1.08")),
				TaxAmount:       d("285").Sub(d("285").Div(d("1.08"))),
				Total:           d("285"),
			},
		},
		{
			name: "multiple_items_no_discount",
			items: []LineItem{
				{Description: "Design", Quantity: d("3"), Rate: d("99.99")},
				{Description: "Hosting", Quantity: d("0.5"), Rate: d("20")},
			},
			params: Params{
				TaxRate:      d("0.2"),
				DiscountRate: decimal.Zero,
				TaxMode:      types.TaxModeExclusive,
			},
			expected: Breakdown{
				GrossSubtotal:   d("309.97"),
				DiscountAmount:  d("0"),
				DiscountedTotal: d("309.97"),
				NetSubtotal:     d("309.97"),
				TaxAmount:       d("61.994"),
				Total:           d("371.964"),
			},
		},
		{
			name:  "inclusive_full_tax_halves_total",
			items: widgets(),
			params: Params{
				TaxRate:      d("1"),
				DiscountRate: decimal.Zero,
				TaxMode:      types.TaxModeInclusive,
			},
			expected: Breakdown{
				GrossSubtotal:   d("300"),
				DiscountAmount:  d("0"),
				DiscountedTotal: d("300"),
				NetSubtotal:     d("150"),
				TaxAmount:       d("150"),
				Total:           d("300"),
			},
		},
		{
			name:  "full_discount",
			items: widgets(),
			params: Params{
				TaxRate:      d("0.1"),
				DiscountRate: d("1"),
				TaxMode:      types.TaxModeExclusive,
			},
			expected: Breakdown{
				GrossSubtotal:   d("300"),
				DiscountAmount:  d("300"),
				DiscountedTotal: d("0"),
				NetSubtotal:     d("0"),
				TaxAmount:       d("0"),
				Total:           d("0"),
			},
		},
		{
			name:  "empty_items",
			items: nil,
			params: Params{
				TaxRate:      d("0.18"),
				DiscountRate: d("0.1"),
				TaxMode:      types.TaxModeInclusive,
			},
			expected: Breakdown{
				GrossSubtotal:   d("0"),
				DiscountAmount:  d("0"),
				DiscountedTotal: d("0"),
				NetSubtotal:     d("0"),
				TaxAmount:       d("0"),
				Total:           d("0"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBreakdown(tt.items, tt.params)
			require.NoError(t, err)
			require.NotNil(t, got)

			assertDecimal(t, tt.expected.GrossSubtotal.String(), got.GrossSubtotal, "gross subtotal")
			assertDecimal(t, tt.expected.DiscountAmount.String(), got.DiscountAmount, "discount amount")
			assertDecimal(t, tt.expected.DiscountedTotal.String(), got.DiscountedTotal, "discounted total")
			assertDecimal(t, tt.expected.NetSubtotal.String(), got.NetSubtotal, "net subtotal")
			assertDecimal(t, tt.expected.TaxAmount.String(), got.TaxAmount, "tax amount")
			assertDecimal(t, tt.expected.Total.String(), got.Total, "total")
			assert.Equal(t, tt.params.TaxMode, got.TaxMode)
		})
	}
}

func TestComputeBreakdown_InclusiveExample(t *testing.T) {
	got, err := ComputeBreakdown(widgets(), Params{
		TaxRate:      d("0.08"),
		DiscountRate: d("0.05"),
		TaxMode:      types.TaxModeInclusive,
	})
	require.NoError(t, err)

	net, _ := got.NetSubtotal.Float64()
	tax, _ := got.TaxAmount.Float64()
	assert.InDelta(t, 263.8888888889, net, 1e-9)
	assert.InDelta(t, 21.1111111111, tax, 1e-9)
	assertDecimal(t, "285", got.Total, "total")
}

func TestComputeBreakdown_Invariants(t *testing.T) {
	items := []LineItem{
		{Description: "A", Quantity: d("7"), Rate: d("13.37")},
		{Description: "B", Quantity: d("1.25"), Rate: d("0.99")},
		{Description: "C", Quantity: d("100"), Rate: d("4.2")},
	}
	rates := []string{"0", "0.01", "0.075", "0.2", "0.5", "0.99", "1"}

	for _, mode := range []types.TaxMode{types.TaxModeExclusive, types.TaxModeInclusive} {
		for _, tax := range rates {
			for _, discount := range rates {
				got, err := ComputeBreakdown(items, Params{
					TaxRate:      d(tax),
					DiscountRate: d(discount),
					TaxMode:      mode,
				})
				require.NoError(t, err)

				label := string(mode) + " tax=" + tax + " discount=" + discount
				assert.True(t, got.Total.Equal(got.NetSubtotal.Add(got.TaxAmount)), "total = net + tax (%s)", label)
				assert.True(t, got.DiscountedTotal.Equal(got.GrossSubtotal.Sub(got.DiscountAmount)), "discounted = gross - discount (%s)", label)
				assert.False(t, got.NetSubtotal.IsNegative(), label)
				assert.False(t, got.TaxAmount.IsNegative(), label)
				if mode == types.TaxModeExclusive {
					assert.True(t, got.NetSubtotal.Equal(got.DiscountedTotal), label)
				}
			}
		}
	}
}

func TestComputeBreakdown_ModesAgreeWithoutTax(t *testing.T) {
	params := Params{TaxRate: decimal.Zero, DiscountRate: d("0.15")}

	params.TaxMode = types.TaxModeExclusive
	exclusive, err := ComputeBreakdown(widgets(), params)
	require.NoError(t, err)

	params.TaxMode = types.TaxModeInclusive
	inclusive, err := ComputeBreakdown(widgets(), params)
	require.NoError(t, err)

	assert.True(t, exclusive.Total.Equal(inclusive.Total))
	assert.True(t, exclusive.NetSubtotal.Equal(inclusive.NetSubtotal))
	assert.True(t, inclusive.TaxAmount.IsZero())
}

func TestComputeBreakdown_InvalidInput(t *testing.T) {
	valid := Params{TaxRate: d("0.1"), DiscountRate: d("0.1"), TaxMode: types.TaxModeExclusive}

	tests := []struct {
		name   string
		items  []LineItem
		params Params
	}{
		{
			name:   "zero_quantity",
			items:  []LineItem{{Description: "x", Quantity: decimal.Zero, Rate: d("1")}},
			params: valid,
		},
		{
			name:   "negative_rate",
			items:  []LineItem{{Description: "x", Quantity: d("1"), Rate: d("-5")}},
			params: valid,
		},
		{
			name:   "tax_rate_as_percentage",
			items:  widgets(),
			params: Params{TaxRate: d("20"), DiscountRate: decimal.Zero, TaxMode: types.TaxModeExclusive},
		},
		{
			name:   "negative_discount",
			items:  widgets(),
			params: Params{TaxRate: decimal.Zero, DiscountRate: d("-0.1"), TaxMode: types.TaxModeInclusive},
		},
		{
			name:   "discount_above_one",
			items:  widgets(),
			params: Params{TaxRate: decimal.Zero, DiscountRate: d("1.01"), TaxMode: types.TaxModeExclusive},
		},
		{
			name:   "unknown_mode",
			items:  widgets(),
			params: Params{TaxRate: d("0.1"), DiscountRate: decimal.Zero, TaxMode: "gross"},
		},
		{
			name:   "empty_mode",
			items:  widgets(),
			params: Params{TaxRate: d("0.1"), DiscountRate: decimal.Zero},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBreakdown(tt.items, tt.params)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, ierr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestNewCalculator(t *testing.T) {
	assert.IsType(t, &exclusiveCalculator{}, NewCalculator(types.TaxModeExclusive))
	assert.IsType(t, &inclusiveCalculator{}, NewCalculator(types.TaxModeInclusive))
	assert.IsType(t, &exclusiveCalculator{}, NewCalculator(""))

	// calculators validate on their own too
	_, err := NewCalculator(types.TaxModeInclusive).Calculate(
		[]LineItem{{Quantity: d("1"), Rate: d("0")}},
		Params{TaxMode: types.TaxModeInclusive},
	)
	assert.True(t, ierr.IsValidation(err))
}

func TestLineItem_Amount(t *testing.T) {
	item := LineItem{Quantity: d("2.5"), Rate: d("19.99")}
	assertDecimal(t, "49.975", item.Amount(), "amount")
}
