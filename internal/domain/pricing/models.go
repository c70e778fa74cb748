package pricing

import (
	"github.com/invocli/invocli/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem is a single billable row of an invoice.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// Amount is quantity times rate. It is never stored.
func (i LineItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Rate)
}

// Params holds the tax and discount terms applied to the items.
// Rates are fractions in [0,1]; percentages must be normalized by the caller.
type Params struct {
	TaxRate      decimal.Decimal // 0.08 for 8%
	DiscountRate decimal.Decimal // 0.05 for 5%
	TaxMode      types.TaxMode
}

// Breakdown is the result of a pricing calculation. All amounts are unrounded.
type Breakdown struct {
	GrossSubtotal   decimal.Decimal `json:"gross_subtotal"`   // sum of quantity x rate
	DiscountAmount  decimal.Decimal `json:"discount_amount"`  // gross x discount rate
	DiscountedTotal decimal.Decimal `json:"discounted_total"` // gross - discount
	NetSubtotal     decimal.Decimal `json:"net_subtotal"`     // pre-tax baseline
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
	TaxMode         types.TaxMode   `json:"tax_mode"`
}
