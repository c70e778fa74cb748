// Package pricing turns invoice line items and tax/discount terms into a monetary breakdown.
//
// The calculators are pure. They never round; rounding happens once, when an amount is
// formatted for display.
package pricing

import (
	"fmt"

	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Calculator computes a breakdown for one tax convention.
type Calculator interface {
	Calculate(items []LineItem, params Params) (*Breakdown, error)
}

var one = decimal.NewFromInt(1)

// NewCalculator creates a calculator for the given tax mode.
// Unknown modes get the exclusive calculator; use ComputeBreakdown to reject them.
func NewCalculator(mode types.TaxMode) Calculator {
	switch mode {
	case types.TaxModeInclusive:
		return &inclusiveCalculator{}
	default:
		return &exclusiveCalculator{}
	}
}

// ComputeBreakdown validates the input and runs the calculator matching params.TaxMode.
func ComputeBreakdown(items []LineItem, params Params) (*Breakdown, error) {
	if err := params.TaxMode.Validate(); err != nil {
		return nil, err
	}
	return NewCalculator(params.TaxMode).Calculate(items, params)
}

// exclusiveCalculator adds tax on top of the discounted subtotal.
type exclusiveCalculator struct{}

func (c *exclusiveCalculator) Calculate(items []LineItem, params Params) (*Breakdown, error) {
	if err := validate(items, params); err != nil {
		return nil, err
	}

	gross := grossSubtotal(items)
	discount := gross.Mul(params.DiscountRate)
	net := gross.Sub(discount)
	tax := net.Mul(params.TaxRate)

	return &Breakdown{
		GrossSubtotal:   gross,
		DiscountAmount:  discount,
		DiscountedTotal: net,
		NetSubtotal:     net,
		TaxAmount:       tax,
		Total:           net.Add(tax),
		TaxMode:         types.TaxModeExclusive,
	}, nil
}

// inclusiveCalculator extracts tax already contained in the discounted total.
type inclusiveCalculator struct{}

func (c *inclusiveCalculator) Calculate(items []LineItem, params Params) (*Breakdown, error) {
	if err := validate(items, params); err != nil {
		return nil, err
	}

	gross := grossSubtotal(items)
	discount := gross.Mul(params.DiscountRate)
	discounted := gross.Sub(discount)
	net := discounted.Div(one.Add(params.TaxRate))
	tax := discounted.Sub(net)

	return &Breakdown{
		GrossSubtotal:   gross,
		DiscountAmount:  discount,
		DiscountedTotal: discounted,
		NetSubtotal:     net,
		TaxAmount:       tax,
		Total:           discounted,
		TaxMode:         types.TaxModeInclusive,
	}, nil
}

func grossSubtotal(items []LineItem) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item LineItem, _ int) decimal.Decimal {
		return acc.Add(item.Amount())
	}, decimal.Zero)
}

func validate(items []LineItem, params Params) error {
	for i, item := range items {
		if !item.Quantity.IsPositive() {
			return invalidInput(fmt.Sprintf("items[%d].quantity", i), item.Quantity,
				"Quantity must be greater than zero")
		}
		if !item.Rate.IsPositive() {
			return invalidInput(fmt.Sprintf("items[%d].rate", i), item.Rate,
				"Rate must be greater than zero")
		}
	}
	if !isFraction(params.TaxRate) {
		return invalidInput("tax_rate", params.TaxRate,
			"Tax rate must be a fraction between 0 and 1")
	}
	if !isFraction(params.DiscountRate) {
		return invalidInput("discount_rate", params.DiscountRate,
			"Discount rate must be a fraction between 0 and 1")
	}
	return nil
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(one)
}

func invalidInput(field string, value decimal.Decimal, hint string) error {
	return ierr.NewErrorf("invalid %s: %s", field, value.String()).
		WithHint(hint).
		WithReportableDetails(map[string]any{
			"field": field,
			"value": value.String(),
		}).
		Mark(ierr.ErrValidation)
}
