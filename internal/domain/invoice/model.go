package invoice

import (
	"strings"
	"time"

	"github.com/invocli/invocli/internal/domain/pricing"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/types"
	"github.com/invocli/invocli/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the layout of the date key in invoice files
	DateLayout = "2006-01-02"
	// DisplayDateLayout is the layout printed on documents and accepted by the wizard
	DisplayDateLayout = "02.01.2006"
)

// Item is a line item as written in invoice files
type Item struct {
	Item     string  `json:"item" yaml:"item" validate:"required"`
	Quantity float64 `json:"quantity" yaml:"quantity" validate:"gt=0"`
	Rate     float64 `json:"rate" yaml:"rate" validate:"gt=0"`
}

// Invoice is the document gathered from flags, the wizard or a data file.
// Tax and Discount accept either a percentage (20) or a fraction (0.20).
type Invoice struct {
	From          string        `json:"from" yaml:"from" validate:"required"`
	FromAddress   string        `json:"from-address,omitempty" yaml:"from-address,omitempty"`
	FromEmail     string        `json:"from-email,omitempty" yaml:"from-email,omitempty" validate:"omitempty,email"`
	FromPhone     string        `json:"from-phone,omitempty" yaml:"from-phone,omitempty"`
	FromTaxID     string        `json:"from-tax-id,omitempty" yaml:"from-tax-id,omitempty"`
	To            string        `json:"to" yaml:"to" validate:"required"`
	ToAddress     string        `json:"to-address,omitempty" yaml:"to-address,omitempty"`
	ToEmail       string        `json:"to-email,omitempty" yaml:"to-email,omitempty" validate:"omitempty,email"`
	ToPhone       string        `json:"to-phone,omitempty" yaml:"to-phone,omitempty"`
	ToTaxID       string        `json:"to-tax-id,omitempty" yaml:"to-tax-id,omitempty"`
	Logo          string        `json:"logo,omitempty" yaml:"logo,omitempty"`
	Items         []Item        `json:"items" yaml:"items" validate:"required,min=1,dive"`
	Tax           float64       `json:"tax" yaml:"tax" validate:"gte=0,lte=100"`
	Discount      float64       `json:"discount" yaml:"discount" validate:"gte=0,lte=100"`
	TaxType       types.TaxMode `json:"tax-type,omitempty" yaml:"tax-type,omitempty"`
	Currency      string        `json:"currency,omitempty" yaml:"currency,omitempty" validate:"omitempty,currency_code"`
	Note          string        `json:"note,omitempty" yaml:"note,omitempty"`
	InvoiceNumber string        `json:"invoice-number,omitempty" yaml:"invoice-number,omitempty"`
	Date          string        `json:"date,omitempty" yaml:"date,omitempty"`
}

// Defaults are applied by Normalize to fields left empty
type Defaults struct {
	Currency string
	TaxMode  types.TaxMode
}

// NormalizeRate turns a user supplied percentage into a fraction.
// Values of 1 or more are read as percentages, so 20 and 0.20 both mean 20%
// and 1 means 1%.
func NormalizeRate(rate float64) decimal.Decimal {
	d := decimal.NewFromFloat(rate)
	if d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return d.Div(decimal.NewFromInt(100))
	}
	return d
}

// Normalize trims text fields and fills defaults. It never touches Tax or Discount;
// the percent to fraction conversion happens in PricingParams.
func (inv *Invoice) Normalize(defaults Defaults) {
	for _, s := range []*string{
		&inv.From, &inv.FromAddress, &inv.FromEmail, &inv.FromPhone, &inv.FromTaxID,
		&inv.To, &inv.ToAddress, &inv.ToEmail, &inv.ToPhone, &inv.ToTaxID,
		&inv.Logo, &inv.Currency, &inv.InvoiceNumber, &inv.Date,
	} {
		*s = strings.TrimSpace(*s)
	}
	for i := range inv.Items {
		inv.Items[i].Item = strings.TrimSpace(inv.Items[i].Item)
	}

	if inv.Currency == "" {
		inv.Currency = defaults.Currency
	}
	if inv.Currency == "" {
		inv.Currency = "USD"
	}
	inv.TaxType = types.TaxMode(strings.ToLower(string(inv.TaxType)))
	if inv.TaxType == "" {
		inv.TaxType = defaults.TaxMode
	}
	if inv.TaxType == "" {
		inv.TaxType = types.TaxModeExclusive
	}
}

// Validate checks the document before it is priced or rendered
func (inv *Invoice) Validate() error {
	if len(inv.Items) == 0 {
		return ierr.NewError("invoice has no items").
			WithHint("Please provide item details via command line or use the generate-from-file command.").
			Mark(ierr.ErrValidation)
	}
	if err := validator.ValidateRequest(inv); err != nil {
		return err
	}
	if inv.TaxType != "" {
		if err := inv.TaxType.Validate(); err != nil {
			return err
		}
	}
	if inv.Date != "" {
		if _, err := ParseDate(inv.Date); err != nil {
			return err
		}
	}
	return nil
}

// LineItems converts the document items for the pricing engine
func (inv *Invoice) LineItems() []pricing.LineItem {
	return lo.Map(inv.Items, func(item Item, _ int) pricing.LineItem {
		return pricing.LineItem{
			Description: item.Item,
			Quantity:    decimal.NewFromFloat(item.Quantity),
			Rate:        decimal.NewFromFloat(item.Rate),
		}
	})
}

// PricingParams returns the normalized tax terms of the document
func (inv *Invoice) PricingParams() pricing.Params {
	mode := inv.TaxType
	if mode == "" {
		mode = types.TaxModeExclusive
	}
	return pricing.Params{
		TaxRate:      NormalizeRate(inv.Tax),
		DiscountRate: NormalizeRate(inv.Discount),
		TaxMode:      mode,
	}
}

// Breakdown prices the document
func (inv *Invoice) Breakdown() (*pricing.Breakdown, error) {
	return pricing.ComputeBreakdown(inv.LineItems(), inv.PricingParams())
}

// IssueDate returns the invoice date, or today when none is set
func (inv *Invoice) IssueDate(now time.Time) (time.Time, error) {
	if inv.Date == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	return ParseDate(inv.Date)
}

// ParseDate accepts YYYY-MM-DD and DD.MM.YYYY
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{DateLayout, DisplayDateLayout} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ierr.NewErrorf("invalid invoice date %q", value).
		WithHint("Please enter a valid date in YYYY-MM-DD or DD.MM.YYYY format.").
		WithReportableDetails(map[string]any{
			"date": value,
		}).
		Mark(ierr.ErrValidation)
}
