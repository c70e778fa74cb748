package pdfgen

import (
	"time"

	"github.com/invocli/invocli/internal/currency"
	"github.com/invocli/invocli/internal/domain/invoice"
	"github.com/invocli/invocli/internal/domain/pricing"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InvoiceData is the fully formatted view of an invoice used by the document template.
// Every amount is already rendered with the invoice currency.
type InvoiceData struct {
	InvoiceNumber string `json:"invoice_number"`
	Date          string `json:"date"` // DD.MM.YYYY
	Currency      string `json:"currency"`

	// Logo is a data URI, empty when the invoice has no logo
	Logo string `json:"logo,omitempty"`

	Biller    PartyInfo `json:"biller"`
	Recipient PartyInfo `json:"recipient"`

	LineItems []LineItemData `json:"line_items"`

	// Notes is the raw note text; the renderer turns it into sanitized html
	Notes string `json:"notes,omitempty"`

	Totals TotalsData `json:"totals"`
}

// PartyInfo is the sender or the recipient block
type PartyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
}

type LineItemData struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// TotalsData holds the totals section. The discount row is only shown when
// ShowDiscount is set.
type TotalsData struct {
	Subtotal        string `json:"subtotal"`
	ShowDiscount    bool   `json:"show_discount"`
	DiscountPercent string `json:"discount_percent"`
	Discount        string `json:"discount"`
	NetSubtotal     string `json:"net_subtotal"`
	TaxPercent      string `json:"tax_percent"`
	Tax             string `json:"tax"`
	Total           string `json:"total"`
	TaxMode         string `json:"tax_mode"`
}

// NewInvoiceData formats inv and its breakdown for rendering
func NewInvoiceData(
	inv *invoice.Invoice,
	breakdown *pricing.Breakdown,
	number string,
	date time.Time,
	logo string,
) *InvoiceData {
	code := inv.Currency
	params := inv.PricingParams()

	items := lo.Map(inv.LineItems(), func(item pricing.LineItem, _ int) LineItemData {
		return LineItemData{
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			Rate:        currency.Format(item.Rate, code),
			Amount:      currency.Format(item.Amount(), code),
		}
	})

	return &InvoiceData{
		InvoiceNumber: number,
		Date:          date.Format(invoice.DisplayDateLayout),
		Currency:      code,
		Logo:          logo,
		Biller: PartyInfo{
			Name:    inv.From,
			Address: inv.FromAddress,
			Email:   inv.FromEmail,
			Phone:   inv.FromPhone,
			TaxID:   inv.FromTaxID,
		},
		Recipient: PartyInfo{
			Name:    inv.To,
			Address: inv.ToAddress,
			Email:   inv.ToEmail,
			Phone:   inv.ToPhone,
			TaxID:   inv.ToTaxID,
		},
		LineItems: items,
		Notes:     inv.Note,
		Totals: TotalsData{
			Subtotal:        currency.Format(breakdown.GrossSubtotal, code),
			ShowDiscount:    breakdown.DiscountAmount.IsPositive(),
			DiscountPercent: PercentLabel(params.DiscountRate),
			Discount:        "-" + currency.Format(breakdown.DiscountAmount, code),
			NetSubtotal:     currency.Format(breakdown.NetSubtotal, code),
			TaxPercent:      PercentLabel(params.TaxRate),
			Tax:             currency.Format(breakdown.TaxAmount, code),
			Total:           currency.Format(breakdown.Total, code),
			TaxMode:         breakdown.TaxMode.DisplayName(),
		},
	}
}

// PercentLabel renders a fraction as a percentage with at most two decimals: 0.075 -> "7.5"
func PercentLabel(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(2).String()
}
