package cli

import (
	"io"

	"github.com/invocli/invocli/internal/currency"
	"github.com/invocli/invocli/internal/domain/invoice"
	"github.com/invocli/invocli/internal/domain/pdfgen"
	"github.com/invocli/invocli/internal/domain/pricing"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// renderSummary prints the key/value summary and the items of an invoice
func renderSummary(w io.Writer, inv *invoice.Invoice, b *pricing.Breakdown) {
	code := inv.Currency
	params := inv.PricingParams()

	summary := newTable(w, "Field", "Value")
	summary.AppendBulk([][]string{
		{"Sender", inv.From},
		{"Recipient", inv.To},
		{"Invoice Number", orNA(inv.InvoiceNumber)},
		{"Date", orNA(inv.Date)},
		{"Subtotal", currency.Format(b.GrossSubtotal, code)},
		{"Discount", pdfgen.PercentLabel(params.DiscountRate) + "% (" + currency.Format(b.DiscountAmount, code) + ")"},
		{"Net Subtotal", currency.Format(b.NetSubtotal, code)},
		{"Tax", pdfgen.PercentLabel(params.TaxRate) + "% (" + currency.Format(b.TaxAmount, code) + ")"},
		{"Tax Method", b.TaxMode.DisplayName()},
		{"GRAND TOTAL", currency.Format(b.Total, code)},
	})
	summary.Render()

	items := newTable(w, "Description", "Quantity", "Rate", "Total")
	for _, item := range inv.LineItems() {
		items.Append([]string{
			item.Description,
			item.Quantity.String(),
			currency.Format(item.Rate, code),
			currency.Format(item.Amount(), code),
		})
	}
	items.Render()
}
