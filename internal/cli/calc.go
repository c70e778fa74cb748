package cli

import (
	"github.com/invocli/invocli/internal/domain/invoice"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// calcPlaceholder stands in for parties that a quick calculation does not need
const calcPlaceholder = "N/A"

func (c *CLI) calcCommand() *cobra.Command {
	flags := &invoiceFlags{}
	var (
		file string
		raw  bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate invoice totals without generating a PDF",
		Example: `  invocli calc --item "Hosting" --quantity 12 --rate 9.90 --tax 20 --tax-type inclusive
  invocli calc --file invoice-data.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			const action = "calculating invoice"
			deps, err := c.deps()
			if err != nil {
				return failed(action, err)
			}

			var inv *invoice.Invoice
			if file != "" {
				inv, err = invoice.LoadFile(file)
			} else {
				inv, err = flags.build(cmd.Context(), deps)
			}
			if err != nil {
				return failed(action, err)
			}
			if inv.From == "" {
				inv.From = calcPlaceholder
			}
			if inv.To == "" {
				inv.To = calcPlaceholder
			}

			breakdown, err := deps.InvoiceService.CalculateInvoice(cmd.Context(), inv)
			if err != nil {
				return failed(action, err)
			}

			if raw {
				pp.Fprintln(c.out, map[string]string{
					"currency":         inv.Currency,
					"tax_mode":         breakdown.TaxMode.String(),
					"gross_subtotal":   breakdown.GrossSubtotal.String(),
					"discount_amount":  breakdown.DiscountAmount.String(),
					"discounted_total": breakdown.DiscountedTotal.String(),
					"net_subtotal":     breakdown.NetSubtotal.String(),
					"tax_amount":       breakdown.TaxAmount.String(),
					"total":            breakdown.Total.String(),
				})
				return nil
			}
			renderSummary(c.out, inv, breakdown)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the invoice from a JSON or YAML data file")
	cmd.Flags().BoolVar(&raw, "raw", false, "dump the unrounded breakdown")
	return cmd
}
