package cli

import (
	"github.com/invocli/invocli/internal/currency"
	"github.com/invocli/invocli/internal/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var currencySample = decimal.RequireFromString("1234567.891")

func (c *CLI) currenciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the currencies with built in formatting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := newTable(c.out, "Code", "Symbol", "Example")
			for _, code := range currency.Codes() {
				table.Append([]string{
					code,
					types.GetCurrencySymbol(code),
					currency.Format(currencySample, code),
				})
			}
			table.Render()
			c.println("Other codes are accepted and printed as \"<amount> <CODE>\".")
			return nil
		},
	}
}
