package cli

import (
	"context"

	"github.com/invocli/invocli/internal/app"
	"github.com/invocli/invocli/internal/domain/invoice"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/service"
	"github.com/invocli/invocli/internal/types"
	"github.com/spf13/cobra"
)

// invoiceFlags are the invoice fields accepted on the command line
type invoiceFlags struct {
	inv        invoice.Invoice
	taxType    string
	items      []string
	quantities []float64
	rates      []float64
	companyID  string
	customerID string
}

func (f *invoiceFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.inv.From, "from", "", "Sender name or company")
	fs.StringVar(&f.inv.To, "to", "", "Recipient name or company")
	fs.StringVar(&f.inv.Logo, "logo", "", "Path or URL to a logo image file")
	fs.StringVar(&f.inv.FromAddress, "from-address", "", "Sender's address")
	fs.StringVar(&f.inv.FromEmail, "from-email", "", "Sender's email")
	fs.StringVar(&f.inv.FromPhone, "from-phone", "", "Sender's phone number")
	fs.StringVar(&f.inv.FromTaxID, "from-tax-id", "", "Sender's Tax ID or TC Kimlik No")
	fs.StringVar(&f.inv.ToAddress, "to-address", "", "Recipient's address")
	fs.StringVar(&f.inv.ToEmail, "to-email", "", "Recipient's email")
	fs.StringVar(&f.inv.ToPhone, "to-phone", "", "Recipient's phone number")
	fs.StringVar(&f.inv.ToTaxID, "to-tax-id", "", "Recipient's Tax ID or TC Kimlik No")
	fs.StringArrayVar(&f.items, "item", nil, "Invoice item description (repeat for more items)")
	fs.Float64SliceVar(&f.quantities, "quantity", nil, "Item quantity, one per --item")
	fs.Float64SliceVar(&f.rates, "rate", nil, "Item rate/price, one per --item")
	fs.Float64Var(&f.inv.Tax, "tax", 0, "Tax rate (e.g., 20 or 0.20 for 20%)")
	fs.Float64Var(&f.inv.Discount, "discount", 0, "Discount rate (e.g., 10 or 0.10 for 10%)")
	fs.StringVar(&f.taxType, "tax-type", "", "Tax calculation method: exclusive or inclusive (default from config)")
	fs.StringVar(&f.inv.Currency, "currency", "", "Currency ISO code, e.g. TRY, USD, EUR (default from config)")
	fs.StringVar(&f.inv.InvoiceNumber, "invoice-number", "", "Custom invoice number (optional)")
	fs.StringVar(&f.inv.Date, "date", "", "Invoice date, YYYY-MM-DD or DD.MM.YYYY (default today)")
	fs.StringVar(&f.inv.Note, "note", "", "A note for the invoice")
	fs.StringVar(&f.companyID, "company", "", "ID of a saved company to use as sender")
	fs.StringVar(&f.customerID, "customer", "", "ID of a saved customer to use as recipient")
}

// build assembles the invoice, pulling saved records when their IDs were given
func (f *invoiceFlags) build(ctx context.Context, deps *app.Container) (*invoice.Invoice, error) {
	inv := f.inv
	inv.TaxType = types.TaxMode(f.taxType)

	if len(f.items) != len(f.quantities) || len(f.items) != len(f.rates) {
		return nil, ierr.NewError("item flags do not line up").
			WithHint("Every --item needs exactly one --quantity and one --rate.").
			WithReportableDetails(map[string]any{
				"items":      len(f.items),
				"quantities": len(f.quantities),
				"rates":      len(f.rates),
			}).
			Mark(ierr.ErrValidation)
	}
	inv.Items = make([]invoice.Item, 0, len(f.items))
	for i, desc := range f.items {
		inv.Items = append(inv.Items, invoice.Item{
			Item:     desc,
			Quantity: f.quantities[i],
			Rate:     f.rates[i],
		})
	}

	if f.companyID != "" {
		c, err := deps.CompanyService.GetCompany(ctx, f.companyID)
		if err != nil {
			return nil, err
		}
		logo := inv.Logo
		c.ApplyTo(&inv)
		if logo != "" {
			inv.Logo = logo
		}
	}
	if f.customerID != "" {
		cust, err := deps.CustomerService.GetCustomer(ctx, f.customerID)
		if err != nil {
			return nil, err
		}
		cust.ApplyTo(&inv)
	}
	return &inv, nil
}

func (c *CLI) generateCommand() *cobra.Command {
	flags := &invoiceFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a PDF invoice from command line options",
		Example: `  invocli generate --from "Acme Inc." --to "Globex" \
    --item "Consulting" --quantity 10 --rate 150 --tax 20 --currency EUR`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			const action = "generating invoice"
			deps, err := c.deps()
			if err != nil {
				return failed(action, err)
			}

			inv, err := flags.build(cmd.Context(), deps)
			if err != nil {
				return failed(action, err)
			}

			c.println("Generating invoice...")
			result, err := deps.InvoiceService.GenerateInvoice(cmd.Context(), inv)
			if err != nil {
				return failed(action, err)
			}
			c.printResult(result)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) printResult(result *service.GenerateResult) {
	c.printf("Invoice generated successfully at %s\n", result.Path)
	if result.URL != "" {
		c.printf("Uploaded invoice: %s\n", result.URL)
	} else if result.ObjectKey != "" {
		c.printf("Uploaded invoice to %s\n", result.ObjectKey)
	}
}
