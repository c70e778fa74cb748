package cli

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/invocli/invocli/internal/app"
	"github.com/invocli/invocli/internal/domain/company"
	"github.com/invocli/invocli/internal/domain/customer"
	"github.com/invocli/invocli/internal/domain/invoice"
	"github.com/invocli/invocli/internal/service"
	"github.com/invocli/invocli/internal/types"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const defaultDataFile = "invoice-data.json"

var (
	positiveNumber = regexp.MustCompile(`^\s*\d+(\.\d+)?\s*$`)
	displayDate    = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

	taxModeOptions = []string{
		"Exclusive (Tax is added to the subtotal)",
		"Inclusive (Subtotal already includes tax)",
	}
)

func (c *CLI) initCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an invoice data file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			const action = "creating invoice"
			deps, err := c.deps()
			if err != nil {
				return failed(action, err)
			}
			return failed(action, c.runWizard(cmd.Context(), deps, output))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", defaultDataFile, "path of the invoice data file to write")
	return cmd
}

// runWizard asks for an invoice until it is confirmed or abandoned
func (c *CLI) runWizard(ctx context.Context, deps *app.Container, output string) error {
	for {
		inv, err := c.askInvoice(ctx, deps)
		if err != nil {
			return err
		}

		breakdown, err := deps.InvoiceService.CalculateInvoice(ctx, inv)
		if err != nil {
			return err
		}
		c.println()
		c.println("--- INVOICE SUMMARY ---")
		renderSummary(c.out, inv, breakdown)
		c.println()

		ok, err := c.prompter.Confirm("Are the details above correct?", true)
		if err != nil {
			return err
		}
		if !ok {
			again, err := c.prompter.Confirm("Would you like to start over?", false)
			if err != nil {
				return err
			}
			if again {
				c.println("Restarting invoice creation...")
				continue
			}
			c.println("Invoice creation cancelled.")
			return nil
		}

		if err := deps.InvoiceService.SaveInvoiceFile(ctx, inv, output); err != nil {
			return err
		}
		c.printf("Invoice data successfully saved to %s\n", output)

		generate, err := c.prompter.Confirm("Would you like to generate the PDF invoice now?", true)
		if err != nil {
			return err
		}
		if !generate {
			c.printf("You can generate the PDF later using: invocli generate-from-file %s\n", output)
			return nil
		}
		result, err := deps.InvoiceService.GenerateInvoice(ctx, inv)
		if err != nil {
			return err
		}
		c.printResult(result)
		return nil
	}
}

func (c *CLI) askInvoice(ctx context.Context, deps *app.Container) (*invoice.Invoice, error) {
	inv := &invoice.Invoice{}
	now := c.now()

	sender, err := c.askCompany(ctx, deps)
	if err != nil {
		return nil, err
	}
	sender.ApplyTo(inv)

	recipient, err := c.askCustomer(ctx, deps)
	if err != nil {
		return nil, err
	}
	recipient.ApplyTo(inv)

	if inv.InvoiceNumber, err = c.askInvoiceNumber(sender, now); err != nil {
		return nil, err
	}

	date, err := c.askDate(now)
	if err != nil {
		return nil, err
	}
	inv.Date = date.Format(invoice.DateLayout)

	if inv.Currency, err = c.askCurrency(deps.Config.Invoice.Currency); err != nil {
		return nil, err
	}
	if inv.Items, err = c.askItems(); err != nil {
		return nil, err
	}

	defaultMode := 0
	if deps.Config.Invoice.TaxMode == types.TaxModeInclusive {
		defaultMode = 1
	}
	idx, err := c.prompter.Select("Tax calculation method:", taxModeOptions, defaultMode)
	if err != nil {
		return nil, err
	}
	inv.TaxType = types.TaxModeExclusive
	if idx == 1 {
		inv.TaxType = types.TaxModeInclusive
	}

	if inv.Tax, err = c.askPercent("Tax rate (%):", "Please enter a valid tax rate between 0 and 100."); err != nil {
		return nil, err
	}
	if inv.Discount, err = c.askPercent("Discount rate (%):", "Please enter a valid discount rate between 0 and 100."); err != nil {
		return nil, err
	}
	if inv.Note, err = c.prompter.Input("Notes (optional):", "", nil); err != nil {
		return nil, err
	}
	return inv, nil
}

func (c *CLI) askCompany(ctx context.Context, deps *app.Container) (*company.Company, error) {
	companies, err := deps.CompanyService.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	if len(companies) > 0 {
		options := lo.Map(companies, func(co *company.Company, _ int) string { return co.From })
		options = append(options, "Create a new company")
		idx, err := c.prompter.Select("Select your company:", options, 0)
		if err != nil {
			return nil, err
		}
		if idx < len(companies) {
			return companies[idx], nil
		}
	}

	input, err := c.promptCompany(&company.Company{})
	if err != nil {
		return nil, err
	}
	save, err := c.prompter.Confirm("Save this company for future invoices?", true)
	if err != nil {
		return nil, err
	}
	if !save {
		input.Normalize()
		return input, nil
	}
	created, err := deps.CompanyService.CreateCompany(ctx, input)
	if err != nil {
		return nil, err
	}
	c.printf("Company %q saved.\n", created.From)
	return created, nil
}

func (c *CLI) askCustomer(ctx context.Context, deps *app.Container) (*customer.Customer, error) {
	customers, err := deps.CustomerService.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) > 0 {
		options := lo.Map(customers, func(cu *customer.Customer, _ int) string { return cu.To })
		options = append(options, "Create a new customer")
		idx, err := c.prompter.Select("Select a customer:", options, 0)
		if err != nil {
			return nil, err
		}
		if idx < len(customers) {
			return customers[idx], nil
		}
	}

	input, err := c.promptCustomer(&customer.Customer{})
	if err != nil {
		return nil, err
	}
	save, err := c.prompter.Confirm("Save this customer for future invoices?", true)
	if err != nil {
		return nil, err
	}
	if !save {
		input.Normalize()
		return input, nil
	}
	created, err := deps.CustomerService.CreateCustomer(ctx, input)
	if err != nil {
		return nil, err
	}
	c.printf("Customer %q saved.\n", created.To)
	return created, nil
}

func (c *CLI) askInvoiceNumber(sender *company.Company, now time.Time) (string, error) {
	switch sender.InvoiceType {
	case types.InvoiceNumberingPrefix:
		prefix := company.NormalizePrefix(sender.InvoicePrefix)
		input, err := c.prompter.Input(fmt.Sprintf("Invoice number (prefix: %s):", prefix), "", nil)
		if err != nil {
			return "", err
		}
		return service.NewInvoiceNumber(sender, input, now), nil
	case types.InvoiceNumberingRandom:
		number := service.NewInvoiceNumber(sender, "", now)
		c.printf("Invoice number: %s\n", number)
		return number, nil
	default:
		input, err := c.prompter.Input("Custom invoice number (optional):", "", nil)
		return strings.TrimSpace(input), err
	}
}

func (c *CLI) askDate(now time.Time) (time.Time, error) {
	today := now
	yesterday := now.AddDate(0, 0, -1)
	options := []string{
		"Today (" + today.Format(invoice.DisplayDateLayout) + ")",
		"Yesterday (" + yesterday.Format(invoice.DisplayDateLayout) + ")",
		"Enter manually",
	}
	idx, err := c.prompter.Select("Select invoice date:", options, 0)
	if err != nil {
		return time.Time{}, err
	}
	switch idx {
	case 0:
		return today, nil
	case 1:
		return yesterday, nil
	}

	value, err := c.prompter.Input("Enter date (DD.MM.YYYY):", today.Format(invoice.DisplayDateLayout), validateDisplayDate)
	if err != nil {
		return time.Time{}, err
	}
	return invoice.ParseDate(value)
}

func validateDisplayDate(s string) error {
	s = strings.TrimSpace(s)
	if !displayDate.MatchString(s) {
		return errors.New("Please enter a valid date in DD.MM.YYYY format.")
	}
	if _, err := time.Parse(invoice.DisplayDateLayout, s); err != nil {
		return errors.New("The date is not valid (e.g., invalid month or day).")
	}
	return nil
}

func (c *CLI) askCurrency(defaultCode string) (string, error) {
	options := make([]string, 0, len(types.PopularCurrencies)+1)
	for _, cur := range types.PopularCurrencies {
		options = append(options, cur.Code+" - "+cur.Name)
	}
	options = append(options, "Other (enter custom currency code)")

	defaultIndex := 0
	for i, cur := range types.PopularCurrencies {
		if cur.Code == defaultCode {
			defaultIndex = i
		}
	}

	idx, err := c.prompter.Select("Currency:", options, defaultIndex)
	if err != nil {
		return "", err
	}
	if idx < len(types.PopularCurrencies) {
		return types.PopularCurrencies[idx].Code, nil
	}
	code, err := c.prompter.Input("Enter custom currency code:", "", required("Please enter a currency code."))
	if err != nil {
		return "", err
	}
	return types.NormalizeCurrencyCode(code), nil
}

func (c *CLI) askItems() ([]invoice.Item, error) {
	var items []invoice.Item
	for {
		desc, err := c.prompter.Input("Item description:", "", required("Please enter an item description."))
		if err != nil {
			return nil, err
		}
		qty, err := c.askPositive("Item quantity:", "Please enter a valid positive number for quantity.")
		if err != nil {
			return nil, err
		}
		rate, err := c.askPositive("Item rate/price:", "Please enter a valid positive number for the rate.")
		if err != nil {
			return nil, err
		}
		items = append(items, invoice.Item{
			Item:     strings.TrimSpace(desc),
			Quantity: qty,
			Rate:     rate,
		})

		more, err := c.prompter.Confirm("Add another item?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return items, nil
		}
	}
}

func (c *CLI) askPositive(message, invalid string) (float64, error) {
	value, err := c.prompter.Input(message, "", func(s string) error {
		if !positiveNumber.MatchString(s) {
			return errors.New("Please enter a valid number (digits only, no letters or special characters).")
		}
		if v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64); v <= 0 {
			return errors.New(invalid)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

// askPercent returns the rate as written to invoice files, see wizardRate
func (c *CLI) askPercent(message, invalid string) (float64, error) {
	value, err := c.prompter.Input(message, "0", func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || v < 0 || v > 100 {
			return errors.New(invalid)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	pct, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	return wizardRate(pct), nil
}

// wizardRate stores a percentage as a fraction. 100% stays a percentage since a
// fraction of 1 would be read back as 1%.
func wizardRate(pct float64) float64 {
	if pct >= 100 {
		return 100
	}
	return pct / 100
}
