package cli

import (
	"context"
	"strings"

	"github.com/invocli/invocli/internal/domain/company"
	"github.com/invocli/invocli/internal/types"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var numberingOptions = []string{
	"1 - Random unique (auto-generated)",
	"2 - Prefix (e.g., AIBSTCH-XX)",
}

func (c *CLI) companyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage saved companies (invoice senders)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Add a new company",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				const action = "adding company"
				deps, err := c.deps()
				if err != nil {
					return failed(action, err)
				}
				input, err := c.promptCompany(&company.Company{})
				if err != nil {
					return failed(action, err)
				}
				created, err := deps.CompanyService.CreateCompany(cmd.Context(), input)
				if err != nil {
					return failed(action, err)
				}
				c.printf("Company %q has been added successfully.\n", created.From)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List saved companies",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				const action = "listing companies"
				deps, err := c.deps()
				if err != nil {
					return failed(action, err)
				}
				companies, err := deps.CompanyService.ListCompanies(cmd.Context())
				if err != nil {
					return failed(action, err)
				}
				if len(companies) == 0 {
					c.println(`No companies found. Use "invocli company add" to add one.`)
					return nil
				}
				c.println("Saved Companies:")
				table := newTable(c.out, "ID", "Name", "Address", "Email", "Phone", "Tax ID", "Logo", "Invoice Type", "Invoice Prefix")
				for _, co := range companies {
					table.Append([]string{
						co.ID,
						co.From,
						orNA(co.FromAddress),
						orNA(co.FromEmail),
						orNA(co.FromPhone),
						orNA(co.FromTaxID),
						orNA(co.Logo),
						numberingLabel(co.InvoiceType),
						orNA(co.InvoicePrefix),
					})
				}
				table.Render()
				return nil
			},
		},
		&cobra.Command{
			Use:   "update",
			Short: "Update a saved company",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				const action = "updating company"
				deps, err := c.deps()
				if err != nil {
					return failed(action, err)
				}
				selected, err := c.selectCompany(cmd.Context(), "Which company do you want to update?", "No companies to update.")
				if err != nil || selected == nil {
					return failed(action, err)
				}
				input, err := c.promptCompany(selected)
				if err != nil {
					return failed(action, err)
				}
				input.ID = selected.ID
				updated, err := deps.CompanyService.UpdateCompany(cmd.Context(), input)
				if err != nil {
					return failed(action, err)
				}
				c.printf("Company %q has been updated successfully.\n", updated.From)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove",
			Short: "Remove a saved company",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				const action = "removing company"
				deps, err := c.deps()
				if err != nil {
					return failed(action, err)
				}
				selected, err := c.selectCompany(cmd.Context(), "Which company do you want to remove?", "No companies to remove.")
				if err != nil || selected == nil {
					return failed(action, err)
				}
				ok, err := c.prompter.Confirm(removeQuestion(selected.From), false)
				if err != nil {
					return failed(action, err)
				}
				if !ok {
					c.println("Removal cancelled.")
					return nil
				}
				if err := deps.CompanyService.DeleteCompany(cmd.Context(), selected.ID); err != nil {
					return failed(action, err)
				}
				c.printf("Company %q has been removed successfully.\n", selected.From)
				return nil
			},
		},
	)
	return cmd
}

// selectCompany returns nil without error when there is nothing to pick from
func (c *CLI) selectCompany(ctx context.Context, message, empty string) (*company.Company, error) {
	deps, err := c.deps()
	if err != nil {
		return nil, err
	}
	companies, err := deps.CompanyService.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		c.println(empty)
		return nil, nil
	}
	options := lo.Map(companies, func(co *company.Company, _ int) string {
		return recordLabel(co.From, co.ID)
	})
	idx, err := c.prompter.Select(message, options, 0)
	if err != nil {
		return nil, err
	}
	return companies[idx], nil
}

// promptCompany asks for every company field, offering the values of current as defaults
func (c *CLI) promptCompany(current *company.Company) (*company.Company, error) {
	out := &company.Company{}
	var err error
	if out.From, err = c.prompter.Input("Company name:", current.From, required("Company name is required.")); err != nil {
		return nil, err
	}
	if out.FromAddress, err = c.prompter.Input("Company address:", current.FromAddress, nil); err != nil {
		return nil, err
	}
	if out.FromEmail, err = c.prompter.Input("Company email:", current.FromEmail, optionalEmail); err != nil {
		return nil, err
	}
	if out.FromPhone, err = c.prompter.Input("Company phone number:", current.FromPhone, nil); err != nil {
		return nil, err
	}
	if out.FromTaxID, err = c.prompter.Input("Company Tax ID:", current.FromTaxID, nil); err != nil {
		return nil, err
	}
	if out.Logo, err = c.prompter.Input("Path or URL to a logo image (optional):", current.Logo, nil); err != nil {
		return nil, err
	}

	defaultIndex := 0
	if current.InvoiceType == types.InvoiceNumberingPrefix {
		defaultIndex = 1
	}
	idx, err := c.prompter.Select("Invoice numbering type:", numberingOptions, defaultIndex)
	if err != nil {
		return nil, err
	}
	if idx == 1 {
		out.InvoiceType = types.InvoiceNumberingPrefix
		prefix, err := c.prompter.Input("Invoice prefix (e.g., COMP, PROJ):",
			strings.TrimSuffix(current.InvoicePrefix, "-"), required("Please enter a valid prefix."))
		if err != nil {
			return nil, err
		}
		out.InvoicePrefix = prefix
	} else {
		out.InvoiceType = types.InvoiceNumberingRandom
	}
	return out, nil
}

func numberingLabel(t types.InvoiceNumberingType) string {
	switch t {
	case types.InvoiceNumberingPrefix:
		return "Prefix"
	case types.InvoiceNumberingRandom:
		return "Random"
	default:
		return "N/A"
	}
}
