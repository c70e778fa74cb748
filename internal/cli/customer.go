package cli

import (
	"context"

	"github.com/invocli/invocli/internal/domain/customer"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (c *CLI) customerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage saved customers (invoice recipients)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Add a new customer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				const action = "adding customer"
				deps, err := c.deps()
				if err != nil {
					return failed(action, err)
				}
				input, err := c.promptCustomer(&customer.Customer{})
				if err != nil {
					return failed(action, err)
				}
				created, err := deps.CustomerService.CreateCustomer(cmd.Context(), input)
				if err != nil {
					return failed(action, err)
				}
				c.printf("Customer %q has been added successfully.\n", created.To)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List saved customers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				const action = "listing customers"
				deps, err := c.deps()
				if err != nil {
					return failed(action, err)
				}
				customers, err := deps.CustomerService.ListCustomers(cmd.Context())
				if err != nil {
					return failed(action, err)
				}
				if len(customers) == 0 {
					c.println(`No customers found. Use "invocli customer add" to add one.`)
					return nil
				}
				c.println("Saved Customers:")
				table := newTable(c.out, "ID", "Name", "Address", "Email", "Phone", "Tax ID")
				for _, cu := range customers {
					table.Append([]string{
						cu.ID,
						cu.To,
						orNA(cu.ToAddress),
						orNA(cu.ToEmail),
						orNA(cu.ToPhone),
						orNA(cu.ToTaxID),
					})
				}
				table.Render()
				return nil
			},
		},
		&cobra.Command{
			Use:   "update",
			Short: "Update a saved customer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				const action = "updating customer"
				deps, err := c.deps()
				if err != nil {
					return failed(action, err)
				}
				selected, err := c.selectCustomer(cmd.Context(), "Which customer do you want to update?", "No customers to update.")
				if err != nil || selected == nil {
					return failed(action, err)
				}
				input, err := c.promptCustomer(selected)
				if err != nil {
					return failed(action, err)
				}
				input.ID = selected.ID
				updated, err := deps.CustomerService.UpdateCustomer(cmd.Context(), input)
				if err != nil {
					return failed(action, err)
				}
				c.printf("Customer %q has been updated successfully.\n", updated.To)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove",
			Short: "Remove a saved customer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				const action = "removing customer"
				deps, err := c.deps()
				if err != nil {
					return failed(action, err)
				}
				selected, err := c.selectCustomer(cmd.Context(), "Which customer do you want to remove?", "No customers to remove.")
				if err != nil || selected == nil {
					return failed(action, err)
				}
				ok, err := c.prompter.Confirm(removeQuestion(selected.To), false)
				if err != nil {
					return failed(action, err)
				}
				if !ok {
					c.println("Removal cancelled.")
					return nil
				}
				if err := deps.CustomerService.DeleteCustomer(cmd.Context(), selected.ID); err != nil {
					return failed(action, err)
				}
				c.printf("Customer %q has been removed successfully.\n", selected.To)
				return nil
			},
		},
	)
	return cmd
}

func (c *CLI) selectCustomer(ctx context.Context, message, empty string) (*customer.Customer, error) {
	deps, err := c.deps()
	if err != nil {
		return nil, err
	}
	customers, err := deps.CustomerService.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		c.println(empty)
		return nil, nil
	}
	options := lo.Map(customers, func(cu *customer.Customer, _ int) string {
		return recordLabel(cu.To, cu.ID)
	})
	idx, err := c.prompter.Select(message, options, 0)
	if err != nil {
		return nil, err
	}
	return customers[idx], nil
}

func (c *CLI) promptCustomer(current *customer.Customer) (*customer.Customer, error) {
	out := &customer.Customer{}
	var err error
	if out.To, err = c.prompter.Input("Customer name or company:", current.To, required("Customer name is required.")); err != nil {
		return nil, err
	}
	if out.ToAddress, err = c.prompter.Input("Address:", current.ToAddress, nil); err != nil {
		return nil, err
	}
	if out.ToEmail, err = c.prompter.Input("Email:", current.ToEmail, optionalEmail); err != nil {
		return nil, err
	}
	if out.ToPhone, err = c.prompter.Input("Phone number:", current.ToPhone, nil); err != nil {
		return nil, err
	}
	if out.ToTaxID, err = c.prompter.Input("Tax ID:", current.ToTaxID, nil); err != nil {
		return nil, err
	}
	return out, nil
}
