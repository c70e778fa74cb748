package customer

import (
	"strings"

	"github.com/invocli/invocli/internal/domain/invoice"
	"github.com/invocli/invocli/internal/validator"
)

// Customer is a saved invoice recipient
type Customer struct {
	// ID is assigned by the repository on create
	ID string `json:"id"`

	To        string `json:"to" validate:"required"`
	ToAddress string `json:"to-address,omitempty"`
	ToEmail   string `json:"to-email,omitempty" validate:"omitempty,email"`
	ToPhone   string `json:"to-phone,omitempty"`
	ToTaxID   string `json:"to-tax-id,omitempty"`
}

func (c *Customer) GetID() string {
	return c.ID
}

func (c *Customer) Normalize() {
	c.To = strings.TrimSpace(c.To)
	c.ToAddress = strings.TrimSpace(c.ToAddress)
	c.ToEmail = strings.TrimSpace(c.ToEmail)
	c.ToPhone = strings.TrimSpace(c.ToPhone)
	c.ToTaxID = strings.TrimSpace(c.ToTaxID)
}

func (c *Customer) Validate() error {
	return validator.ValidateRequest(c)
}

// ApplyTo copies the recipient details onto an invoice
func (c *Customer) ApplyTo(inv *invoice.Invoice) {
	inv.To = c.To
	inv.ToAddress = c.ToAddress
	inv.ToEmail = c.ToEmail
	inv.ToPhone = c.ToPhone
	inv.ToTaxID = c.ToTaxID
}
