package company

import (
	"strings"

	"github.com/invocli/invocli/internal/domain/invoice"
	"github.com/invocli/invocli/internal/types"
	"github.com/invocli/invocli/internal/validator"
)

// Company is a saved invoice sender
type Company struct {
	// ID is assigned by the repository on create
	ID string `json:"id"`

	From        string `json:"from" validate:"required"`
	FromAddress string `json:"from-address,omitempty"`
	FromEmail   string `json:"from-email,omitempty" validate:"omitempty,email"`
	FromPhone   string `json:"from-phone,omitempty"`
	FromTaxID   string `json:"from-tax-id,omitempty"`

	// Logo is a local path or an http(s) URL
	Logo string `json:"logo,omitempty"`

	// InvoiceType selects how invoice numbers are generated for this company
	InvoiceType types.InvoiceNumberingType `json:"invoice-type,omitempty"`

	// InvoicePrefix always ends with "-" when set
	InvoicePrefix string `json:"invoice-prefix,omitempty"`
}

func (c *Company) GetID() string {
	return c.ID
}

// Normalize trims the fields and fixes up the invoice prefix
func (c *Company) Normalize() {
	c.From = strings.TrimSpace(c.From)
	c.FromAddress = strings.TrimSpace(c.FromAddress)
	c.FromEmail = strings.TrimSpace(c.FromEmail)
	c.FromPhone = strings.TrimSpace(c.FromPhone)
	c.FromTaxID = strings.TrimSpace(c.FromTaxID)
	c.Logo = strings.TrimSpace(c.Logo)
	if c.InvoiceType == types.InvoiceNumberingPrefix {
		c.InvoicePrefix = NormalizePrefix(c.InvoicePrefix)
	} else {
		c.InvoicePrefix = ""
	}
}

func (c *Company) Validate() error {
	if err := validator.ValidateRequest(c); err != nil {
		return err
	}
	return c.InvoiceType.Validate()
}

// ApplyTo copies the sender details onto an invoice
func (c *Company) ApplyTo(inv *invoice.Invoice) {
	inv.From = c.From
	inv.FromAddress = c.FromAddress
	inv.FromEmail = c.FromEmail
	inv.FromPhone = c.FromPhone
	inv.FromTaxID = c.FromTaxID
	if c.Logo != "" {
		inv.Logo = c.Logo
	}
}

// NormalizePrefix trims the prefix and makes sure it ends with a dash
func NormalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || strings.HasSuffix(prefix, "-") {
		return prefix
	}
	return prefix + "-"
}
