package invoice

import (
	"os"
	"path/filepath"
	"testing"

	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonFixture = `{
  "from": "Your Company, Inc.",
  "from-email": "contact@yourcompany.com",
  "to": "Your Customer, Inc.",
  "to-tax-id": "CUSTOMER-TAX-ID",
  "items": [
    {"item": "Example Product or Service", "quantity": 2, "rate": 150}
  ],
  "tax": 8,
  "discount": 5,
  "tax-type": "inclusive",
  "currency": "USD",
  "invoice-number": "INV-001",
  "date": "2025-01-31"
}`

const yamlFixture = `
from: Your Company, Inc.
to: Your Customer, Inc.
items:
  - item: Hosting
    quantity: 12
    rate: 9.5
tax: 0.2
currency: EUR
note: "**Paid** by wire"
`

func TestDecode_JSON(t *testing.T) {
	inv, err := Decode([]byte(jsonFixture), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "Your Company, Inc.", inv.From)
	assert.Equal(t, "contact@yourcompany.com", inv.FromEmail)
	assert.Equal(t, "CUSTOMER-TAX-ID", inv.ToTaxID)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, Item{Item: "Example Product or Service", Quantity: 2, Rate: 150}, inv.Items[0])
	assert.Equal(t, 8.0, inv.Tax)
	assert.Equal(t, types.TaxModeInclusive, inv.TaxType)
	assert.Equal(t, "INV-001", inv.InvoiceNumber)
	assert.Equal(t, "2025-01-31", inv.Date)
}

func TestDecode_YAML(t *testing.T) {
	inv, err := Decode([]byte(yamlFixture), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Your Customer, Inc.", inv.To)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 9.5, inv.Items[0].Rate)
	assert.Equal(t, 0.2, inv.Tax)
	assert.Equal(t, "EUR", inv.Currency)
	assert.Equal(t, "**Paid** by wire", inv.Note)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("{not json"), FormatJSON)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("invoice.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("/tmp/INVOICE.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("invoice-data.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("invoice"))
}

func TestWriteFileAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice-data.json")

	inv := sampleInvoice()
	inv.Note = "Thank you"
	require.NoError(t, WriteFile(path, inv))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"from\": \"Your Company, Inc.\"")
	assert.NotContains(t, string(raw), "from-address")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, inv, loaded)

	yamlPath := filepath.Join(dir, "invoice.yaml")
	require.NoError(t, WriteFile(yamlPath, inv))
	loadedYAML, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, inv, loadedYAML)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}
