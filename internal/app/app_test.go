package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/invocli/invocli/internal/config"
	"github.com/invocli/invocli/internal/domain/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Configuration {
	cfg := config.GetDefaultConfig()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Output.Dir = t.TempDir()
	return cfg
}

func TestNewWithConfig(t *testing.T) {
	c, err := NewWithConfig(testConfig(t))
	require.NoError(t, err)

	assert.NotNil(t, c.Config)
	assert.NotNil(t, c.Logger)
	assert.NotNil(t, c.InvoiceService)
	assert.NotNil(t, c.CompanyService)
	assert.NotNil(t, c.CustomerService)
}

func TestNewWithConfig_CompanyRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	c, err := NewWithConfig(cfg)
	require.NoError(t, err)

	created, err := c.CompanyService.CreateCompany(context.Background(), &company.Company{From: "Acme"})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(cfg.Storage.DataDir, "company.json"))
	require.NoError(t, err)

	// a second container reads the same file
	other, err := NewWithConfig(cfg)
	require.NoError(t, err)
	got, err := other.CompanyService.GetCompany(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.From)
}

func TestNew_InvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, err := New(path)
	assert.Error(t, err)
}
