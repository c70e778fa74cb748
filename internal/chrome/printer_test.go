package chrome

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/invocli/invocli/internal/config"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPDF_EmptyDocument(t *testing.T) {
	p := NewPrinter(config.GetDefaultConfig(), logger.NewNopLogger())

	_, err := p.PrintPDF(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestAllocatorOptions(t *testing.T) {
	base := len(allocatorOptions(config.ChromeConfig{}))
	assert.Greater(t, base, 0)

	withPath := allocatorOptions(config.ChromeConfig{ExecPath: "/usr/bin/chromium", NoSandbox: true})
	assert.Len(t, withPath, base+2)
}

// Needs a local Chrome, skipped otherwise
func TestPrintPDF_Chrome(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping chrome test in short mode")
	}
	var execPath string
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			execPath = path
			break
		}
	}
	if execPath == "" {
		t.Skip("chrome not installed")
	}

	cfg := config.GetDefaultConfig()
	cfg.Chrome.ExecPath = execPath
	cfg.Chrome.NoSandbox = true
	cfg.Chrome.Timeout = 30 * time.Second

	p := NewPrinter(cfg, logger.NewNopLogger())
	pdf, err := p.PrintPDF(context.Background(), []byte("<html><body><h1>INVOICE</h1></body></html>"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
