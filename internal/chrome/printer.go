// Package chrome prints html documents to PDF with a headless Chrome.
package chrome

import (
	"context"
	"errors"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/invocli/invocli/internal/config"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/logger"
)

// A4 in inches
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// Printer converts a complete html document to PDF bytes
type Printer interface {
	PrintPDF(ctx context.Context, html []byte) ([]byte, error)
}

type printer struct {
	cfg config.ChromeConfig
	log *logger.Logger
}

func NewPrinter(cfg *config.Configuration, log *logger.Logger) Printer {
	return &printer{
		cfg: cfg.Chrome,
		log: log,
	}
}

func (p *printer) PrintPDF(ctx context.Context, html []byte) ([]byte, error) {
	if len(html) == 0 {
		return nil, ierr.NewError("nothing to print").
			WithHint("The invoice document is empty").
			Mark(ierr.ErrValidation)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions(p.cfg)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		browserCtx, cancel = context.WithTimeout(browserCtx, p.cfg.Timeout)
		defer cancel()
	}

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, ierr.WithError(err).
				WithHint("PDF generation was cancelled").
				Mark(ierr.ErrCancelled)
		}
		return nil, ierr.WithError(err).
			WithHint("Could not print the invoice with Chrome. Install Chrome or set chrome.exec_path").
			WithReportableDetails(map[string]any{
				"exec_path": p.cfg.ExecPath,
				"timeout":   p.cfg.Timeout.String(),
			}).
			Mark(ierr.ErrSystem)
	}

	p.log.Debugw("printed pdf", "bytes", len(pdf))
	return pdf, nil
}

func allocatorOptions(cfg config.ChromeConfig) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-setuid-sandbox", cfg.NoSandbox),
	)
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	if cfg.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	return opts
}
