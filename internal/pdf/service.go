package pdf

import (
	"context"

	"github.com/invocli/invocli/internal/chrome"
	"github.com/invocli/invocli/internal/domain/pdfgen"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/logger"
	renderer "github.com/invocli/invocli/internal/pdfgen"
)

// Generator defines the interface for PDF generation operations
type Generator interface {
	RenderInvoicePdf(ctx context.Context, data *pdfgen.InvoiceData) ([]byte, error)
	RenderInvoiceHTML(ctx context.Context, data *pdfgen.InvoiceData) ([]byte, error)
}

type service struct {
	renderer renderer.InvoiceRenderer
	printer  chrome.Printer
	log      *logger.Logger
}

// NewGenerator creates a new PDF service
func NewGenerator(renderer renderer.InvoiceRenderer, printer chrome.Printer, log *logger.Logger) Generator {
	return &service{
		renderer: renderer,
		printer:  printer,
		log:      log,
	}
}

// RenderInvoiceHTML renders the invoice document without printing it
func (s *service) RenderInvoiceHTML(ctx context.Context, data *pdfgen.InvoiceData) ([]byte, error) {
	return s.renderer.RenderHTML(data)
}

// RenderInvoicePdf renders the invoice to html and prints it to an A4 PDF
func (s *service) RenderInvoicePdf(ctx context.Context, data *pdfgen.InvoiceData) ([]byte, error) {
	html, err := s.renderer.RenderHTML(data)
	if err != nil {
		return nil, err
	}

	pdf, err := s.printer.PrintPDF(ctx, html)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessagef("failed to print invoice %s", data.InvoiceNumber).
			Mark(ierr.ErrSystem)
	}

	return pdf, nil
}
