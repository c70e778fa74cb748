package service

import (
	"context"
	"os"
	"path/filepath"

	"github.com/invocli/invocli/internal/domain/invoice"
	"github.com/invocli/invocli/internal/domain/pdfgen"
	"github.com/invocli/invocli/internal/domain/pricing"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/s3"
	"github.com/sourcegraph/conc/pool"
)

const defaultConcurrency = 2

type InvoiceService interface {
	// PrepareInvoice fills defaults and validates inv in place
	PrepareInvoice(inv *invoice.Invoice) error
	CalculateInvoice(ctx context.Context, inv *invoice.Invoice) (*pricing.Breakdown, error)
	GenerateInvoice(ctx context.Context, inv *invoice.Invoice) (*GenerateResult, error)
	// GenerateFromFiles generates one PDF per data file. Results keep the order of paths.
	GenerateFromFiles(ctx context.Context, paths []string, concurrency int) []*FileResult
	SaveInvoiceFile(ctx context.Context, inv *invoice.Invoice, path string) error
}

// GenerateResult describes a generated invoice document
type GenerateResult struct {
	InvoiceNumber string
	Path          string
	Breakdown     *pricing.Breakdown
	// ObjectKey and URL are set when the PDF was uploaded
	ObjectKey string
	URL       string
}

type FileResult struct {
	Source string
	Result *GenerateResult
	Err    error
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
	}
}

func (s *invoiceService) defaults() invoice.Defaults {
	if s.Config == nil {
		return invoice.Defaults{}
	}
	return invoice.Defaults{
		Currency: s.Config.Invoice.Currency,
		TaxMode:  s.Config.Invoice.TaxMode,
	}
}

func (s *invoiceService) PrepareInvoice(inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice is required").Mark(ierr.ErrValidation)
	}
	inv.Normalize(s.defaults())
	return inv.Validate()
}

func (s *invoiceService) CalculateInvoice(ctx context.Context, inv *invoice.Invoice) (*pricing.Breakdown, error) {
	if err := s.PrepareInvoice(inv); err != nil {
		return nil, err
	}
	return inv.Breakdown()
}

func (s *invoiceService) GenerateInvoice(ctx context.Context, inv *invoice.Invoice) (*GenerateResult, error) {
	breakdown, err := s.CalculateInvoice(ctx, inv)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date, err := inv.IssueDate(now)
	if err != nil {
		return nil, err
	}

	number := inv.InvoiceNumber
	if number == "" {
		number = DefaultInvoiceNumber(now)
	}

	data := pdfgen.NewInvoiceData(inv, breakdown, number, date, s.loadLogo(ctx, inv.Logo))
	pdf, err := s.PDFGenerator.RenderInvoicePdf(ctx, data)
	if err != nil {
		return nil, err
	}

	folder := CompanyFolderName(inv.From)
	dir := InvoiceOutputDir(s.Config.Output.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Could not create output directory %s", dir).
			Mark(ierr.ErrSystem)
	}

	fileName := InvoiceFileName(number, folder, date)
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Could not write invoice to %s", path).
			Mark(ierr.ErrSystem)
	}

	result := &GenerateResult{
		InvoiceNumber: number,
		Path:          path,
		Breakdown:     breakdown,
	}

	if s.S3 != nil {
		key, err := s.S3.UploadDocument(ctx, s3.NewPdfDocument(folder+"/"+fileName, pdf))
		if err != nil {
			return result, err
		}
		result.ObjectKey = key
		if url, err := s.S3.GetPresignedUrl(ctx, key); err != nil {
			s.Logger.Warnw("failed to presign invoice url", "key", key, "error", err)
		} else {
			result.URL = url
		}
	}

	s.Logger.Infow("generated invoice",
		"invoice_number", number,
		"path", path,
		"total", breakdown.Total.String(),
	)
	return result, nil
}

// loadLogo never fails the invoice; a broken logo only produces a warning
func (s *invoiceService) loadLogo(ctx context.Context, source string) string {
	if source == "" || s.LogoLoader == nil {
		return ""
	}
	uri, err := s.LogoLoader.Load(ctx, source)
	if err != nil {
		s.Logger.Warnf("Could not load logo from %s. Error: %s", source, ierr.DisplayMessage(err))
		return ""
	}
	return uri
}

func (s *invoiceService) GenerateFromFiles(ctx context.Context, paths []string, concurrency int) []*FileResult {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]*FileResult, len(paths))
	p := pool.New().WithMaxGoroutines(concurrency)
	for i, path := range paths {
		p.Go(func() {
			res := &FileResult{Source: path}
			results[i] = res

			if err := ctx.Err(); err != nil {
				res.Err = ierr.WithError(err).Mark(ierr.ErrCancelled)
				return
			}

			inv, err := invoice.LoadFile(path)
			if err != nil {
				res.Err = err
				return
			}
			res.Result, res.Err = s.GenerateInvoice(ctx, inv)
		})
	}
	p.Wait()
	return results
}

func (s *invoiceService) SaveInvoiceFile(ctx context.Context, inv *invoice.Invoice, path string) error {
	if err := s.PrepareInvoice(inv); err != nil {
		return err
	}
	return invoice.WriteFile(path, inv)
}
