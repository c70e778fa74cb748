package service

import (
	"time"

	"github.com/invocli/invocli/internal/config"
	"github.com/invocli/invocli/internal/domain/company"
	"github.com/invocli/invocli/internal/domain/customer"
	"github.com/invocli/invocli/internal/logger"
	"github.com/invocli/invocli/internal/logo"
	"github.com/invocli/invocli/internal/pdf"
	"github.com/invocli/invocli/internal/s3"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger       *logger.Logger
	Config       *config.Configuration
	PDFGenerator pdf.Generator
	LogoLoader   logo.Loader

	// S3 is nil when uploads are disabled
	S3 s3.Service

	// Repositories
	CompanyRepo  company.Repository
	CustomerRepo customer.Repository

	// Now is the clock used for invoice dates and numbers
	Now func() time.Time
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	pdfGenerator pdf.Generator,
	logoLoader logo.Loader,
	s3Service s3.Service,
	companyRepo company.Repository,
	customerRepo customer.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		PDFGenerator: pdfGenerator,
		LogoLoader:   logoLoader,
		S3:           s3Service,
		CompanyRepo:  companyRepo,
		CustomerRepo: customerRepo,
		Now:          time.Now,
	}
}

func (p ServiceParams) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
