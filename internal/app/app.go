// Package app wires the invocli dependency graph with fx.
package app

import (
	"github.com/invocli/invocli/internal/cache"
	"github.com/invocli/invocli/internal/chrome"
	"github.com/invocli/invocli/internal/config"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/httpclient"
	"github.com/invocli/invocli/internal/logger"
	"github.com/invocli/invocli/internal/logo"
	"github.com/invocli/invocli/internal/pdf"
	"github.com/invocli/invocli/internal/pdfgen"
	"github.com/invocli/invocli/internal/repository"
	"github.com/invocli/invocli/internal/s3"
	"github.com/invocli/invocli/internal/service"
	"github.com/invocli/invocli/internal/validator"
	"go.uber.org/fx"
)

// Container holds what the commands need
type Container struct {
	Config          *config.Configuration
	Logger          *logger.Logger
	InvoiceService  service.InvoiceService
	CompanyService  service.CompanyService
	CustomerService service.CustomerService
}

// Module provides everything below the commands. *config.Configuration must be supplied.
var Module = fx.Options(
	fx.Provide(
		// Logger
		logger.NewLogger,

		// Cache
		fx.Annotate(cache.NewInMemoryCache, fx.As(new(cache.Cache))),

		// HTTP Client
		httpclient.NewDefaultClient,

		// Document pipeline
		logo.NewLoader,
		pdfgen.NewHTMLRenderer,
		chrome.NewPrinter,
		pdf.NewGenerator,

		// Optional uploads
		s3.NewService,

		// Repositories
		repository.NewCompanyRepository,
		repository.NewCustomerRepository,
	),

	// Service layer
	fx.Provide(
		service.NewServiceParams,

		service.NewInvoiceService,
		service.NewCompanyService,
		service.NewCustomerService,
	),

	fx.Invoke(func() {
		validator.NewValidator()
	}),
)

// New loads the configuration and builds the container
func New(configFile string) (*Container, error) {
	cfg, err := config.NewConfig(configFile)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not load configuration. Check the config file and INVOCLI_ environment variables").
			Mark(ierr.ErrValidation)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds the container for an already loaded configuration
func NewWithConfig(cfg *config.Configuration) (*Container, error) {
	c := &Container{Config: cfg}

	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		Module,
		fx.Populate(
			&c.Logger,
			&c.InvoiceService,
			&c.CompanyService,
			&c.CustomerService,
		),
	)
	if err := fxApp.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not initialize invocli").
			Mark(ierr.ErrSystem)
	}
	logger.L = c.Logger
	return c, nil
}
