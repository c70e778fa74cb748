package testutil

import (
	"context"
	"time"

	"github.com/invocli/invocli/internal/cache"
	"github.com/invocli/invocli/internal/config"
	"github.com/invocli/invocli/internal/domain/company"
	"github.com/invocli/invocli/internal/domain/customer"
	"github.com/invocli/invocli/internal/logger"
	"github.com/invocli/invocli/internal/logo"
	"github.com/invocli/invocli/internal/types"
	"github.com/invocli/invocli/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	CompanyRepo  company.Repository
	CustomerRepo customer.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	stores       Stores
	logger       *logger.Logger
	config       *config.Configuration
	now          time.Time
	pdfGenerator *MockPDFGenerator
	httpClient   *MockHTTPClient
	logoLoader   logo.Loader
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()
	s.logger = logger.NewNopLogger()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.setupConfig()
	s.setupStores()
	s.now = time.Date(2024, time.March, 7, 10, 30, 0, 0, time.Local)
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupConfig() {
	cfg := config.GetDefaultConfig()
	cfg.Storage.DataDir = s.T().TempDir()
	cfg.Output.Dir = s.T().TempDir()
	cfg.Logging.Level = types.LogLevelDebug
	s.config = cfg
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		CompanyRepo:  NewInMemoryCompanyStore(),
		CustomerRepo: NewInMemoryCustomerStore(),
	}

	s.pdfGenerator = NewMockPDFGenerator()
	s.httpClient = NewMockHTTPClient()
	s.logoLoader = logo.NewLoader(s.httpClient, cache.NewInMemoryCache(s.config, s.logger), s.logger)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.CompanyRepo.(*InMemoryCompanyStore).Clear()
	s.stores.CustomerRepo.(*InMemoryCustomerStore).Clear()
	s.httpClient.Clear()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration; data and output dirs are per-test temp dirs
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetPDFGenerator returns the test PDF generator
func (s *BaseServiceTestSuite) GetPDFGenerator() *MockPDFGenerator {
	return s.pdfGenerator
}

// GetHTTPClient returns the mock client used by the logo loader
func (s *BaseServiceTestSuite) GetHTTPClient() *MockHTTPClient {
	return s.httpClient
}

func (s *BaseServiceTestSuite) GetLogoLoader() logo.Loader {
	return s.logoLoader
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the fixed test clock
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
