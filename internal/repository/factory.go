package repository

import (
	"github.com/invocli/invocli/internal/config"
	"github.com/invocli/invocli/internal/domain/company"
	"github.com/invocli/invocli/internal/domain/customer"
	"github.com/invocli/invocli/internal/logger"
	jsonfileRepo "github.com/invocli/invocli/internal/repository/jsonfile"
)

func NewCompanyRepository(cfg *config.Configuration, logger *logger.Logger) company.Repository {
	return jsonfileRepo.NewCompanyRepository(cfg.Storage.CompanyFile(), logger)
}

func NewCustomerRepository(cfg *config.Configuration, logger *logger.Logger) customer.Repository {
	return jsonfileRepo.NewCustomerRepository(cfg.Storage.CustomerFile(), logger)
}
