package service

import (
	"context"

	"github.com/invocli/invocli/internal/domain/company"
	ierr "github.com/invocli/invocli/internal/errors"
)

type CompanyService interface {
	CreateCompany(ctx context.Context, c *company.Company) (*company.Company, error)
	GetCompany(ctx context.Context, id string) (*company.Company, error)
	ListCompanies(ctx context.Context) ([]*company.Company, error)
	UpdateCompany(ctx context.Context, c *company.Company) (*company.Company, error)
	DeleteCompany(ctx context.Context, id string) error
}

type companyService struct {
	ServiceParams
}

func NewCompanyService(params ServiceParams) CompanyService {
	return &companyService{
		ServiceParams: params,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, c *company.Company) (*company.Company, error) {
	if c == nil {
		return nil, ierr.NewError("company is required").Mark(ierr.ErrValidation)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.CompanyRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.Logger.Debugw("created company", "company_id", c.ID, "name", c.From)
	return c, nil
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*company.Company, error) {
	if id == "" {
		return nil, ierr.NewError("company id is required").Mark(ierr.ErrValidation)
	}
	return s.CompanyRepo.Get(ctx, id)
}

func (s *companyService) ListCompanies(ctx context.Context) ([]*company.Company, error) {
	return s.CompanyRepo.List(ctx)
}

// UpdateCompany replaces the stored company with the same ID
func (s *companyService) UpdateCompany(ctx context.Context, c *company.Company) (*company.Company, error) {
	if c == nil || c.ID == "" {
		return nil, ierr.NewError("company id is required").Mark(ierr.ErrValidation)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.CompanyRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("company id is required").Mark(ierr.ErrValidation)
	}
	return s.CompanyRepo.Delete(ctx, id)
}
