package service

import (
	"context"

	"github.com/invocli/invocli/internal/domain/customer"
	ierr "github.com/invocli/invocli/internal/errors"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
	GetCustomer(ctx context.Context, id string) (*customer.Customer, error)
	ListCustomers(ctx context.Context) ([]*customer.Customer, error)
	UpdateCustomer(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{
		ServiceParams: params,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if c == nil {
		return nil, ierr.NewError("customer is required").Mark(ierr.ErrValidation)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.Logger.Debugw("created customer", "customer_id", c.ID, "name", c.To)
	return c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	if id == "" {
		return nil, ierr.NewError("customer id is required").Mark(ierr.ErrValidation)
	}
	return s.CustomerRepo.Get(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	return s.CustomerRepo.List(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if c == nil || c.ID == "" {
		return nil, ierr.NewError("customer id is required").Mark(ierr.ErrValidation)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.CustomerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("customer id is required").Mark(ierr.ErrValidation)
	}
	return s.CustomerRepo.Delete(ctx, id)
}
