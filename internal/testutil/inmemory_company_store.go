package testutil

import (
	"context"

	"github.com/invocli/invocli/internal/domain/company"
	"github.com/invocli/invocli/internal/types"
	"github.com/samber/lo"
)

// InMemoryCompanyStore implements company.Repository
type InMemoryCompanyStore struct {
	*InMemoryStore[*company.Company]
}

// NewInMemoryCompanyStore creates a new in-memory company store
func NewInMemoryCompanyStore() *InMemoryCompanyStore {
	return &InMemoryCompanyStore{
		InMemoryStore: NewInMemoryStore[*company.Company](),
	}
}

// Helper to copy company
func copyCompany(c *company.Company) *company.Company {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (s *InMemoryCompanyStore) Create(ctx context.Context, c *company.Company) error {
	if c.ID == "" {
		c.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMPANY)
	}
	return s.InMemoryStore.Create(ctx, c.ID, copyCompany(c))
}

func (s *InMemoryCompanyStore) Get(ctx context.Context, id string) (*company.Company, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyCompany(c), nil
}

func (s *InMemoryCompanyStore) List(ctx context.Context) ([]*company.Company, error) {
	companies, err := s.InMemoryStore.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return lo.Map(companies, func(c *company.Company, _ int) *company.Company {
		return copyCompany(c)
	}), nil
}

func (s *InMemoryCompanyStore) Update(ctx context.Context, c *company.Company) error {
	return s.InMemoryStore.Update(ctx, c.ID, copyCompany(c))
}

func (s *InMemoryCompanyStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
