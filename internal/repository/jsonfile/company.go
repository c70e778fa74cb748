package jsonfile

import (
	"context"

	"github.com/invocli/invocli/internal/domain/company"
	"github.com/invocli/invocli/internal/logger"
	"github.com/invocli/invocli/internal/types"
)

type companyRepository struct {
	store *Store[*company.Company]
	log   *logger.Logger
}

func NewCompanyRepository(path string, log *logger.Logger) company.Repository {
	return &companyRepository{
		store: NewStore[*company.Company](path, "company", log),
		log:   log,
	}
}

func (r *companyRepository) List(ctx context.Context) ([]*company.Company, error) {
	return r.store.List(ctx)
}

func (r *companyRepository) Get(ctx context.Context, id string) (*company.Company, error) {
	return r.store.Get(ctx, id)
}

func (r *companyRepository) Create(ctx context.Context, c *company.Company) error {
	if c.ID == "" {
		c.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMPANY)
	}
	return r.store.Create(ctx, c)
}

func (r *companyRepository) Update(ctx context.Context, c *company.Company) error {
	return r.store.Update(ctx, c)
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
