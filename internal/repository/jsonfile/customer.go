package jsonfile

import (
	"context"

	"github.com/invocli/invocli/internal/domain/customer"
	"github.com/invocli/invocli/internal/logger"
	"github.com/invocli/invocli/internal/types"
)

type customerRepository struct {
	store *Store[*customer.Customer]
	log   *logger.Logger
}

func NewCustomerRepository(path string, log *logger.Logger) customer.Repository {
	return &customerRepository{
		store: NewStore[*customer.Customer](path, "customer", log),
		log:   log,
	}
}

func (r *customerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	return r.store.List(ctx)
}

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	return r.store.Get(ctx, id)
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if c.ID == "" {
		c.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER)
	}
	return r.store.Create(ctx, c)
}

func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return r.store.Update(ctx, c)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
