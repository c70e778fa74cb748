package company

import "context"

// Repository defines the interface for company data access
type Repository interface {
	// List returns companies in insertion order
	List(ctx context.Context) ([]*Company, error)
	Get(ctx context.Context, id string) (*Company, error)
	// Create assigns an ID when the company has none
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}
