package customer

import "context"

// Repository defines the interface for customer data access
type Repository interface {
	// List returns customers in insertion order
	List(ctx context.Context) ([]*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	// Create assigns an ID when the customer has none
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id string) error
}
