package restaurant

import "context"

// Repository defines data access for restaurants.
type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)

	// List returns all restaurants ordered by name.
	List(ctx context.Context) ([]*Restaurant, error)
}
