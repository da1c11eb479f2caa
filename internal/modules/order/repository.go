package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// ListUnassigned returns orders with status NEW and no restaurant
	// assigned yet, newest first, with their lines eagerly loaded.
	ListUnassigned(ctx context.Context) ([]*Order, error)

	// GetByID retrieves an order with its lines by UUID.
	GetByID(ctx context.Context, id string) (*Order, error)

	// List returns all orders, optionally filtered by status, without lines.
	List(ctx context.Context, status string) ([]*Order, error)

	// UpdateStatus advances an order to a new status.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
