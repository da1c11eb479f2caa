package menu

import "context"

// Repository defines data access for restaurant menu entries.
type Repository interface {
	// ListAvailable returns every entry with availability=true.
	ListAvailable(ctx context.Context) ([]*Entry, error)

	// List returns all entries regardless of availability.
	List(ctx context.Context) ([]*Entry, error)

	// Upsert inserts the entry or, if the (restaurant, product) pair already
	// exists, updates its availability flag.
	Upsert(ctx context.Context, e *Entry) error
}
