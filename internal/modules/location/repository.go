package location

import "context"

// Repository defines data access for cached locations.
type Repository interface {
	// GetByAddress looks a record up by exact address match. A cache miss is
	// (nil, nil); an error means the store itself is unavailable.
	GetByAddress(ctx context.Context, address string) (*Location, error)

	// CreateIfAbsent inserts the record and returns it. If a concurrent
	// resolver already inserted a record for the same address, the existing
	// record is returned instead; losing that race is not an error.
	CreateIfAbsent(ctx context.Context, loc *Location) (*Location, error)
}
