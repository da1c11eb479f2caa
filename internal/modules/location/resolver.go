package location

import (
	"context"
	"fmt"
	"log"
)

// Resolver is the geocode cache: it maps an address to coordinates, filling
// the cache from the external provider on a miss.
type Resolver interface {
	// Resolve returns the coordinates for an address. ok is false when the
	// address cannot be geocoded right now (provider miss, failure or
	// timeout); the caller is expected to carry on without coordinates. An
	// error is returned only when the cache store itself fails.
	Resolve(ctx context.Context, address string) (coords Coordinates, ok bool, err error)
}

type resolver struct {
	repo     Repository
	geocoder Geocoder
}

func NewResolver(repo Repository, geocoder Geocoder) Resolver {
	return &resolver{repo: repo, geocoder: geocoder}
}

func (r *resolver) Resolve(ctx context.Context, address string) (Coordinates, bool, error) {
	loc, err := r.repo.GetByAddress(ctx, address)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("lookup location %q: %w", address, err)
	}
	if loc != nil {
		return loc.Coordinates(), true, nil
	}

	coords, found, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		// Provider trouble is not fatal: the address stays unresolved and a
		// later pass will try again.
		log.Printf("geocode %q: %v", address, err)
		return Coordinates{}, false, nil
	}
	if !found {
		return Coordinates{}, false, nil
	}

	stored, err := r.repo.CreateIfAbsent(ctx, &Location{
		Address:   address,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	})
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("cache location %q: %w", address, err)
	}
	return stored.Coordinates(), true, nil
}
