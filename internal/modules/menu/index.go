package menu

import "github.com/google/uuid"

// Availability maps a product to the set of restaurants currently offering
// it. Products with no available entries are absent from the map; a missing
// key reads as an empty set. The index is a snapshot: it is rebuilt fresh
// from current entries for each batch of work, never patched incrementally.
type Availability map[uuid.UUID]map[uuid.UUID]struct{}

// BuildAvailability derives the index from menu entries. Entries with
// availability=false are skipped, so callers may pass either a pre-filtered
// or a full entry list.
func BuildAvailability(entries []*Entry) Availability {
	idx := Availability{}
	for _, e := range entries {
		if !e.Availability {
			continue
		}
		restaurants, ok := idx[e.ProductID]
		if !ok {
			restaurants = map[uuid.UUID]struct{}{}
			idx[e.ProductID] = restaurants
		}
		restaurants[e.RestaurantID] = struct{}{}
	}
	return idx
}

// Restaurants returns the set of restaurants offering the product. The
// returned map is shared with the index and must not be mutated.
func (a Availability) Restaurants(productID uuid.UUID) map[uuid.UUID]struct{} {
	return a[productID]
}
