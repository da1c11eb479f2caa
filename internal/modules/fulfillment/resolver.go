package fulfillment

import (
	"sort"

	"github.com/google/uuid"

	"github.com/starburger/foodcart-backend/internal/modules/menu"
	"github.com/starburger/foodcart-backend/internal/modules/order"
)

// Candidates returns the restaurants able to cook every product in the
// order: the intersection of the per-product restaurant sets in the
// availability index. An order with no distinct products yields no
// candidates; the empty intersection must never read as "every restaurant".
// The result is sorted by id so identical inputs rank identically.
func Candidates(o *order.Order, idx menu.Availability) []uuid.UUID {
	products := map[uuid.UUID]struct{}{}
	for _, line := range o.Lines {
		products[line.ProductID] = struct{}{}
	}
	if len(products) == 0 {
		return nil
	}

	var result map[uuid.UUID]struct{}
	for productID := range products {
		offering := idx.Restaurants(productID)
		if len(offering) == 0 {
			return nil
		}
		if result == nil {
			result = make(map[uuid.UUID]struct{}, len(offering))
			for id := range offering {
				result[id] = struct{}{}
			}
			continue
		}
		for id := range result {
			if _, ok := offering[id]; !ok {
				delete(result, id)
			}
		}
		if len(result) == 0 {
			return nil
		}
	}

	ids := make([]uuid.UUID, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}
