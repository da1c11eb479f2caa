package fulfillment

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"

	"github.com/starburger/foodcart-backend/internal/modules/location"
	"github.com/starburger/foodcart-backend/internal/modules/restaurant"
)

var wgs84 = ellipsoid.Init("WGS84", ellipsoid.Degrees, ellipsoid.Meter,
	ellipsoid.LongitudeIsSymmetric, ellipsoid.BearingIsSymmetric)

// distanceKm computes the ellipsoidal geodesic distance between two points
// in kilometres, rounded to 3 decimal places.
func distanceKm(a, b location.Coordinates) float64 {
	meters, _ := wgs84.To(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	return math.Round(meters) / 1000
}

// rankCandidates resolves each candidate restaurant's address and orders the
// list ascending by distance from the client. Restaurants whose address (or
// the order's own address) cannot be geocoded stay in the list with the
// sentinel distance 0 and the "distance undetermined" label; since 0 is the
// minimum possible value they sort to the front. Address resolution runs
// concurrently, bounded to keep within the geocoding provider's rate limits.
func rankCandidates(ctx context.Context, resolver location.Resolver,
	orderCoords location.Coordinates, orderResolved bool,
	candidates []*restaurant.Restaurant, maxConcurrent int) ([]RankedCandidate, error) {

	ranked := make([]RankedCandidate, len(candidates))
	errs := make([]error, len(candidates))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrent)
	for i, rest := range candidates {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, rest *restaurant.Restaurant) {
			defer wg.Done()
			defer func() { <-semaphore }()

			coords, ok, err := resolver.Resolve(ctx, rest.Address)
			if err != nil {
				errs[i] = err
				return
			}
			entry := RankedCandidate{RestaurantID: rest.ID, RestaurantName: rest.Name}
			if !ok || !orderResolved {
				entry.Label = UndeterminedDistance
			} else {
				entry.DistanceKm = distanceKm(orderCoords, coords)
				entry.Label = fmt.Sprintf("%s - %.3f km", rest.Name, entry.DistanceKm)
			}
			ranked[i] = entry
		}(i, rest)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked, nil
}
