package fulfillment

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/starburger/foodcart-backend/internal/modules/location"
	"github.com/starburger/foodcart-backend/internal/modules/location/mocks"
	"github.com/starburger/foodcart-backend/internal/modules/restaurant"
)

func TestRankCandidates(t *testing.T) {
	orderCoords := location.Coordinates{Latitude: 55.751244, Longitude: 37.618423}

	near := &restaurant.Restaurant{ID: uuid.New(), Name: "Near", Address: "Addr-Y"}
	far := &restaurant.Restaurant{ID: uuid.New(), Name: "Far", Address: "Addr-Far"}
	lost := &restaurant.Restaurant{ID: uuid.New(), Name: "Lost", Address: "Addr-Z"}

	t.Run("orders ascending by distance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockResolver(ctrl)
		resolver.EXPECT().Resolve(gomock.Any(), "Addr-Y").
			Return(location.Coordinates{Latitude: 55.755826, Longitude: 37.617300}, true, nil)
		resolver.EXPECT().Resolve(gomock.Any(), "Addr-Far").
			Return(location.Coordinates{Latitude: 55.9, Longitude: 37.6}, true, nil)

		ranked, err := rankCandidates(context.Background(), resolver, orderCoords, true,
			[]*restaurant.Restaurant{far, near}, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranked) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(ranked))
		}
		if ranked[0].RestaurantName != "Near" || ranked[1].RestaurantName != "Far" {
			t.Fatalf("expected Near before Far, got %q then %q",
				ranked[0].RestaurantName, ranked[1].RestaurantName)
		}
		if math.Abs(ranked[0].DistanceKm-0.515) > 0.01 {
			t.Fatalf("expected ~0.515 km, got %v", ranked[0].DistanceKm)
		}
		if ranked[0].Label == UndeterminedDistance {
			t.Fatalf("resolved entry must carry a distance label, got %q", ranked[0].Label)
		}
	})

	t.Run("unresolved restaurant keeps sentinel and sorts first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockResolver(ctrl)
		resolver.EXPECT().Resolve(gomock.Any(), "Addr-Y").
			Return(location.Coordinates{Latitude: 55.755826, Longitude: 37.617300}, true, nil)
		resolver.EXPECT().Resolve(gomock.Any(), "Addr-Z").
			Return(location.Coordinates{}, false, nil)

		ranked, err := rankCandidates(context.Background(), resolver, orderCoords, true,
			[]*restaurant.Restaurant{near, lost}, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranked) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(ranked))
		}
		if ranked[0].RestaurantName != "Lost" {
			t.Fatalf("sentinel entry must sort to the front, got %q first", ranked[0].RestaurantName)
		}
		if ranked[0].DistanceKm != 0 {
			t.Fatalf("unresolved entry must carry distance 0, got %v", ranked[0].DistanceKm)
		}
		if ranked[0].Label != UndeterminedDistance {
			t.Fatalf("expected %q, got %q", UndeterminedDistance, ranked[0].Label)
		}
	})

	t.Run("unresolved order address marks every entry undetermined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockResolver(ctrl)
		// Restaurant addresses still resolve so the cache gets filled.
		resolver.EXPECT().Resolve(gomock.Any(), "Addr-Y").
			Return(location.Coordinates{Latitude: 55.755826, Longitude: 37.617300}, true, nil)

		ranked, err := rankCandidates(context.Background(), resolver, location.Coordinates{}, false,
			[]*restaurant.Restaurant{near}, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ranked[0].DistanceKm != 0 || ranked[0].Label != UndeterminedDistance {
			t.Fatalf("expected sentinel entry, got %+v", ranked[0])
		}
	})

	t.Run("store failure during resolution is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockResolver(ctrl)
		resolver.EXPECT().Resolve(gomock.Any(), "Addr-Y").
			Return(location.Coordinates{}, false, context.DeadlineExceeded)

		_, err := rankCandidates(context.Background(), resolver, orderCoords, true,
			[]*restaurant.Restaurant{near}, 4)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestDistanceKm(t *testing.T) {
	a := location.Coordinates{Latitude: 55.751244, Longitude: 37.618423}
	b := location.Coordinates{Latitude: 55.755826, Longitude: 37.617300}

	d := distanceKm(a, b)
	if math.Abs(d-0.515) > 0.01 {
		t.Fatalf("expected ~0.515 km, got %v", d)
	}
	// Rounded to 3 decimal places.
	if d != math.Round(d*1000)/1000 {
		t.Fatalf("expected 3-decimal rounding, got %v", d)
	}

	if got := distanceKm(a, a); got != 0 {
		t.Fatalf("distance to self must be 0, got %v", got)
	}
}
