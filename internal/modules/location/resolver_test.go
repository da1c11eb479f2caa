package location_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/starburger/foodcart-backend/internal/modules/location"
	"github.com/starburger/foodcart-backend/internal/modules/location/mocks"
)

func TestResolver(t *testing.T) {
	coords := location.Coordinates{Latitude: 55.751244, Longitude: 37.618423}

	t.Run("cache hit skips the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetByAddress(gomock.Any(), "Addr-X").
			Return(&location.Location{Address: "Addr-X", Latitude: coords.Latitude, Longitude: coords.Longitude}, nil)
		geocoder := mocks.NewMockGeocoder(ctrl) // no Geocode expectation: a call would fail the test

		got, ok, err := location.NewResolver(repo, geocoder).Resolve(context.Background(), "Addr-X")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || got != coords {
			t.Fatalf("expected cached coordinates, got %+v (ok=%v)", got, ok)
		}
	})

	t.Run("miss fetches and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetByAddress(gomock.Any(), "Addr-X").Return(nil, nil)
		geocoder := mocks.NewMockGeocoder(ctrl)
		geocoder.EXPECT().Geocode(gomock.Any(), "Addr-X").Return(coords, true, nil)
		repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, loc *location.Location) (*location.Location, error) {
				if loc.Address != "Addr-X" || loc.Latitude != coords.Latitude {
					t.Fatalf("unexpected record %+v", loc)
				}
				return loc, nil
			})

		got, ok, err := location.NewResolver(repo, geocoder).Resolve(context.Background(), "Addr-X")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || got != coords {
			t.Fatalf("expected fetched coordinates, got %+v (ok=%v)", got, ok)
		}
	})

	t.Run("second resolve is served from the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		cached := &location.Location{Address: "Addr-X", Latitude: coords.Latitude, Longitude: coords.Longitude}
		gomock.InOrder(
			repo.EXPECT().GetByAddress(gomock.Any(), "Addr-X").Return(nil, nil),
			repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(cached, nil),
			repo.EXPECT().GetByAddress(gomock.Any(), "Addr-X").Return(cached, nil),
		)
		geocoder := mocks.NewMockGeocoder(ctrl)
		geocoder.EXPECT().Geocode(gomock.Any(), "Addr-X").Return(coords, true, nil).Times(1)

		resolver := location.NewResolver(repo, geocoder)
		if _, ok, _ := resolver.Resolve(context.Background(), "Addr-X"); !ok {
			t.Fatal("first resolve failed")
		}
		if _, ok, _ := resolver.Resolve(context.Background(), "Addr-X"); !ok {
			t.Fatal("second resolve failed")
		}
	})

	t.Run("provider miss persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetByAddress(gomock.Any(), "Addr-Z").Return(nil, nil)
		geocoder := mocks.NewMockGeocoder(ctrl)
		geocoder.EXPECT().Geocode(gomock.Any(), "Addr-Z").Return(location.Coordinates{}, false, nil)
		// no CreateIfAbsent expectation: persisting would fail the test

		_, ok, err := location.NewResolver(repo, geocoder).Resolve(context.Background(), "Addr-Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected unresolved")
		}
	})

	t.Run("provider failure is unresolved, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetByAddress(gomock.Any(), "Addr-Z").Return(nil, nil)
		geocoder := mocks.NewMockGeocoder(ctrl)
		geocoder.EXPECT().Geocode(gomock.Any(), "Addr-Z").
			Return(location.Coordinates{}, false, errors.New("timeout"))

		_, ok, err := location.NewResolver(repo, geocoder).Resolve(context.Background(), "Addr-Z")
		if err != nil {
			t.Fatalf("provider failure must not be fatal, got %v", err)
		}
		if ok {
			t.Fatal("expected unresolved")
		}
	})

	t.Run("store failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetByAddress(gomock.Any(), "Addr-X").Return(nil, errors.New("db down"))
		geocoder := mocks.NewMockGeocoder(ctrl)

		_, _, err := location.NewResolver(repo, geocoder).Resolve(context.Background(), "Addr-X")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("losing the insert race returns the winning record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		winner := &location.Location{Address: "Addr-X", Latitude: 55.0, Longitude: 37.0}
		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetByAddress(gomock.Any(), "Addr-X").Return(nil, nil)
		geocoder := mocks.NewMockGeocoder(ctrl)
		geocoder.EXPECT().Geocode(gomock.Any(), "Addr-X").Return(coords, true, nil)
		repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(winner, nil)

		got, ok, err := location.NewResolver(repo, geocoder).Resolve(context.Background(), "Addr-X")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || got != winner.Coordinates() {
			t.Fatalf("expected the winner's coordinates, got %+v", got)
		}
	})
}
