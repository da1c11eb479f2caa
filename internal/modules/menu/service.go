package menu

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/starburger/foodcart-backend/internal/modules/catalog"
	"github.com/starburger/foodcart-backend/internal/modules/restaurant"
)

// Service defines menu business logic.
type Service interface {
	// SetAvailability switches a (restaurant, product) menu position on or off,
	// creating the entry if it does not exist yet.
	SetAvailability(ctx context.Context, req SetAvailabilityRequest) (*Entry, error)

	// AvailabilityMatrix builds the operator overview: one row per product,
	// one boolean per restaurant in restaurant name order.
	AvailabilityMatrix(ctx context.Context) (*Matrix, error)
}

type service struct {
	repo           Repository
	restaurantRepo restaurant.Repository
	productCatalog catalog.Repository
}

func NewService(repo Repository, restaurantRepo restaurant.Repository, productCatalog catalog.Repository) Service {
	return &service{repo: repo, restaurantRepo: restaurantRepo, productCatalog: productCatalog}
}

func (s *service) SetAvailability(ctx context.Context, req SetAvailabilityRequest) (*Entry, error) {
	restID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant_id: %w", err)
	}
	prodID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product_id: %w", err)
	}
	e := &Entry{
		ID:           uuid.New(),
		RestaurantID: restID,
		ProductID:    prodID,
		Availability: req.Availability,
	}
	if err := s.repo.Upsert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) AvailabilityMatrix(ctx context.Context) (*Matrix, error) {
	restaurants, err := s.restaurantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	products, err := s.productCatalog.ListProducts(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu entries: %w", err)
	}

	available := map[uuid.UUID]map[uuid.UUID]bool{}
	for _, e := range entries {
		byRestaurant, ok := available[e.ProductID]
		if !ok {
			byRestaurant = map[uuid.UUID]bool{}
			available[e.ProductID] = byRestaurant
		}
		byRestaurant[e.RestaurantID] = e.Availability
	}

	m := &Matrix{}
	for _, rest := range restaurants {
		m.Restaurants = append(m.Restaurants, MatrixRestaurant{ID: rest.ID, Name: rest.Name})
	}
	for _, p := range products {
		row := MatrixRow{ProductID: p.ID, ProductName: p.Name}
		for _, rest := range restaurants {
			row.Availability = append(row.Availability, available[p.ID][rest.ID])
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}
