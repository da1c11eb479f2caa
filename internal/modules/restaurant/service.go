package restaurant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines restaurant business logic.
type Service interface {
	CreateRestaurant(ctx context.Context, req CreateRestaurantRequest) (*Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*Restaurant, error)
	ListRestaurants(ctx context.Context) ([]*Restaurant, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateRestaurant(ctx context.Context, req CreateRestaurantRequest) (*Restaurant, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Address == "" {
		return nil, fmt.Errorf("address is required")
	}
	rest := &Restaurant{
		ID:           uuid.New(),
		Name:         req.Name,
		Address:      req.Address,
		ContactPhone: req.ContactPhone,
	}
	if err := s.repo.Create(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *service) GetRestaurant(ctx context.Context, id string) (*Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListRestaurants(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.List(ctx)
}
