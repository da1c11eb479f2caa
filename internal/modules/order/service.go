package order

import (
	"context"
	"fmt"
)

// Service defines order business logic for the operator side. Order intake
// itself happens through a separate storefront workflow writing straight to
// the store; this service only reads and advances existing orders.
type Service interface {
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context, status string) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error
}

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusCooking:    true,
	StatusInDelivery: true,
	StatusFinished:   true,
	StatusCanceled:   true,
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	return s.repo.List(ctx, status)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error {
	status := Status(req.Status)
	if !validStatuses[status] {
		return fmt.Errorf("invalid status %q", req.Status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
