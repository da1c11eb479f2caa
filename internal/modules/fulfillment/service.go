package fulfillment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/starburger/foodcart-backend/internal/modules/location"
	"github.com/starburger/foodcart-backend/internal/modules/menu"
	"github.com/starburger/foodcart-backend/internal/modules/order"
	"github.com/starburger/foodcart-backend/internal/modules/restaurant"
)

// DefaultMaxConcurrentResolves bounds parallel geocode lookups in one
// dashboard render.
const DefaultMaxConcurrentResolves = 8

// Service assembles the fulfillment dashboard: every unassigned NEW order
// with the restaurants able to cook it, nearest first.
type Service interface {
	AssembleDashboard(ctx context.Context) ([]*DashboardOrder, error)
}

type service struct {
	orders        order.Repository
	menu          menu.Repository
	restaurants   restaurant.Repository
	resolver      location.Resolver
	maxConcurrent int
}

func NewService(orders order.Repository, menuRepo menu.Repository,
	restaurants restaurant.Repository, resolver location.Resolver) Service {
	return &service{
		orders:        orders,
		menu:          menuRepo,
		restaurants:   restaurants,
		resolver:      resolver,
		maxConcurrent: DefaultMaxConcurrentResolves,
	}
}

// AssembleDashboard builds the availability index once for the whole batch,
// then resolves and ranks candidates per order. It never writes to orders or
// restaurants; assigning a cook is a separate workflow.
func (s *service) AssembleDashboard(ctx context.Context) ([]*DashboardOrder, error) {
	entries, err := s.menu.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu entries: %w", err)
	}
	idx := menu.BuildAvailability(entries)

	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	byID := make(map[uuid.UUID]*restaurant.Restaurant, len(restaurants))
	for _, rest := range restaurants {
		byID[rest.ID] = rest
	}

	orders, err := s.orders.ListUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("load unassigned orders: %w", err)
	}

	dashboard := make([]*DashboardOrder, 0, len(orders))
	for _, o := range orders {
		row := &DashboardOrder{
			OrderID:       o.ID,
			Firstname:     o.Firstname,
			Lastname:      o.Lastname,
			Phonenumber:   o.Phonenumber,
			Address:       o.Address,
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			Comment:       o.Comment,
			Candidates:    []RankedCandidate{},
		}

		candidateIDs := Candidates(o, idx)
		if len(candidateIDs) > 0 {
			candidates := make([]*restaurant.Restaurant, 0, len(candidateIDs))
			for _, id := range candidateIDs {
				if rest, ok := byID[id]; ok {
					candidates = append(candidates, rest)
				}
			}

			orderCoords, orderResolved, err := s.resolver.Resolve(ctx, o.Address)
			if err != nil {
				return nil, err
			}
			row.Candidates, err = rankCandidates(ctx, s.resolver, orderCoords,
				orderResolved, candidates, s.maxConcurrent)
			if err != nil {
				return nil, err
			}
		}
		dashboard = append(dashboard, row)
	}
	return dashboard, nil
}
