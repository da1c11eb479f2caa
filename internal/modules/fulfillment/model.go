package fulfillment

import (
	"github.com/google/uuid"

	"github.com/starburger/foodcart-backend/internal/modules/order"
)

// UndeterminedDistance labels a candidate whose distance to the client could
// not be computed because one of the two addresses failed to geocode.
const UndeterminedDistance = "distance undetermined"

// RankedCandidate is a restaurant able to cook an entire order, with its
// distance to the delivery address. DistanceKm is 0 when the distance is
// undetermined; the Label distinguishes that sentinel from a genuine
// zero-kilometre match.
type RankedCandidate struct {
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	DistanceKm     float64   `json:"distance_km"`
	Label          string    `json:"label"`
}

// DashboardOrder is one row of the operator dashboard: an unassigned order
// with its capable restaurants ordered by distance.
type DashboardOrder struct {
	OrderID       uuid.UUID           `json:"order_id"`
	Firstname     string              `json:"firstname"`
	Lastname      string              `json:"lastname"`
	Phonenumber   string              `json:"phonenumber"`
	Address       string              `json:"address"`
	Status        order.Status        `json:"status"`
	PaymentMethod order.PaymentMethod `json:"payment_method"`
	Comment       string              `json:"comment,omitempty"`
	Candidates    []RankedCandidate   `json:"candidates"`
}
