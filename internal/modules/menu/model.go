package menu

import (
	"time"

	"github.com/google/uuid"
)

// Entry records whether a restaurant currently sells a product.
// The (restaurant_id, product_id) pair is unique.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	ProductID    uuid.UUID `json:"product_id"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetAvailabilityRequest is the payload for switching a menu position on or off.
type SetAvailabilityRequest struct {
	RestaurantID string `json:"restaurant_id"`
	ProductID    string `json:"product_id"`
	Availability bool   `json:"availability"`
}

// MatrixRow is one product's availability across all restaurants, in the
// same order as the restaurants slice of the surrounding Matrix.
type MatrixRow struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Availability []bool    `json:"availability"`
}

// Matrix is the operator's product/restaurant availability overview.
type Matrix struct {
	Restaurants []MatrixRestaurant `json:"restaurants"`
	Rows        []MatrixRow        `json:"rows"`
}

// MatrixRestaurant labels one column of the matrix.
type MatrixRestaurant struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
