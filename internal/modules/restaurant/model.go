package restaurant

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a kitchen that can be assigned orders to cook.
// The address is free text as entered by the manager; coordinates for it
// are resolved lazily through the location module.
type Restaurant struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateRestaurantRequest is the payload for registering a restaurant.
type CreateRestaurantRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone"`
}
