package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategory groups products on the storefront.
type ProductCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Product is an item customers can order.
type Product struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	Price         float64    `json:"price"`
	Description   string     `json:"description,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	SpecialStatus bool       `json:"special_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateProductRequest holds the data for creating a product.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	CategoryID    string  `json:"category_id,omitempty"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	SpecialStatus bool    `json:"special_status"`
}
