package catalog

import "context"

// Repository defines data access for the product catalog.
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProductByID(ctx context.Context, id string) (*Product, error)

	// ListProducts returns products ordered by name, optionally only
	// special-offer items.
	ListProducts(ctx context.Context, specialOnly bool) ([]*Product, error)

	CreateCategory(ctx context.Context, c *ProductCategory) error
	ListCategories(ctx context.Context) ([]*ProductCategory, error)
}
