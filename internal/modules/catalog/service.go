package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, specialOnly bool) ([]*Product, error)
	CreateCategory(ctx context.Context, name string) (*ProductCategory, error)
	ListCategories(ctx context.Context) ([]*ProductCategory, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	p := &Product{
		ID:            uuid.New(),
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		SpecialStatus: req.SpecialStatus,
	}
	if req.CategoryID != "" {
		uid, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id: %w", err)
		}
		p.CategoryID = &uid
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, specialOnly bool) ([]*Product, error) {
	return s.repo.ListProducts(ctx, specialOnly)
}

func (s *service) CreateCategory(ctx context.Context, name string) (*ProductCategory, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	c := &ProductCategory{ID: uuid.New(), Name: name}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*ProductCategory, error) {
	return s.repo.ListCategories(ctx)
}
