package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, category_id, price, description, image_url, special_status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Name, p.CategoryID, p.Price, p.Description, p.ImageURL, p.SpecialStatus)
	return err
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.CategoryID, &p.Price, &p.Description,
		&p.ImageURL, &p.SpecialStatus, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, category_id, price, description, image_url, special_status, created_at, updated_at
		FROM products WHERE id=$1`, uid)
	return scanProduct(row.Scan)
}

func (r *postgresRepo) ListProducts(ctx context.Context, specialOnly bool) ([]*Product, error) {
	query := `SELECT id, name, category_id, price, description, image_url, special_status, created_at, updated_at
	          FROM products`
	if specialOnly {
		query += ` WHERE special_status=true`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) CreateCategory(ctx context.Context, c *ProductCategory) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO product_categories (id, name) VALUES ($1,$2)`, c.ID, c.Name)
	return err
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]*ProductCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM product_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*ProductCategory
	for rows.Next() {
		c := &ProductCategory{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
