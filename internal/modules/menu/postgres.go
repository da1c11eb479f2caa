package menu

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListAvailable(ctx context.Context) ([]*Entry, error) {
	return r.list(ctx, `
		SELECT id, restaurant_id, product_id, availability, created_at, updated_at
		FROM menu_entries WHERE availability=true`)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Entry, error) {
	return r.list(ctx, `
		SELECT id, restaurant_id, product_id, availability, created_at, updated_at
		FROM menu_entries`)
}

func (r *postgresRepo) list(ctx context.Context, query string) ([]*Entry, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		err := rows.Scan(&e.ID, &e.RestaurantID, &e.ProductID, &e.Availability,
			&e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresRepo) Upsert(ctx context.Context, e *Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO menu_entries (id, restaurant_id, product_id, availability)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (restaurant_id, product_id)
		DO UPDATE SET availability=EXCLUDED.availability, updated_at=NOW()`,
		e.ID, e.RestaurantID, e.ProductID, e.Availability)
	return err
}
