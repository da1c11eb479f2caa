package restaurant

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, rest *Restaurant) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO restaurants (id, name, address, contact_phone)
		VALUES ($1,$2,$3,$4)`,
		rest.ID, rest.Name, rest.Address, rest.ContactPhone)
	return err
}

func scanRestaurant(scan func(...interface{}) error) (*Restaurant, error) {
	rest := &Restaurant{}
	err := scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone,
		&rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, address, contact_phone, created_at, updated_at
		FROM restaurants WHERE id=$1`, uid)
	return scanRestaurant(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, contact_phone, created_at, updated_at
		FROM restaurants ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows.Scan)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}
