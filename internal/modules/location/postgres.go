package location

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetByAddress(ctx context.Context, address string) (*Location, error) {
	loc := &Location{}
	err := r.db.QueryRowContext(ctx, `
		SELECT address, latitude, longitude, generated_at
		FROM locations WHERE address=$1`, address).
		Scan(&loc.Address, &loc.Latitude, &loc.Longitude, &loc.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func (r *postgresRepo) CreateIfAbsent(ctx context.Context, loc *Location) (*Location, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO locations (address, latitude, longitude, generated_at)
		VALUES ($1,$2,$3,NOW())`,
		loc.Address, loc.Latitude, loc.Longitude)
	if err == nil {
		return loc, nil
	}

	// A unique violation on the address means another resolver cached this
	// address between our lookup and insert; read the winner back.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		existing, getErr := r.GetByAddress(ctx, loc.Address)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, fmt.Errorf("location for %q vanished after duplicate insert", loc.Address)
		}
		return existing, nil
	}
	return nil, err
}
