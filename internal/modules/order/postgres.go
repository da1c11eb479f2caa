package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `id, firstname, lastname, phonenumber, address, status,
       payment_method, comment, restaurant_id, registered_at, called_at, delivered_at`

func (r *postgresRepo) scanOrder(scan func(...interface{}) error) (*Order, error) {
	o := &Order{}
	err := scan(&o.ID, &o.Firstname, &o.Lastname, &o.Phonenumber, &o.Address,
		&o.Status, &o.PaymentMethod, &o.Comment, &o.RestaurantID,
		&o.RegisteredAt, &o.CalledAt, &o.DeliveredAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListUnassigned(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status=$1 AND restaurant_id IS NULL
		ORDER BY registered_at DESC`, StatusNew)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := r.scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		o.Lines, err = r.listLines(ctx, o.ID)
		if err != nil {
			return nil, fmt.Errorf("load lines for order %s: %w", o.ID, err)
		}
	}
	return orders, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	o, err := r.scanOrder(r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE id=$1`, uid).Scan)
	if err != nil {
		return nil, err
	}
	o.Lines, err = r.listLines(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) List(ctx context.Context, status string) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY registered_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := r.scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$1 WHERE id=$2`, status, uid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *postgresRepo) listLines(ctx context.Context, orderID uuid.UUID) ([]*Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, fixed_price
		FROM order_lines WHERE order_id=$1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*Line
	for rows.Next() {
		l := &Line{}
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.FixedPrice); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
