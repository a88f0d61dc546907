package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates an order repository backed by the orders
// and order_items tables.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Create inserts the order and all its items inside a single transaction.
func (r *postgresRepo) Create(ctx context.Context, o *Order, items []*Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, customer_email, total, status, created_at)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		o.CustomerName, o.CustomerEmail, o.Total, o.Status, o.CreatedAt).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range items {
		it.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1,$2,$3,$4) RETURNING id`,
			it.OrderID, it.ProductID, it.Quantity, it.Price).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}
	return tx.Commit()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Order, []*Item, error) {
	o := &Order{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_name, customer_email, total, status, created_at
		FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.Total, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items WHERE order_id=$1 ORDER BY id`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]*Item, 0)
	for rows.Next() {
		it := &Item{}
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return o, items, rows.Err()
}

func (r *postgresRepo) List(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, customer_email, total, status, created_at
		FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int, status string) (*Order, error) {
	o := &Order{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE orders SET status=$1 WHERE id=$2
		RETURNING id, customer_name, customer_email, total, status, created_at`,
		status, id).
		Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.Total, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
