package order

import (
	"context"
	"errors"
)

// ErrNotFound signals that an order id has no matching record.
var ErrNotFound = errors.New("order: not found")

// Repository stores orders and their lines, ids auto-incremented per
// entity type.
type Repository interface {
	// Create assigns the order id, stamps each item with it and allocates
	// item ids.
	Create(ctx context.Context, o *Order, items []*Item) error

	// GetByID returns the order and all of its lines.
	GetByID(ctx context.Context, id int) (*Order, []*Item, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]*Order, error)

	// UpdateStatus overwrites the status field unconditionally.
	UpdateStatus(ctx context.Context, id int, status string) (*Order, error)
}
