package cart

import (
	"context"
	"errors"
)

// ErrNotFound signals that a session has no line for the given product.
var ErrNotFound = errors.New("cart: not found")

// Repository stores raw cart lines keyed by an opaque, client-supplied
// session id. Joins against the catalog happen in the service.
type Repository interface {
	// List returns the session's lines in insertion order. A session with
	// no cart yields an empty list.
	List(ctx context.Context, sessionID string) ([]*Item, error)

	// Add merges the quantity into an existing (sessionID, productID) line,
	// or inserts a new line with a freshly allocated id. It returns the
	// stored line.
	Add(ctx context.Context, sessionID string, productID, quantity int) (*Item, error)

	// UpdateQuantity overwrites the line's quantity. A quantity <= 0
	// removes the line and returns (nil, nil). ErrNotFound when the line
	// does not exist.
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (*Item, error)

	// Remove deletes the matching line. ErrNotFound when absent.
	Remove(ctx context.Context, sessionID string, productID int) error

	// Clear drops the whole session. Clearing a session that never had a
	// cart is still a success.
	Clear(ctx context.Context, sessionID string) error
}
