package catalog

import (
	"context"
	"errors"
)

// ErrNotFound signals that an id has no matching record. Absence is an
// expected outcome here, not a failure.
var ErrNotFound = errors.New("catalog: not found")

// CategoryRepository stores categories keyed by an auto-incrementing
// integer id owned by the repository.
type CategoryRepository interface {
	// Create assigns the next id and stores the category.
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id int) (*Category, error)
	List(ctx context.Context, activeOnly bool) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	// Delete is a hard removal. It does not cascade to products.
	Delete(ctx context.Context, id int) error
}

// ProductRepository stores products. Listing and search return active
// products only; GetByID resolves any product regardless of state.
type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context, activeOnly bool) ([]*Product, error)
	ListByCategory(ctx context.Context, categoryID int) ([]*Product, error)
	// Search matches a case-insensitive substring against name or description.
	Search(ctx context.Context, query string) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int) error
}
