package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shashwotbhattarai/HandicraftHaven/internal/modules/catalog"
)

// ErrInvalidInput marks request payloads that fail boundary validation.
var ErrInvalidInput = errors.New("cart: invalid input")

// Service defines cart business logic for one opaque session id.
type Service interface {
	// GetCartItems returns the session's lines joined with product and
	// category. Lines that no longer resolve are dropped silently.
	GetCartItems(ctx context.Context, sessionID string) ([]*ItemWithProduct, error)

	// AddToCart merges quantity into an existing line for the same product
	// or inserts a new one.
	AddToCart(ctx context.Context, req AddToCartRequest) (*Item, error)

	// UpdateCartItem overwrites a line's quantity; <= 0 removes the line.
	UpdateCartItem(ctx context.Context, sessionID string, productID, quantity int) (*Item, error)

	RemoveFromCart(ctx context.Context, sessionID string, productID int) error
	ClearCart(ctx context.Context, sessionID string) error

	// NewSessionID mints an opaque session id for clients that have none.
	NewSessionID() string
}

// AddToCartRequest is the payload for adding a product to a session's cart.
type AddToCartRequest struct {
	SessionID string `json:"sessionId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type service struct {
	repo       Repository
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
}

// NewService creates a new cart service. The catalog repositories are used
// for read-time joins only; the cart never writes to them.
func NewService(repo Repository, products catalog.ProductRepository, categories catalog.CategoryRepository) Service {
	return &service{repo: repo, products: products, categories: categories}
}

func (s *service) GetCartItems(ctx context.Context, sessionID string) ([]*ItemWithProduct, error) {
	lines, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]*ItemWithProduct, 0, len(lines))
	for _, line := range lines {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			continue
		}
		cat, err := s.categories.GetByID(ctx, p.CategoryID)
		if err != nil {
			continue
		}
		out = append(out, &ItemWithProduct{
			Item:    *line,
			Product: catalog.ProductWithCategory{Product: *p, Category: *cat},
		})
	}
	return out, nil
}

func (s *service) AddToCart(ctx context.Context, req AddToCartRequest) (*Item, error) {
	switch {
	case req.SessionID == "":
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	case req.ProductID <= 0:
		return nil, fmt.Errorf("%w: productId is required", ErrInvalidInput)
	case req.Quantity <= 0:
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	// No stock-limit check here: the storefront UI enforces stock advisory
	// only, and the store accepts whatever quantity it is asked to hold.
	return s.repo.Add(ctx, req.SessionID, req.ProductID, req.Quantity)
}

func (s *service) UpdateCartItem(ctx context.Context, sessionID string, productID, quantity int) (*Item, error) {
	return s.repo.UpdateQuantity(ctx, sessionID, productID, quantity)
}

func (s *service) RemoveFromCart(ctx context.Context, sessionID string, productID int) error {
	return s.repo.Remove(ctx, sessionID, productID)
}

func (s *service) ClearCart(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}

func (s *service) NewSessionID() string {
	return uuid.NewString()
}
