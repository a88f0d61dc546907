package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashwotbhattarai/HandicraftHaven/internal/modules/catalog"
)

// ErrInvalidInput marks request payloads that fail boundary validation.
var ErrInvalidInput = errors.New("order: invalid input")

// Service defines order management business logic.
type Service interface {
	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)

	// GetOrder returns the order with its lines. Each line carries the
	// current product record when it still exists; lines survive product
	// deletion with an empty snapshot.
	GetOrder(ctx context.Context, id int) (*OrderWithItems, error)

	// CreateOrder persists the order and its lines, defaulting status to
	// pending and stamping the creation time.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)

	// UpdateStatus overwrites the status with any non-empty string.
	UpdateStatus(ctx context.Context, id int, status string) (*Order, error)
}

// InsertOrder is the order half of a checkout payload.
type InsertOrder struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Total         string  `json:"total"`
	Status        *string `json:"status"`
}

// InsertItem is one line of a checkout payload. Price is the unit price
// the customer saw, kept as-is.
type InsertItem struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// CreateOrderRequest is the full checkout payload.
type CreateOrderRequest struct {
	Order InsertOrder  `json:"order"`
	Items []InsertItem `json:"items"`
}

type service struct {
	repo     Repository
	products catalog.ProductRepository
}

// NewService creates a new order service. The product repository is only
// read, to attach snapshots to order lines.
func NewService(repo Repository, products catalog.ProductRepository) Service {
	return &service{repo: repo, products: products}
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) GetOrder(ctx context.Context, id int) (*OrderWithItems, error) {
	o, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &OrderWithItems{Order: *o, Items: make([]*ItemWithProduct, 0, len(items))}
	for _, it := range items {
		line := &ItemWithProduct{Item: *it}
		if p, err := s.products.GetByID(ctx, it.ProductID); err == nil {
			line.Product = p
		}
		out.Items = append(out.Items, line)
	}
	return out, nil
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	switch {
	case req.Order.CustomerName == "":
		return nil, fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	case req.Order.CustomerEmail == "":
		return nil, fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	case req.Order.Total == "":
		return nil, fmt.Errorf("%w: total is required", ErrInvalidInput)
	case len(req.Items) == 0:
		return nil, fmt.Errorf("%w: order must contain items", ErrInvalidInput)
	}

	status := StatusPending
	if req.Order.Status != nil && *req.Order.Status != "" {
		status = *req.Order.Status
	}
	o := &Order{
		CustomerName:  req.Order.CustomerName,
		CustomerEmail: req.Order.CustomerEmail,
		Total:         req.Order.Total,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}

	items := make([]*Item, 0, len(req.Items))
	for _, in := range req.Items {
		if in.ProductID <= 0 || in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: invalid order item", ErrInvalidInput)
		}
		items = append(items, &Item{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     in.Price,
		})
	}

	if err := s.repo.Create(ctx, o, items); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int, status string) (*Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
