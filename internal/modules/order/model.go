package order

import (
	"time"

	"github.com/shashwotbhattarai/HandicraftHaven/internal/modules/catalog"
)

// StatusPending is the lifecycle stage every new order starts in. The
// admin UI walks orders through pending, processing, shipped and
// delivered, but the field deliberately stays a free-form string: the
// store never enforces a transition graph.
const StatusPending = "pending"

// Order is a customer checkout. Total is a decimal string captured at
// checkout time.
type Order struct {
	ID            int       `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Total         string    `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Item is one order line. Price is snapshotted when the order is placed
// and never re-read from the product.
type Item struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"orderId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// ItemWithProduct carries the line plus the product record if it still
// exists. Deleted products leave the snapshot empty but keep the line.
type ItemWithProduct struct {
	Item
	Product *catalog.Product `json:"product,omitempty"`
}

// OrderWithItems is an order joined with its lines at read time.
type OrderWithItems struct {
	Order
	Items []*ItemWithProduct `json:"items"`
}
