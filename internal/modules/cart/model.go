package cart

import "github.com/shashwotbhattarai/HandicraftHaven/internal/modules/catalog"

// Item is one cart line. A session holds at most one line per product;
// adding the same product again merges quantities.
type Item struct {
	ID        int    `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ItemWithProduct is a cart line joined with its product and category at
// read time. Lines whose product or category no longer resolves are
// dropped from cart reads.
type ItemWithProduct struct {
	Item
	Product catalog.ProductWithCategory `json:"product"`
}
