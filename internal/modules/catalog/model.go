package catalog

// Category groups related products. Inactive categories are hidden from
// storefront listings but their records remain addressable by id.
type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
}

// Product is a single catalog entry. Price is a decimal string so that
// values round-trip without floating point loss.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	CategoryID  int      `json:"categoryId"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
	IsActive    bool     `json:"isActive"`
	SKU         string   `json:"sku"`
}

// ProductWithCategory is a product combined with its category record at
// read time. The join is never stored.
type ProductWithCategory struct {
	Product
	Category Category `json:"category"`
}
