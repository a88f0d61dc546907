package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidInput marks request payloads that fail boundary validation.
// Handlers map it to HTTP 400.
var ErrInvalidInput = errors.New("catalog: invalid input")

// Service defines catalog business logic over categories and products.
type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id int) (*Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	UpdateCategory(ctx context.Context, id int, req UpdateCategoryRequest) (*Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListProducts(ctx context.Context) ([]*ProductWithCategory, error)
	GetProduct(ctx context.Context, id int) (*ProductWithCategory, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]*ProductWithCategory, error)
	SearchProducts(ctx context.Context, query string) ([]*ProductWithCategory, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// CreateCategoryRequest holds the data for creating a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateCategoryRequest is a partial patch; nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// CreateProductRequest holds the data for creating a product.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	CategoryID  int      `json:"categoryId"`
	Stock       *int     `json:"stock"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"isActive"`
	SKU         string   `json:"sku"`
}

// UpdateProductRequest is a partial patch; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	CategoryID  *int     `json:"categoryId"`
	Stock       *int     `json:"stock"`
	ImageURL    *string  `json:"imageUrl"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"isActive"`
	SKU         *string  `json:"sku"`
}

type service struct {
	categories CategoryRepository
	products   ProductRepository
}

// NewService creates a new catalog service.
func NewService(categories CategoryRepository, products ProductRepository) Service {
	return &service{categories: categories, products: products}
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categories.List(ctx, true)
}

func (s *service) GetCategory(ctx context.Context, id int) (*Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	c := &Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, id int, req UpdateCategoryRequest) (*Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes the category outright. Products referencing it are
// left with a dangling categoryId and disappear from joined listings.
func (s *service) DeleteCategory(ctx context.Context, id int) error {
	return s.categories.Delete(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*ProductWithCategory, error) {
	products, err := s.products.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, products), nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*ProductWithCategory, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cat, err := s.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		// Dangling category reference reads as absence, not as an error.
		return nil, ErrNotFound
	}
	return &ProductWithCategory{Product: *p, Category: *cat}, nil
}

func (s *service) ListProductsByCategory(ctx context.Context, categoryID int) ([]*ProductWithCategory, error) {
	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, products), nil
}

func (s *service) SearchProducts(ctx context.Context, query string) ([]*ProductWithCategory, error) {
	products, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, products), nil
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	switch {
	case req.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case req.Price == "":
		return nil, fmt.Errorf("%w: price is required", ErrInvalidInput)
	case req.CategoryID == 0:
		return nil, fmt.Errorf("%w: categoryId is required", ErrInvalidInput)
	case req.SKU == "":
		return nil, fmt.Errorf("%w: sku is required", ErrInvalidInput)
	}
	p := &Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
		IsActive:    true,
		SKU:         req.SKU,
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) (*Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.CategoryID != nil {
		p.CategoryID = *req.CategoryID
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Images != nil {
		p.Images = req.Images
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	return s.products.Delete(ctx, id)
}

// join resolves each product's category. Products whose category no longer
// exists are excluded silently; readers tolerate the inconsistency.
func (s *service) join(ctx context.Context, products []*Product) []*ProductWithCategory {
	out := make([]*ProductWithCategory, 0, len(products))
	for _, p := range products {
		cat, err := s.categories.GetByID(ctx, p.CategoryID)
		if err != nil {
			continue
		}
		out = append(out, &ProductWithCategory{Product: *p, Category: *cat})
	}
	return out
}
