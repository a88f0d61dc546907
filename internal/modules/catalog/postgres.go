package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type categoryPostgresRepo struct{ db *sql.DB }

// NewCategoryPostgresRepository creates a category repository backed by the
// categories table in migrations/schema.sql.
func NewCategoryPostgresRepository(db *sql.DB) CategoryRepository {
	return &categoryPostgresRepo{db: db}
}

func (r *categoryPostgresRepo) Create(ctx context.Context, c *Category) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, description, is_active)
		VALUES ($1,$2,$3) RETURNING id`,
		c.Name, c.Description, c.IsActive).Scan(&c.ID)
}

func (r *categoryPostgresRepo) GetByID(ctx context.Context, id int) (*Category, error) {
	c := &Category{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, is_active FROM categories WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryPostgresRepo) List(ctx context.Context, activeOnly bool) ([]*Category, error) {
	query := `SELECT id, name, description, is_active FROM categories`
	if activeOnly {
		query += ` WHERE is_active=true`
	}
	query += ` ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryPostgresRepo) Update(ctx context.Context, c *Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name=$1, description=$2, is_active=$3 WHERE id=$4`,
		c.Name, c.Description, c.IsActive, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *categoryPostgresRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type productPostgresRepo struct{ db *sql.DB }

// NewProductPostgresRepository creates a product repository backed by the
// products table.
func NewProductPostgresRepository(db *sql.DB) ProductRepository {
	return &productPostgresRepo{db: db}
}

const productColumns = `id, name, description, price, category_id, stock, image_url, images, is_active, sku`

func scanProductRow(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var images pq.StringArray
	err := scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
		&p.Stock, &p.ImageURL, &images, &p.IsActive, &p.SKU)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if images != nil {
		p.Images = []string(images)
	}
	return p, nil
}

func (r *productPostgresRepo) Create(ctx context.Context, p *Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, category_id, stock, image_url, images, is_active, sku)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`,
		p.Name, p.Description, p.Price, p.CategoryID, p.Stock,
		p.ImageURL, pq.Array(p.Images), p.IsActive, p.SKU).Scan(&p.ID)
}

func (r *productPostgresRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id)
	return scanProductRow(row.Scan)
}

func (r *productPostgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		p, err := scanProductRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productPostgresRepo) List(ctx context.Context, activeOnly bool) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if activeOnly {
		query += ` WHERE is_active=true`
	}
	query += ` ORDER BY id`
	return r.queryProducts(ctx, query)
}

func (r *productPostgresRepo) ListByCategory(ctx context.Context, categoryID int) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE category_id=$1 AND is_active=true ORDER BY id`, categoryID)
}

func (r *productPostgresRepo) Search(ctx context.Context, query string) ([]*Product, error) {
	pattern := "%" + query + "%"
	return r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE is_active=true AND (name ILIKE $1 OR description ILIKE $1) ORDER BY id`, pattern)
}

func (r *productPostgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, price=$3, category_id=$4, stock=$5,
		    image_url=$6, images=$7, is_active=$8, sku=$9
		WHERE id=$10`,
		p.Name, p.Description, p.Price, p.CategoryID, p.Stock,
		p.ImageURL, pq.Array(p.Images), p.IsActive, p.SKU, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *productPostgresRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow turns a zero-row update or delete into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
