package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type categoryMemoryRepo struct {
	mu     sync.RWMutex
	items  map[int]*Category
	nextID int
}

// NewCategoryMemoryRepository creates an empty in-memory category store.
// Ids start at 1 and are never reused, even across deletes.
func NewCategoryMemoryRepository() CategoryRepository {
	return &categoryMemoryRepo{items: make(map[int]*Category), nextID: 1}
}

func (r *categoryMemoryRepo) Create(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *categoryMemoryRepo) GetByID(ctx context.Context, id int) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *categoryMemoryRepo) List(ctx context.Context, activeOnly bool) ([]*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Category, 0, len(r.items))
	for _, c := range r.items {
		if activeOnly && !c.IsActive {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *categoryMemoryRepo) Update(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return ErrNotFound
	}
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *categoryMemoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type productMemoryRepo struct {
	mu     sync.RWMutex
	items  map[int]*Product
	nextID int
}

// NewProductMemoryRepository creates an empty in-memory product store.
func NewProductMemoryRepository() ProductRepository {
	return &productMemoryRepo{items: make(map[int]*Product), nextID: 1}
}

func cloneProduct(p *Product) *Product {
	clone := *p
	if p.Images != nil {
		clone.Images = append([]string(nil), p.Images...)
	}
	return &clone
}

func (r *productMemoryRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = cloneProduct(p)
	return nil
}

func (r *productMemoryRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneProduct(p), nil
}

func (r *productMemoryRepo) List(ctx context.Context, activeOnly bool) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Product, 0, len(r.items))
	for _, p := range r.items {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productMemoryRepo) ListByCategory(ctx context.Context, categoryID int) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Product
	for _, p := range r.items {
		if p.CategoryID != categoryID || !p.IsActive {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productMemoryRepo) Search(ctx context.Context, query string) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var out []*Product
	for _, p := range r.items {
		if !p.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, cloneProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productMemoryRepo) Update(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return ErrNotFound
	}
	r.items[p.ID] = cloneProduct(p)
	return nil
}

func (r *productMemoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
