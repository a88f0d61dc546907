package order

import (
	"context"
	"sort"
	"sync"
)

type memoryRepo struct {
	mu        sync.Mutex
	orders    map[int]*Order
	items     map[int]*Item
	nextOrder int
	nextItem  int
}

// NewMemoryRepository creates an empty in-memory order store.
func NewMemoryRepository() Repository {
	return &memoryRepo{
		orders:    make(map[int]*Order),
		items:     make(map[int]*Item),
		nextOrder: 1,
		nextItem:  1,
	}
}

func (r *memoryRepo) Create(ctx context.Context, o *Order, items []*Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextOrder
	r.nextOrder++
	clone := *o
	r.orders[o.ID] = &clone

	for _, it := range items {
		it.ID = r.nextItem
		r.nextItem++
		it.OrderID = o.ID
		itemClone := *it
		r.items[it.ID] = &itemClone
	}
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id int) (*Order, []*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil, ErrNotFound
	}
	orderClone := *o

	items := make([]*Item, 0)
	for _, it := range r.items {
		if it.OrderID == id {
			clone := *it
			items = append(items, &clone)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return &orderClone, items, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Order, 0, len(r.orders))
	for _, o := range r.orders {
		clone := *o
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepo) UpdateStatus(ctx context.Context, id int, status string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	clone := *o
	return &clone, nil
}
