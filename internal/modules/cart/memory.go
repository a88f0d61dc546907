package cart

import (
	"context"
	"sync"
)

type memoryRepo struct {
	mu       sync.Mutex
	sessions map[string][]*Item
	nextID   int
}

// NewMemoryRepository creates the default in-process cart store. State
// lives only for the lifetime of the process.
func NewMemoryRepository() Repository {
	return &memoryRepo{sessions: make(map[string][]*Item), nextID: 1}
}

func (r *memoryRepo) List(ctx context.Context, sessionID string) ([]*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.sessions[sessionID]
	out := make([]*Item, 0, len(lines))
	for _, it := range lines {
		clone := *it
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryRepo) Add(ctx context.Context, sessionID string, productID, quantity int) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.sessions[sessionID]
	for _, it := range lines {
		if it.ProductID == productID {
			it.Quantity += quantity
			clone := *it
			return &clone, nil
		}
	}
	item := &Item{ID: r.nextID, SessionID: sessionID, ProductID: productID, Quantity: quantity}
	r.nextID++
	r.sessions[sessionID] = append(lines, item)
	clone := *item
	return &clone, nil
}

func (r *memoryRepo) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.sessions[sessionID]
	for i, it := range lines {
		if it.ProductID != productID {
			continue
		}
		if quantity <= 0 {
			r.sessions[sessionID] = append(lines[:i], lines[i+1:]...)
			return nil, nil
		}
		it.Quantity = quantity
		clone := *it
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) Remove(ctx context.Context, sessionID string, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.sessions[sessionID]
	for i, it := range lines {
		if it.ProductID == productID {
			r.sessions[sessionID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepo) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
