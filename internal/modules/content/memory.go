package content

import (
	"context"
	"sort"
	"sync"
)

type heroMemoryRepo struct {
	mu     sync.RWMutex
	items  map[int]*HeroImage
	nextID int
}

// NewHeroImageMemoryRepository creates an empty in-memory hero image store.
func NewHeroImageMemoryRepository() HeroImageRepository {
	return &heroMemoryRepo{items: make(map[int]*HeroImage), nextID: 1}
}

func (r *heroMemoryRepo) Create(ctx context.Context, h *HeroImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.ID = r.nextID
	r.nextID++
	clone := *h
	r.items[h.ID] = &clone
	return nil
}

func (r *heroMemoryRepo) GetByID(ctx context.Context, id int) (*HeroImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *heroMemoryRepo) List(ctx context.Context, activeOnly bool) ([]*HeroImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*HeroImage, 0, len(r.items))
	for _, h := range r.items {
		if activeOnly && !h.IsActive {
			continue
		}
		clone := *h
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order == out[j].Order {
			return out[i].ID < out[j].ID
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (r *heroMemoryRepo) Update(ctx context.Context, h *HeroImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[h.ID]; !ok {
		return ErrNotFound
	}
	clone := *h
	r.items[h.ID] = &clone
	return nil
}

func (r *heroMemoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type storyMemoryRepo struct {
	mu     sync.RWMutex
	items  map[int]*MakerStory
	nextID int
}

// NewMakerStoryMemoryRepository creates an empty in-memory maker story store.
func NewMakerStoryMemoryRepository() MakerStoryRepository {
	return &storyMemoryRepo{items: make(map[int]*MakerStory), nextID: 1}
}

func (r *storyMemoryRepo) Create(ctx context.Context, m *MakerStory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	clone := *m
	r.items[m.ID] = &clone
	return nil
}

func (r *storyMemoryRepo) GetByID(ctx context.Context, id int) (*MakerStory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *storyMemoryRepo) List(ctx context.Context, activeOnly bool) ([]*MakerStory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*MakerStory, 0, len(r.items))
	for _, m := range r.items {
		if activeOnly && !m.IsActive {
			continue
		}
		clone := *m
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order == out[j].Order {
			return out[i].ID < out[j].ID
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (r *storyMemoryRepo) Update(ctx context.Context, m *MakerStory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[m.ID]; !ok {
		return ErrNotFound
	}
	clone := *m
	r.items[m.ID] = &clone
	return nil
}

func (r *storyMemoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
