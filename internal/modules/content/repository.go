package content

import (
	"context"
	"errors"
)

// ErrNotFound signals that an id has no matching record.
var ErrNotFound = errors.New("content: not found")

// HeroImageRepository stores hero images. List returns images sorted by
// display order, then id.
type HeroImageRepository interface {
	Create(ctx context.Context, h *HeroImage) error
	GetByID(ctx context.Context, id int) (*HeroImage, error)
	List(ctx context.Context, activeOnly bool) ([]*HeroImage, error)
	Update(ctx context.Context, h *HeroImage) error
	Delete(ctx context.Context, id int) error
}

// MakerStoryRepository stores maker stories with the same contract.
type MakerStoryRepository interface {
	Create(ctx context.Context, m *MakerStory) error
	GetByID(ctx context.Context, id int) (*MakerStory, error)
	List(ctx context.Context, activeOnly bool) ([]*MakerStory, error)
	Update(ctx context.Context, m *MakerStory) error
	Delete(ctx context.Context, id int) error
}
