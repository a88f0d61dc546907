package content

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks request payloads that fail boundary validation.
var ErrInvalidInput = errors.New("content: invalid input")

// Service defines business logic for storefront content: hero images and
// maker stories.
type Service interface {
	ListHeroImages(ctx context.Context, activeOnly bool) ([]*HeroImage, error)
	GetHeroImage(ctx context.Context, id int) (*HeroImage, error)
	CreateHeroImage(ctx context.Context, req CreateHeroImageRequest) (*HeroImage, error)
	UpdateHeroImage(ctx context.Context, id int, req UpdateHeroImageRequest) (*HeroImage, error)
	DeleteHeroImage(ctx context.Context, id int) error
	// UpdateHeroImageOrder changes only the display rank and bumps updatedAt.
	UpdateHeroImageOrder(ctx context.Context, id, order int) (*HeroImage, error)

	ListMakerStories(ctx context.Context, activeOnly bool) ([]*MakerStory, error)
	GetMakerStory(ctx context.Context, id int) (*MakerStory, error)
	CreateMakerStory(ctx context.Context, req CreateMakerStoryRequest) (*MakerStory, error)
	UpdateMakerStory(ctx context.Context, id int, req UpdateMakerStoryRequest) (*MakerStory, error)
	DeleteMakerStory(ctx context.Context, id int) error
}

// CreateHeroImageRequest holds the data for creating a hero image.
type CreateHeroImageRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateHeroImageRequest is a partial patch; nil fields are left untouched.
type UpdateHeroImageRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// CreateMakerStoryRequest holds the data for creating a maker story.
type CreateMakerStoryRequest struct {
	MakerName         string  `json:"makerName"`
	Age               *int    `json:"age"`
	Location          string  `json:"location"`
	Story             string  `json:"story"`
	ImageURL          string  `json:"imageUrl"`
	Occupation        *string `json:"occupation"`
	FamilyInfo        *string `json:"familyInfo"`
	CraftsSpecialty   string  `json:"craftsSpecialty"`
	YearsOfExperience *int    `json:"yearsOfExperience"`
	ImpactStatement   *string `json:"impactStatement"`
	IsActive          *bool   `json:"isActive"`
	Order             *int    `json:"order"`
}

// UpdateMakerStoryRequest is a partial patch; nil fields are left untouched.
type UpdateMakerStoryRequest struct {
	MakerName         *string `json:"makerName"`
	Age               *int    `json:"age"`
	Location          *string `json:"location"`
	Story             *string `json:"story"`
	ImageURL          *string `json:"imageUrl"`
	Occupation        *string `json:"occupation"`
	FamilyInfo        *string `json:"familyInfo"`
	CraftsSpecialty   *string `json:"craftsSpecialty"`
	YearsOfExperience *int    `json:"yearsOfExperience"`
	ImpactStatement   *string `json:"impactStatement"`
	IsActive          *bool   `json:"isActive"`
	Order             *int    `json:"order"`
}

type service struct {
	heroImages HeroImageRepository
	stories    MakerStoryRepository
	now        func() time.Time
}

// NewService creates a new content service.
func NewService(heroImages HeroImageRepository, stories MakerStoryRepository) Service {
	return &service{heroImages: heroImages, stories: stories, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) ListHeroImages(ctx context.Context, activeOnly bool) ([]*HeroImage, error) {
	return s.heroImages.List(ctx, activeOnly)
}

func (s *service) GetHeroImage(ctx context.Context, id int) (*HeroImage, error) {
	return s.heroImages.GetByID(ctx, id)
}

func (s *service) CreateHeroImage(ctx context.Context, req CreateHeroImageRequest) (*HeroImage, error) {
	if req.Title == "" || req.ImageURL == "" {
		return nil, fmt.Errorf("%w: title and imageUrl are required", ErrInvalidInput)
	}
	now := s.now()
	h := &HeroImage{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Order != nil {
		h.Order = *req.Order
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	if err := s.heroImages.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) UpdateHeroImage(ctx context.Context, id int, req UpdateHeroImageRequest) (*HeroImage, error) {
	h, err := s.heroImages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		h.Title = *req.Title
	}
	if req.Description != nil {
		h.Description = req.Description
	}
	if req.ImageURL != nil {
		h.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		h.Order = *req.Order
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	h.UpdatedAt = s.now()
	if err := s.heroImages.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) DeleteHeroImage(ctx context.Context, id int) error {
	return s.heroImages.Delete(ctx, id)
}

func (s *service) UpdateHeroImageOrder(ctx context.Context, id, order int) (*HeroImage, error) {
	h, err := s.heroImages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.Order = order
	h.UpdatedAt = s.now()
	if err := s.heroImages.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) ListMakerStories(ctx context.Context, activeOnly bool) ([]*MakerStory, error) {
	return s.stories.List(ctx, activeOnly)
}

func (s *service) GetMakerStory(ctx context.Context, id int) (*MakerStory, error) {
	return s.stories.GetByID(ctx, id)
}

func (s *service) CreateMakerStory(ctx context.Context, req CreateMakerStoryRequest) (*MakerStory, error) {
	switch {
	case req.MakerName == "":
		return nil, fmt.Errorf("%w: makerName is required", ErrInvalidInput)
	case req.Location == "":
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	case req.Story == "":
		return nil, fmt.Errorf("%w: story is required", ErrInvalidInput)
	case req.ImageURL == "":
		return nil, fmt.Errorf("%w: imageUrl is required", ErrInvalidInput)
	case req.CraftsSpecialty == "":
		return nil, fmt.Errorf("%w: craftsSpecialty is required", ErrInvalidInput)
	}
	now := s.now()
	m := &MakerStory{
		MakerName:         req.MakerName,
		Age:               req.Age,
		Location:          req.Location,
		Story:             req.Story,
		ImageURL:          req.ImageURL,
		Occupation:        req.Occupation,
		FamilyInfo:        req.FamilyInfo,
		CraftsSpecialty:   req.CraftsSpecialty,
		YearsOfExperience: req.YearsOfExperience,
		ImpactStatement:   req.ImpactStatement,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	if err := s.stories.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) UpdateMakerStory(ctx context.Context, id int, req UpdateMakerStoryRequest) (*MakerStory, error) {
	m, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.MakerName != nil {
		m.MakerName = *req.MakerName
	}
	if req.Age != nil {
		m.Age = req.Age
	}
	if req.Location != nil {
		m.Location = *req.Location
	}
	if req.Story != nil {
		m.Story = *req.Story
	}
	if req.ImageURL != nil {
		m.ImageURL = *req.ImageURL
	}
	if req.Occupation != nil {
		m.Occupation = req.Occupation
	}
	if req.FamilyInfo != nil {
		m.FamilyInfo = req.FamilyInfo
	}
	if req.CraftsSpecialty != nil {
		m.CraftsSpecialty = *req.CraftsSpecialty
	}
	if req.YearsOfExperience != nil {
		m.YearsOfExperience = req.YearsOfExperience
	}
	if req.ImpactStatement != nil {
		m.ImpactStatement = req.ImpactStatement
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	m.UpdatedAt = s.now()
	if err := s.stories.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) DeleteMakerStory(ctx context.Context, id int) error {
	return s.stories.Delete(ctx, id)
}
