package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(NewHeroImageMemoryRepository(), NewMakerStoryMemoryRepository())
}

func createHero(t *testing.T, s Service, title string, order int) *HeroImage {
	t.Helper()
	h, err := s.CreateHeroImage(context.Background(), CreateHeroImageRequest{
		Title:    title,
		ImageURL: "https://example.com/" + title + ".jpg",
		Order:    &order,
	})
	require.NoError(t, err)
	return h
}

func TestCreateHeroImageDefaults(t *testing.T) {
	s := newTestService()
	h, err := s.CreateHeroImage(context.Background(), CreateHeroImageRequest{
		Title:    "Banner",
		ImageURL: "https://example.com/banner.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, 1, h.ID)
	require.True(t, h.IsActive)
	require.Equal(t, 0, h.Order)
	require.False(t, h.CreatedAt.IsZero())
	require.Equal(t, h.CreatedAt, h.UpdatedAt)
}

func TestCreateHeroImageValidation(t *testing.T) {
	s := newTestService()
	_, err := s.CreateHeroImage(context.Background(), CreateHeroImageRequest{Title: "no image"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListHeroImagesSortedByDisplayOrder(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	createHero(t, s, "third", 30)
	createHero(t, s, "first", 10)
	createHero(t, s, "second", 20)

	images, err := s.ListHeroImages(ctx, true)
	require.NoError(t, err)
	require.Len(t, images, 3)
	require.Equal(t, "first", images[0].Title)
	require.Equal(t, "second", images[1].Title)
	require.Equal(t, "third", images[2].Title)
}

func TestListHeroImagesActiveToggle(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	createHero(t, s, "visible", 1)
	hidden := createHero(t, s, "hidden", 2)

	inactive := false
	_, err := s.UpdateHeroImage(ctx, hidden.ID, UpdateHeroImageRequest{IsActive: &inactive})
	require.NoError(t, err)

	active, err := s.ListHeroImages(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)

	all, err := s.ListHeroImages(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestUpdateHeroImageOrderBumpsUpdatedAt(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	h := createHero(t, s, "banner", 1)

	svc := s.(*service)
	svc.now = func() time.Time { return h.UpdatedAt.Add(time.Hour) }

	updated, err := s.UpdateHeroImageOrder(ctx, h.ID, 9)
	require.NoError(t, err)
	require.Equal(t, 9, updated.Order)
	require.Equal(t, "banner", updated.Title)
	require.True(t, updated.UpdatedAt.After(h.UpdatedAt))
	require.Equal(t, h.CreatedAt, updated.CreatedAt)
}

func TestUpdateHeroImageNotFound(t *testing.T) {
	s := newTestService()
	_, err := s.UpdateHeroImageOrder(context.Background(), 42, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func createStory(t *testing.T, s Service, name string) *MakerStory {
	t.Helper()
	m, err := s.CreateMakerStory(context.Background(), CreateMakerStoryRequest{
		MakerName:       name,
		Location:        "Kathmandu",
		Story:           "Weaves by hand.",
		ImageURL:        "https://example.com/" + name + ".jpg",
		CraftsSpecialty: "Weaving",
	})
	require.NoError(t, err)
	return m
}

func TestCreateMakerStoryDefaults(t *testing.T) {
	s := newTestService()
	m := createStory(t, s, "Maya")
	require.Equal(t, 1, m.ID)
	require.True(t, m.IsActive)
	require.Nil(t, m.Age)
	require.Nil(t, m.Occupation)
}

func TestCreateMakerStoryValidation(t *testing.T) {
	s := newTestService()
	_, err := s.CreateMakerStory(context.Background(), CreateMakerStoryRequest{MakerName: "Maya"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateMakerStoryPatchesOnlyGivenFields(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	m := createStory(t, s, "Maya")

	years := 12
	updated, err := s.UpdateMakerStory(ctx, m.ID, UpdateMakerStoryRequest{YearsOfExperience: &years})
	require.NoError(t, err)
	require.Equal(t, "Maya", updated.MakerName)
	require.Equal(t, "Weaving", updated.CraftsSpecialty)
	require.NotNil(t, updated.YearsOfExperience)
	require.Equal(t, 12, *updated.YearsOfExperience)
}

func TestDeleteMakerStory(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	m := createStory(t, s, "Maya")

	require.NoError(t, s.DeleteMakerStory(ctx, m.ID))
	require.ErrorIs(t, s.DeleteMakerStory(ctx, m.ID), ErrNotFound)

	stories, err := s.ListMakerStories(ctx, false)
	require.NoError(t, err)
	require.Empty(t, stories)
}

func TestSeedDemoHeroImages(t *testing.T) {
	heroes := NewHeroImageMemoryRepository()
	require.NoError(t, SeedDemo(context.Background(), heroes))

	s := NewService(heroes, NewMakerStoryMemoryRepository())
	images, err := s.ListHeroImages(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, images, 3)
	require.Equal(t, "Handcrafted with Love", images[0].Title)
}
