package content

import (
	"context"
	"time"
)

func strPtr(s string) *string { return &s }

// SeedDemo loads the demo hero images into an empty repository. Called
// only on the in-memory backend.
func SeedDemo(ctx context.Context, heroImages HeroImageRepository) error {
	now := time.Now().UTC()
	demo := []*HeroImage{
		{
			Title:       "Handcrafted with Love",
			Description: strPtr("Discover unique artisan pieces made with traditional techniques and modern style"),
			ImageURL:    "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600",
			Order:       1,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Artisan Pottery Collection",
			Description: strPtr("Beautiful ceramic pieces crafted by skilled artisans using time-honored methods"),
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600",
			Order:       2,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Premium Yarn & Textiles",
			Description: strPtr("Hand-dyed yarns and woven textiles perfect for your creative projects"),
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600",
			Order:       3,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, h := range demo {
		if err := heroImages.Create(ctx, h); err != nil {
			return err
		}
	}
	return nil
}
