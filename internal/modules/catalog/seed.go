package catalog

import "context"

func strPtr(s string) *string { return &s }

// SeedDemo loads the demo storefront data into empty repositories. It is
// only called when the process runs on the in-memory backend, so the ids
// land at 1..5 for categories and 1..8 for products.
func SeedDemo(ctx context.Context, categories CategoryRepository, products ProductRepository) error {
	demoCategories := []*Category{
		{Name: "Knitting & Yarn", Description: strPtr("Handknitted items, yarns, and knitting supplies"), IsActive: true},
		{Name: "Pottery & Ceramics", Description: strPtr("Handmade ceramic items, pottery, and clay crafts"), IsActive: true},
		{Name: "Textiles", Description: strPtr("Woven fabrics, blankets, and textile crafts"), IsActive: true},
		{Name: "Woodwork", Description: strPtr("Handcrafted wooden items and furniture"), IsActive: true},
		{Name: "Handmade Jewelry", Description: strPtr("Unique jewelry pieces crafted by artisans"), IsActive: true},
	}
	for _, c := range demoCategories {
		if err := categories.Create(ctx, c); err != nil {
			return err
		}
	}

	demoProducts := []*Product{
		{
			Name:        "Handknitted Wool Sweater",
			Description: "Cozy wool sweater perfect for cold weather, made with premium yarn. Each sweater takes our skilled artisans 3-4 days to complete, ensuring the highest quality and attention to detail.",
			Price:       "89.99",
			CategoryID:  1,
			Stock:       12,
			ImageURL:    "https://images.unsplash.com/photo-1583743089695-4b3b0b32ac6e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Images: []string{
				"https://images.unsplash.com/photo-1583743089695-4b3b0b32ac6e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1445404590072-547608db1015?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			IsActive: true,
			SKU:      "HWS001",
		},
		{
			Name:        "Ceramic Bowl Set",
			Description: "Beautiful handcrafted ceramic bowls with natural earth-tone glazing. Set of 4 bowls perfect for serving and home decoration.",
			Price:       "65.00",
			CategoryID:  2,
			Stock:       8,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://m.media-amazon.com/images/I/71dd1FU9aBL._AC_SL1500_.jpg",
			},
			IsActive: true,
			SKU:      "CBS002",
		},
		{
			Name:        "Handwoven Throw Blanket",
			Description: "Luxurious handwoven blanket with traditional patterns and soft texture. Made from natural fibers using ancient weaving techniques.",
			Price:       "125.00",
			CategoryID:  3,
			Stock:       5,
			ImageURL:    "https://images.unsplash.com/photo-1540979388789-6cee28a1cdc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Images:      []string{"https://images.unsplash.com/photo-1540979388789-6cee28a1cdc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			IsActive:    true,
			SKU:         "HTB003",
		},
		{
			Name:        "Artisan Cutting Board",
			Description: "Premium hardwood cutting board with beautiful natural grain patterns. Sustainably sourced and finished with food-safe oil.",
			Price:       "45.00",
			CategoryID:  4,
			Stock:       15,
			ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Images:      []string{"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			IsActive:    true,
			SKU:         "ACB004",
		},
		{
			Name:        "Handcrafted Silver Set",
			Description: "Elegant handmade jewelry set with natural gemstones and sterling silver. Each piece is unique and comes with a certificate of authenticity.",
			Price:       "195.00",
			CategoryID:  5,
			Stock:       3,
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Images:      []string{"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			IsActive:    true,
			SKU:         "HSS005",
		},
		{
			Name:        "Hand-Dyed Yarn Set",
			Description: "Premium wool yarn hand-dyed in beautiful natural colors. Perfect for your next knitting project with vibrant, long-lasting colors.",
			Price:       "32.00",
			CategoryID:  1,
			Stock:       25,
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Images:      []string{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			IsActive:    true,
			SKU:         "HDY006",
		},
		{
			Name:        "Ceramic Vase Collection",
			Description: "Unique handthrown ceramic vases with artistic glazing techniques. Each vase is one-of-a-kind and perfect for home decoration.",
			Price:       "78.00",
			CategoryID:  2,
			Stock:       6,
			ImageURL:    "https://images.unsplash.com/photo-1578749556568-bc2c40e68b61?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Images:      []string{"https://images.unsplash.com/photo-1578749556568-bc2c40e68b61?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			IsActive:    true,
			SKU:         "CVC007",
		},
		{
			Name:        "Woven Storage Baskets",
			Description: "Beautiful handwoven baskets perfect for home organization and decor. Made from sustainable natural materials using traditional techniques.",
			Price:       "52.00",
			CategoryID:  3,
			Stock:       10,
			ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Images:      []string{"https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			IsActive:    true,
			SKU:         "WSB008",
		},
	}
	for _, p := range demoProducts {
		if err := products.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
