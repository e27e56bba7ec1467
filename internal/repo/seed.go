package repo

import "github.com/shopgenius/shopgenius-api/internal/models"

// SeedProducts returns the built-in catalog the service starts from. State is
// memory-resident only, so every process start begins from this list.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Nebula Smart Watch",
			Price:       199.99,
			Category:    "Electronics",
			Stock:       45,
			Image:       "https://picsum.photos/seed/watch/400/400",
			Description: "High-performance fitness tracking with an AMOLED display.",
		},
		{
			ID:          "2",
			Name:        "Eco-Friendly Yoga Mat",
			Price:       49.99,
			Category:    "Fitness",
			Stock:       12,
			Image:       "https://picsum.photos/seed/yoga/400/400",
			Description: "Non-slip, biodegradable material for perfect balance.",
		},
		{
			ID:          "3",
			Name:        "Wireless Noise-Canceling Headphones",
			Price:       299.00,
			Category:    "Electronics",
			Stock:       8,
			Image:       "https://picsum.photos/seed/audio/400/400",
			Description: "Studio-quality sound with 40-hour battery life.",
		},
		{
			ID:          "4",
			Name:        "Organic Cotton T-Shirt",
			Price:       25.00,
			Category:    "Apparel",
			Stock:       120,
			Image:       "https://picsum.photos/seed/shirt/400/400",
			Description: "Breathable, sustainable, and incredibly soft.",
		},
		{
			ID:          "5",
			Name:        "Smart Desk Lamp",
			Price:       75.50,
			Category:    "Home",
			Stock:       3,
			Image:       "https://picsum.photos/seed/lamp/400/400",
			Description: "Adjustable color temperature and integrated wireless charger.",
		},
		{
			ID:          "6",
			Name:        "Aero Runner Pro",
			Price:       129.99,
			Category:    "Fitness",
			Stock:       22,
			Image:       "https://picsum.photos/seed/shoes/400/400",
			Description: "Lightweight running shoes for professional athletes.",
		},
	}
}
