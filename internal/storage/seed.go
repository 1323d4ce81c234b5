package storage

import (
	"almacen-pos/internal/models"
)

// Categories offered when creating a product.
var Categories = []string{"Bebidas", "Almacén", "Panadería", "Pastas", "Lácteos", "Limpieza", "Otros"}

// SeedProducts returns the demo catalog a fresh install starts with.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Coca Cola 2L",
			Category:      "Bebidas",
			CostPrice:     90,
			SellingPrice:  135,
			Stock:         24,
			MinStockAlert: 5,
			ImageURL:      "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?auto=format&fit=crop&w=100&q=80",
		},
		{
			ID:            "2",
			Name:          "Yerba Canarias 1kg",
			Category:      "Almacén",
			CostPrice:     180,
			SellingPrice:  225,
			Stock:         12,
			MinStockAlert: 3,
			ImageURL:      "https://images.unsplash.com/photo-1515694590185-73647ba02c10?auto=format&fit=crop&w=100&q=80",
		},
		{
			ID:            "3",
			Name:          "Pan de Molde",
			Category:      "Panadería",
			CostPrice:     65,
			SellingPrice:  95,
			Stock:         8,
			MinStockAlert: 2,
			ImageURL:      "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=100&q=80",
		},
		{
			ID:            "4",
			Name:          "Fideos Adria 500g",
			Category:      "Pastas",
			CostPrice:     45,
			SellingPrice:  65,
			Stock:         30,
			MinStockAlert: 10,
			ImageURL:      "https://images.unsplash.com/photo-1612450844493-f1ba129086e1?auto=format&fit=crop&w=100&q=80",
		},
		{
			ID:            "5",
			Name:          "Leche Conaprole 1L",
			Category:      "Lácteos",
			CostPrice:     38,
			SellingPrice:  48,
			Stock:         15,
			MinStockAlert: 5,
			ImageURL:      "https://images.unsplash.com/photo-1563636619-e910f644e8ef?auto=format&fit=crop&w=100&q=80",
		},
	}
}
