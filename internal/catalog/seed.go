package catalog

import "github.com/beyondgamer21/aura-elegance/internal/domain"

// DefaultProducts is the catalog seeded at process start.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Midnight Elegance Dress",
			Description: "Premium Collection",
			Price:       "299.00",
			Category:    "dresses",
			ImageURL:    "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=1200",
			InStock:     10,
		},
		{
			ID:          2,
			Name:        "Urban Chic Ensemble",
			Description: "Casual Collection",
			Price:       "189.00",
			Category:    "casual",
			ImageURL:    "https://images.unsplash.com/photo-1525507119028-ed4c629a60a3?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			InStock:     15,
		},
		{
			ID:          3,
			Name:        "Executive Power Suit",
			Description: "Business Collection",
			Price:       "449.00",
			Category:    "formal",
			ImageURL:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=1200",
			InStock:     8,
		},
		{
			ID:          4,
			Name:        "Silk Evening Dress",
			Description: "Elegant Collection",
			Price:       "349.00",
			Category:    "dresses",
			ImageURL:    "https://images.unsplash.com/photo-1566479179817-c0b7b0c8e0e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			InStock:     5,
		},
		{
			ID:          5,
			Name:        "Premium Denim Set",
			Description: "Casual Collection",
			Price:       "159.00",
			Category:    "casual",
			ImageURL:    "https://images.unsplash.com/photo-1582418702523-a331e5f37aa5?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			InStock:     20,
		},
		{
			ID:          6,
			Name:        "Tailored Blazer",
			Description: "Formal Collection",
			Price:       "279.00",
			Category:    "formal",
			ImageURL:    "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			InStock:     12,
		},
		{
			ID:          7,
			Name:        "Designer Handbag",
			Description: "Accessories",
			Price:       "199.00",
			Category:    "accessories",
			ImageURL:    "https://images.unsplash.com/photo-1591561954557-26941169b49e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			InStock:     25,
		},
		{
			ID:          8,
			Name:        "Statement Jewelry Set",
			Description: "Accessories",
			Price:       "119.00",
			Category:    "accessories",
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			InStock:     30,
		},
	}
}
