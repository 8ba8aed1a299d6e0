package domain

// Product is a catalog entity. The catalog is read-only at runtime: products
// are seeded at process start and never created, updated or deleted.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	InStock     int    `json:"inStock"`
}
