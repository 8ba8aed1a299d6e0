package catalog

import (
	"context"
	"errors"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Store is the read-only product catalog consumed by the storefront.
type Store interface {
	// ListProducts returns every product, ordered by id.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListByCategory returns products in the given category.
	// The category "all" returns the full catalog.
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)

	// GetProduct returns a single product or ErrProductNotFound.
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}
