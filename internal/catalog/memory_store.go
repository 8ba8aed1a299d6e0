package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

// MemoryStore implements Store with an in-memory map seeded at construction.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int]domain.Product
}

func NewMemoryStore(products []domain.Product) *MemoryStore {
	s := &MemoryStore{
		products: make(map[int]domain.Product, len(products)),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *MemoryStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *MemoryStore) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "all" {
		return s.ListProducts(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *MemoryStore) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &p, nil
}
