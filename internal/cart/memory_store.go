package cart

import (
	"context"
	"sync"
	"time"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

// MemoryStore implements Store with an in-memory map keyed by session ID.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]*domain.Cart),
	}
}

func (s *MemoryStore) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return nil, ErrCartNotFound
	}
	return copyCart(c), nil
}

func (s *MemoryStore) AddItem(ctx context.Context, sessionID string, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c, exists := s.carts[sessionID]
	if !exists {
		c = &domain.Cart{
			SessionID: sessionID,
			CreatedAt: now,
		}
		s.carts[sessionID] = c
	}

	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			c.UpdatedAt = now
			return nil
		}
	}

	c.Items = append(c.Items, item)
	c.UpdatedAt = now
	return nil
}

func (s *MemoryStore) UpdateItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return nil
	}

	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return nil
	}

	for i, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) DeleteCart(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// copyCart returns a deep copy so callers never share the stored slice.
func copyCart(c *domain.Cart) *domain.Cart {
	cp := *c
	cp.Items = make([]domain.CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}
