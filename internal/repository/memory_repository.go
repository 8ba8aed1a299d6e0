package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

// MemoryRepository implements OrderRepository with an in-memory map and a
// sequential ID counter. The default backend; contents are lost on restart.
type MemoryRepository struct {
	mu     sync.Mutex
	orders map[int]*domain.Order
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: make(map[int]*domain.Order),
		nextID: 1,
	}
}

func (r *MemoryRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyOrder(order)
	stored.ID = r.nextID
	r.nextID++
	if stored.Status == "" {
		stored.Status = domain.OrderStatusPending
	}
	stored.CreatedAt = time.Now()

	r.orders[stored.ID] = stored
	return copyOrder(stored), nil
}

func (r *MemoryRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, exists := r.orders[id]
	if !exists {
		return nil, ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (r *MemoryRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, copyOrder(o))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryRepository) Close() error { return nil }

// copyOrder deep-copies the item snapshot so a stored order can never be
// mutated through a slice the caller still holds.
func copyOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Items = make([]domain.CartItem, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}
