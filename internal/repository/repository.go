package repository

import (
	"context"
	"errors"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository is the only place orders are persisted. Implementations
// assign the ID and creation timestamp; IDs are unique and monotonically
// increasing.
type OrderRepository interface {
	// CreateOrder persists the order, assigning its ID and CreatedAt, and
	// returns the stored record.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// GetOrder returns the order with the given ID or ErrOrderNotFound.
	GetOrder(ctx context.Context, id int) (*domain.Order, error)

	// ListOrders returns all orders, oldest first.
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	Close() error
}
