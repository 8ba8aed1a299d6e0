package cart

import (
	"context"
	"errors"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

var ErrCartNotFound = errors.New("cart not found")

// Store holds one cart per shopper session. Carts live for the duration of
// the session only; there is no durability and no cross-device sync.
type Store interface {
	// GetCart returns the cart for the session or ErrCartNotFound.
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)

	// AddItem appends a line, or increments the quantity of an existing line
	// with the same item ID. Creates the cart if the session has none yet.
	AddItem(ctx context.Context, sessionID string, item domain.CartItem) error

	// UpdateItemQuantity sets a line's quantity to exactly the given value.
	// A value of zero or below removes the line. Unknown lines are a no-op.
	UpdateItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) error

	// RemoveItem deletes the line with the given ID; no-op if absent.
	RemoveItem(ctx context.Context, sessionID, itemID string) error

	// DeleteCart empties and discards the session's cart.
	DeleteCart(ctx context.Context, sessionID string) error
}
