package cache

import (
	"context"
	"errors"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

var ErrCacheMiss = errors.New("cart not found in cache")

// CartCache is a read-through cache in front of the cart store. A failing
// cache never fails a request; callers fall back to the store.
type CartCache interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Set(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// NoopCache is used when Redis is not configured. Every read is a miss.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*domain.Cart, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, *domain.Cart) error { return nil }

func (NoopCache) Delete(context.Context, string) error { return nil }
