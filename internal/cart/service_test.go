package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/beyondgamer21/aura-elegance/internal/cache"
	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

type mockCache struct {
	m       sync.RWMutex
	cart    *domain.Cart
	err     error
	deletes int
}

func (m *mockCache) Get(context.Context, string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.cart == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.cart, nil
}

func (m *mockCache) Set(_ context.Context, _ string, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = cart
	return m.err
}

func (m *mockCache) Delete(context.Context, string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = nil
	m.deletes++
	return m.err
}

func (m *mockCache) deleteCount() int {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.deletes
}

func newTestService(c cache.CartCache) *Service {
	return NewService(NewMemoryStore(), c, zap.NewNop())
}

func TestServiceGetCart_EmptySessionGetsEmptyCart(t *testing.T) {
	svc := newTestService(&mockCache{})

	c, err := svc.GetCart(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", c.SessionID)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.TotalItems())
}

func TestServiceGetCart_CacheHitSkipsStore(t *testing.T) {
	cached := &domain.Cart{
		SessionID: "s1",
		Items:     []domain.CartItem{{ID: "x", Name: "X", Price: 1, Quantity: 4}},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	svc := newTestService(&mockCache{cart: cached})

	c, err := svc.GetCart(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, c.TotalItems())
}

func TestServiceGetCart_CacheErrorFallsBackToStore(t *testing.T) {
	mc := &mockCache{err: errors.New("redis down")}
	svc := newTestService(mc)
	ctx := context.Background()

	// mutations still work even though every cache call fails
	require.NoError(t, svc.AddItem(ctx, "s1", dress(2)))

	c, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalItems())
}

func TestServiceMutations_InvalidateCache(t *testing.T) {
	mc := &mockCache{}
	svc := newTestService(mc)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", dress(1)))
	require.NoError(t, svc.UpdateQuantity(ctx, "s1", "1-M-black", 3))
	require.NoError(t, svc.RemoveItem(ctx, "s1", "1-M-black"))
	require.NoError(t, svc.ClearCart(ctx, "s1"))

	assert.Equal(t, 4, mc.deleteCount())
}

func TestServiceUpdateQuantity_ZeroRemoves(t *testing.T) {
	svc := newTestService(&mockCache{})
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", dress(2)))
	require.NoError(t, svc.UpdateQuantity(ctx, "s1", "1-M-black", 0))

	c, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestServiceClearCart(t *testing.T) {
	svc := newTestService(&mockCache{})
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "s1", dress(1)))
	require.NoError(t, svc.AddItem(ctx, "s1", handbag(2)))
	require.NoError(t, svc.ClearCart(ctx, "s1"))

	c, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, "0.00", c.Total().StringFixed(2))
}
