package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

func dress(qty int) domain.CartItem {
	return domain.CartItem{ID: "1-M-black", Name: "Midnight Elegance Dress", Price: 299.00, Quantity: qty, Size: "M", Color: "black"}
}

func handbag(qty int) domain.CartItem {
	return domain.CartItem{ID: "7", Name: "Designer Handbag", Price: 199.00, Quantity: qty}
}

func TestGetCart_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetCart(context.Background(), "nobody")
	assert.True(t, errors.Is(err, ErrCartNotFound))
}

func TestAddItem_CreatesCart(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "s1", dress(1)))

	c, err := store.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "s1", c.SessionID)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestAddItem_SameIDMergesQuantities(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "s1", dress(1)))
	require.NoError(t, store.AddItem(ctx, "s1", dress(2)))

	c, err := store.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestAddItem_DistinctVariantsAreDistinctLines(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	itemM := dress(1)
	itemL := dress(1)
	itemL.ID = "1-L-black"
	itemL.Size = "L"

	require.NoError(t, store.AddItem(ctx, "s1", itemM))
	require.NoError(t, store.AddItem(ctx, "s1", itemL))

	c, err := store.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 2)
}

func TestUpdateItemQuantity_SetsExactly(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "s1", dress(5)))
	require.NoError(t, store.UpdateItemQuantity(ctx, "s1", "1-M-black", 3))

	c, err := store.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestUpdateItemQuantity_ZeroOrNegativeRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -1} {
		store := NewMemoryStore()
		ctx := context.Background()

		require.NoError(t, store.AddItem(ctx, "s1", dress(2)))
		require.NoError(t, store.AddItem(ctx, "s1", handbag(1)))
		require.NoError(t, store.UpdateItemQuantity(ctx, "s1", "1-M-black", qty))

		c, err := store.GetCart(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, "7", c.Items[0].ID)
	}
}

func TestRemoveItem_NoopWhenAbsent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "s1", dress(1)))
	require.NoError(t, store.RemoveItem(ctx, "s1", "missing"))

	c, err := store.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestDeleteCart(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "s1", dress(1)))
	require.NoError(t, store.DeleteCart(ctx, "s1"))

	_, err := store.GetCart(ctx, "s1")
	assert.True(t, errors.Is(err, ErrCartNotFound))
}

func TestGetCart_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "s1", dress(1)))

	c1, err := store.GetCart(ctx, "s1")
	require.NoError(t, err)
	c1.Items[0].Quantity = 99

	c2, err := store.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, c2.Items[0].Quantity)
}

// Totals are recomputed on every call; a mutation sequence can never leave
// them stale.
func TestDerivedTotals_TrackMutations(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a := domain.CartItem{ID: "a", Name: "A", Price: 10, Quantity: 2}
	b := domain.CartItem{ID: "b", Name: "B", Price: 5, Quantity: 1}

	require.NoError(t, store.AddItem(ctx, "s1", a))
	require.NoError(t, store.AddItem(ctx, "s1", b))

	c, err := store.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, "25.00", c.Total().StringFixed(2))

	require.NoError(t, store.UpdateItemQuantity(ctx, "s1", "a", 1))
	c, err = store.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalItems())
	assert.Equal(t, "15.00", c.Total().StringFixed(2))

	require.NoError(t, store.RemoveItem(ctx, "s1", "b"))
	c, err = store.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalItems())
	assert.Equal(t, "10.00", c.Total().StringFixed(2))
}
