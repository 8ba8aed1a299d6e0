package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
	"github.com/beyondgamer21/aura-elegance/internal/repository"
	"github.com/beyondgamer21/aura-elegance/internal/validation"
)

type mockNotifier struct {
	m      sync.Mutex
	calls  int
	err    error
	orders []*domain.Order
	done   chan struct{}
}

func newMockNotifier(err error) *mockNotifier {
	return &mockNotifier{err: err, done: make(chan struct{}, 8)}
}

func (m *mockNotifier) Notify(_ context.Context, order *domain.Order, _ []domain.CartItem) error {
	m.m.Lock()
	m.calls++
	m.orders = append(m.orders, order)
	m.m.Unlock()
	m.done <- struct{}{}
	return m.err
}

func (m *mockNotifier) waitForCall(t *testing.T) {
	t.Helper()
	select {
	case <-m.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
}

func (m *mockNotifier) callCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.calls
}

type failingRepo struct{}

func (failingRepo) CreateOrder(context.Context, *domain.Order) (*domain.Order, error) {
	return nil, errors.New("disk full")
}
func (failingRepo) GetOrder(context.Context, int) (*domain.Order, error) {
	return nil, repository.ErrOrderNotFound
}
func (failingRepo) ListOrders(context.Context) ([]*domain.Order, error) {
	return nil, errors.New("disk full")
}
func (failingRepo) Close() error { return nil }

func validForm() *domain.OrderForm {
	return &domain.OrderForm{
		CustomerName:       "Jane Doe",
		CustomerEmail:      "jane@example.com",
		CustomerPhone:      "+1234567890",
		CustomerAddress:    "12 Main Street",
		CustomerCity:       "Berlin",
		CustomerPostalCode: "10115",
	}
}

func testItems() []domain.CartItem {
	return []domain.CartItem{
		{ID: "a", Name: "A", Price: 10, Quantity: 2},
		{ID: "b", Name: "B", Price: 5, Quantity: 1},
	}
}

func TestSubmitOrder_Success(t *testing.T) {
	repo := repository.NewMemoryRepository()
	notifier := newMockNotifier(nil)
	svc := NewOrderService(repo, notifier, zap.NewNop())
	ctx := context.Background()

	order, err := svc.SubmitOrder(ctx, validForm(), testItems())
	require.NoError(t, err)

	assert.Equal(t, "25.00", order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Positive(t, order.ID)

	// the returned id fetches the same order
	fetched, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, "25.00", fetched.Total)
}

func TestSubmitOrder_NotifiesExactlyOnce(t *testing.T) {
	repo := repository.NewMemoryRepository()
	notifier := newMockNotifier(nil)
	svc := NewOrderService(repo, notifier, zap.NewNop())

	order, err := svc.SubmitOrder(context.Background(), validForm(), testItems())
	require.NoError(t, err)

	notifier.waitForCall(t)
	assert.Equal(t, 1, notifier.callCount())
	assert.Equal(t, order.ID, notifier.orders[0].ID)
}

func TestSubmitOrder_EmptyCartRejected(t *testing.T) {
	repo := repository.NewMemoryRepository()
	notifier := newMockNotifier(nil)
	svc := NewOrderService(repo, notifier, zap.NewNop())
	ctx := context.Background()

	_, err := svc.SubmitOrder(ctx, validForm(), nil)
	assert.True(t, errors.Is(err, ErrEmptyCart))

	// nothing was persisted and no notification fired
	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 0, notifier.callCount())
}

func TestSubmitOrder_InvalidFormRejected(t *testing.T) {
	repo := repository.NewMemoryRepository()
	notifier := newMockNotifier(nil)
	svc := NewOrderService(repo, notifier, zap.NewNop())
	ctx := context.Background()

	form := validForm()
	form.CustomerEmail = "not-an-email"

	_, err := svc.SubmitOrder(ctx, form, testItems())
	require.Error(t, err)

	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "customerEmail", verr.Fields[0].Field)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSubmitOrder_StorageFailure(t *testing.T) {
	notifier := newMockNotifier(nil)
	svc := NewOrderService(failingRepo{}, notifier, zap.NewNop())

	_, err := svc.SubmitOrder(context.Background(), validForm(), testItems())
	require.Error(t, err)

	// no order committed means no notification
	assert.Equal(t, 0, notifier.callCount())
}

func TestSubmitOrder_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	repo := repository.NewMemoryRepository()
	notifier := newMockNotifier(errors.New("email provider down"))
	svc := NewOrderService(repo, notifier, zap.NewNop())

	order, err := svc.SubmitOrder(context.Background(), validForm(), testItems())
	require.NoError(t, err)
	assert.Positive(t, order.ID)

	notifier.waitForCall(t)
}

// The persisted items are a snapshot of what was submitted, immune to later
// mutation of the caller's slice.
func TestSubmitOrder_SnapshotRoundTrip(t *testing.T) {
	repo := repository.NewMemoryRepository()
	notifier := newMockNotifier(nil)
	svc := NewOrderService(repo, notifier, zap.NewNop())
	ctx := context.Background()

	items := []domain.CartItem{
		{ID: "1-M-black", Name: "Midnight Elegance Dress", Price: 299.00, Quantity: 1, ImageURL: "https://example.com/d.jpg", Size: "M", Color: "black"},
	}
	submitted := make([]domain.CartItem, len(items))
	copy(submitted, items)

	order, err := svc.SubmitOrder(ctx, validForm(), items)
	require.NoError(t, err)

	items[0].Price = 1.00
	items[0].Quantity = 99

	fetched, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted, fetched.Items)
}

func TestSubmitOrder_TotalIgnoresFloatNoise(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewOrderService(repo, newMockNotifier(nil), zap.NewNop())

	items := []domain.CartItem{
		{ID: "a", Name: "A", Price: 0.1, Quantity: 3},
	}

	order, err := svc.SubmitOrder(context.Background(), validForm(), items)
	require.NoError(t, err)
	assert.Equal(t, "0.30", order.Total)
}
