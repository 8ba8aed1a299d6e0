package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
	"github.com/beyondgamer21/aura-elegance/internal/repository"
	"github.com/beyondgamer21/aura-elegance/internal/validation"
)

// Notifier is the best-effort side channel fired after an order commits.
type Notifier interface {
	Notify(ctx context.Context, order *domain.Order, items []domain.CartItem) error
}

// OrderService is the only component that creates orders.
type OrderService struct {
	repo          repository.OrderRepository
	notifier      Notifier
	logger        *zap.Logger
	notifyTimeout time.Duration
}

func NewOrderService(repo repository.OrderRepository, notifier Notifier, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:          repo,
		notifier:      notifier,
		logger:        logger,
		notifyTimeout: 30 * time.Second,
	}
}

// SubmitOrder validates the form, recomputes the total from the received
// cart snapshot and persists the order. The form is re-validated here even
// when the client already checked it; the client is an untrusted boundary.
// Client-supplied totals are never used.
//
// Notifications are dispatched after the order is durably committed and
// cannot fail the submission. Submitting the same logical order twice
// creates two records; there is no idempotency token yet.
func (s *OrderService) SubmitOrder(ctx context.Context, form *domain.OrderForm, items []domain.CartItem) (*domain.Order, error) {
	if err := validation.ValidateOrderForm(form); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := domain.ItemsTotal(items).StringFixed(2)

	order := &domain.Order{
		CustomerName:        form.CustomerName,
		CustomerEmail:       form.CustomerEmail,
		CustomerPhone:       form.CustomerPhone,
		CustomerAddress:     form.CustomerAddress,
		CustomerCity:        form.CustomerCity,
		CustomerPostalCode:  form.CustomerPostalCode,
		SpecialInstructions: form.SpecialInstructions,
		Items:               items,
		Total:               total,
		Status:              domain.OrderStatusPending,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		zap.Int("order_id", created.ID),
		zap.String("total", created.Total),
		zap.Int("items", len(created.Items)))

	s.dispatchNotifications(created)

	return created, nil
}

// GetOrder returns a placed order by id.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// ListOrders returns all placed orders, oldest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

// dispatchNotifications runs the notifier in its own goroutine with a fresh
// context: the client response must not wait on the email provider, and a
// cancelled request must not cancel a notification for a committed order.
func (s *OrderService) dispatchNotifications(order *domain.Order) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, order, order.Items); err != nil {
			s.logger.Error("order notifications failed",
				zap.Int("order_id", order.ID),
				zap.Error(err))
		}
	}()
}
