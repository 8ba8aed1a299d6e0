package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/beyondgamer21/aura-elegance/internal/cart"
	"github.com/beyondgamer21/aura-elegance/internal/domain"
	"github.com/beyondgamer21/aura-elegance/internal/repository"
	"github.com/beyondgamer21/aura-elegance/internal/service"
	"github.com/beyondgamer21/aura-elegance/internal/validation"
)

type OrdersHandler struct {
	orders *service.OrderService
	carts  *cart.Service
	logger *zap.Logger
}

func NewOrdersHandler(orders *service.OrderService, carts *cart.Service, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders: orders,
		carts:  carts,
		logger: logger,
	}
}

type CreateOrderRequestDTO struct {
	OrderForm domain.OrderForm  `json:"orderForm"`
	CartItems []domain.CartItem `json:"cartItems"`
}

type CreateOrderResponseDTO struct {
	Success bool   `json:"success"`
	OrderID int    `json:"orderId"`
	Message string `json:"message"`
}

type orderErrorResponseDTO struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// POST /api/orders
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	order, err := h.orders.SubmitOrder(r.Context(), &req.OrderForm, req.CartItems)
	if err != nil {
		h.handleSubmitError(w, err)
		return
	}

	// the session cart served its purpose once the order is committed
	if sessionID := sessionIDFromContext(r.Context()); sessionID != "" {
		if err := h.carts.ClearCart(r.Context(), sessionID); err != nil {
			h.logger.Warn("failed to clear cart after order",
				zap.String("session_id", sessionID),
				zap.Int("order_id", order.ID),
				zap.Error(err))
		}
	}

	respondJSON(w, http.StatusOK, CreateOrderResponseDTO{
		Success: true,
		OrderID: order.ID,
		Message: "Order placed successfully",
	})
}

func (h *OrdersHandler) handleSubmitError(w http.ResponseWriter, err error) {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, orderErrorResponseDTO{
			Message: "Invalid order data",
			Errors:  verr.Fields,
		})
		return
	}

	if errors.Is(err, service.ErrEmptyCart) {
		respondMessage(w, http.StatusBadRequest, "Cart cannot be empty")
		return
	}

	// storage and anything unexpected: generic message, no internals leaked
	h.logger.Error("order creation failed", zap.Error(err))
	respondMessage(w, http.StatusInternalServerError, "Failed to create order")
}

// GET /api/orders
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

// GET /api/orders/{id}
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		respondMessage(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch order", zap.Int("order_id", id), zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}
