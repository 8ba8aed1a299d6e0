package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/beyondgamer21/aura-elegance/internal/cart"
	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

type CartHandler struct {
	carts  *cart.Service
	logger *zap.Logger
}

func NewCartHandler(carts *cart.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, logger: logger}
}

type CartResponseDTO struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	Total      string            `json:"total"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func cartResponse(c *domain.Cart) CartResponseDTO {
	items := c.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartResponseDTO{
		Items:      items,
		TotalItems: c.TotalItems(),
		Total:      c.Total().StringFixed(2),
	}
}

func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, status int, sessionID string) {
	c, err := h.carts.GetCart(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to load cart")
		return
	}
	respondJSON(w, status, cartResponse(c))
}

// GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondCart(w, r, http.StatusOK, sessionIDFromContext(r.Context()))
}

// POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if item.ID == "" {
		respondMessage(w, http.StatusBadRequest, "Item id is required")
		return
	}
	if item.Price < 0 {
		respondMessage(w, http.StatusBadRequest, "Price must not be negative")
		return
	}
	if item.Quantity < 1 {
		respondMessage(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	if err := h.carts.AddItem(r.Context(), sessionID, item); err != nil {
		h.logger.Error("failed to add cart item", zap.String("session_id", sessionID), zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	h.respondCart(w, r, http.StatusCreated, sessionID)
}

// PUT /api/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// quantity <= 0 removes the line, matching storefront semantics
	if err := h.carts.UpdateQuantity(r.Context(), sessionID, itemID, req.Quantity); err != nil {
		h.logger.Error("failed to update cart item", zap.String("session_id", sessionID), zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	h.respondCart(w, r, http.StatusOK, sessionID)
}

// DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	if err := h.carts.RemoveItem(r.Context(), sessionID, itemID); err != nil {
		h.logger.Error("failed to remove cart item", zap.String("session_id", sessionID), zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	h.respondCart(w, r, http.StatusOK, sessionID)
}

// DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	if err := h.carts.ClearCart(r.Context(), sessionID); err != nil {
		h.logger.Error("failed to clear cart", zap.String("session_id", sessionID), zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	h.respondCart(w, r, http.StatusOK, sessionID)
}
