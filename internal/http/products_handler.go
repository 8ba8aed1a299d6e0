package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/beyondgamer21/aura-elegance/internal/catalog"
)

type ProductsHandler struct {
	store catalog.Store
}

func NewProductsHandler(store catalog.Store) *ProductsHandler {
	return &ProductsHandler{store: store}
}

// GET /api/products
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GET /api/products/category/{category}
func (h *ProductsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.store.ListByCategory(r.Context(), category)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GET /api/products/{id}
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.store.GetProduct(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}
