package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

func TestGetProducts_ReturnsCatalog(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 8)
	assert.Equal(t, "Midnight Elegance Dress", products[0].Name)
	assert.Equal(t, "299.00", products[0].Price)
}

func TestGetProductsByCategory(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/products/category/accessories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "accessories", p.Category)
	}
}

func TestGetProductsByCategory_All(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/products/category/all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	assert.Len(t, products, 8)
}

func TestGetProduct_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/products/3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&product))
	assert.Equal(t, "Executive Power Suit", product.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/products/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp messageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Product not found", resp.Message)
}

func TestGetProduct_NonNumericID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/products/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
