package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/beyondgamer21/aura-elegance/internal/auth"
)

// NewRouter assembles the storefront API.
func NewRouter(
	products *ProductsHandler,
	orders *OrdersHandler,
	carts *CartHandler,
	authHandler *AuthHandler,
	authSvc *auth.Service,
	requestTimeout time.Duration,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)
	r.Use(UserMiddleware(authSvc))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Get("/category/{category}", products.ListByCategory)
			r.Get("/{id}", products.Get)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orders.Create)
			r.Get("/", orders.List)
			r.Get("/{id}", orders.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", carts.Get)
			r.Delete("/", carts.Clear)
			r.Post("/items", carts.AddItem)
			r.Put("/items/{id}", carts.UpdateQuantity)
			r.Delete("/items/{id}", carts.RemoveItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})

	return r
}
