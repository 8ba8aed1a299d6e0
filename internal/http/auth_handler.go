package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/beyondgamer21/aura-elegance/internal/auth"
)

type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(authSvc *auth.Service) *AuthHandler {
	return &AuthHandler{auth: authSvc}
}

type RegisterRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequestDTO struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if errors.Is(err, auth.ErrUserExists) {
		respondMessage(w, http.StatusConflict, "An account with that email or phone already exists")
		return
	}
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Identifier, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
	respondJSON(w, http.StatusOK, user)
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(authCookieName); err == nil {
		h.auth.Logout(r.Context(), c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	respondMessage(w, http.StatusOK, "Logged out")
}

// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user == nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized - Please log in")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
