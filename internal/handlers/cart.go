package handlers

import (
	"encoding/json"
	"net/http"

	"acutia-backend/internal/models"
	"acutia-backend/internal/services"
	"acutia-backend/internal/store"

	"github.com/go-chi/chi/v5"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	store *store.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{store: s}
}

// CartResponse is a cart snapshot with its derived checkout values.
type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	services.Totals
}

func (h *CartHandler) cartResponse(items []models.CartItem) CartResponse {
	return CartResponse{
		Items:  items,
		Count:  len(items),
		Totals: services.ComputeTotals(items),
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse(h.store.Cart()))
}

// AddToCart handles POST /api/v1/cart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Photo models.Photo `json:"photo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Photo.ID == "" {
		respondError(w, "photo.id is required", http.StatusBadRequest)
		return
	}

	items := h.store.AddToCart(req.Photo)
	respondJSON(w, http.StatusCreated, h.cartResponse(items))
}

// RemoveFromCart handles DELETE /api/v1/cart/{photo_id}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photo_id")
	items := h.store.RemoveFromCart(photoID)
	respondJSON(w, http.StatusOK, h.cartResponse(items))
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	items := h.store.ClearCart()
	respondJSON(w, http.StatusOK, h.cartResponse(items))
}
