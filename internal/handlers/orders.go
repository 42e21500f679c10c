package handlers

import (
	"encoding/json"
	"net/http"

	"acutia-backend/internal/models"
	"acutia-backend/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	store *store.Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(s *store.Store) *OrderHandler {
	return &OrderHandler{store: s}
}

// CheckoutRequest is the checkout payload.
type CheckoutRequest struct {
	CustomerName  string               `json:"customerName"`
	CustomerEmail string               `json:"customerEmail"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

// GetOrders handles GET /api/v1/orders
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"orders": h.store.Orders(),
	})
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, ok := h.store.Order(id)
	if !ok {
		respondError(w, "order not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// Checkout handles POST /api/v1/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.CustomerName == "" || req.CustomerEmail == "" {
		respondError(w, "customerName and customerEmail are required", http.StatusBadRequest)
		return
	}
	if req.PaymentMethod != models.PaymentMethodPix && req.PaymentMethod != models.PaymentMethodCard {
		respondError(w, "paymentMethod must be pix or card", http.StatusBadRequest)
		return
	}
	if h.store.CartCount() == 0 {
		respondError(w, "cart is empty", http.StatusBadRequest)
		return
	}

	order := h.store.Checkout(req.CustomerName, req.CustomerEmail, req.PaymentMethod)

	log.Info().
		Str("order_id", order.ID).
		Str("customer_email", order.CustomerEmail).
		Msg("Checkout completed")

	respondJSON(w, http.StatusCreated, order)
}
