package handlers

import (
	"encoding/json"
	"net/http"

	"acutia-backend/internal/store"
)

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetSession handles GET /api/v1/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.User())
}

// Login handles POST /api/v1/session
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// The core accepts anything; form-level validation lives here.
	if req.Name == "" || req.Email == "" {
		respondError(w, "name and email are required", http.StatusBadRequest)
		return
	}

	user := h.store.Login(req.Name, req.Email)
	respondJSON(w, http.StatusOK, user)
}

// Logout handles DELETE /api/v1/session
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Logout())
}
