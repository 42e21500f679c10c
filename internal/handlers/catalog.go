package handlers

import (
	"encoding/json"
	"net/http"

	"acutia-backend/internal/models"
	"acutia-backend/internal/services"
	"acutia-backend/internal/store"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	store *store.Store
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(s *store.Store) *CatalogHandler {
	return &CatalogHandler{store: s}
}

// GetEvents handles GET /api/v1/events
func (h *CatalogHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"events": h.store.Events(),
	})
}

// CreateEvent handles POST /api/v1/events
func (h *CatalogHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.EventData
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if event.Name == "" {
		respondError(w, "name is required", http.StatusBadRequest)
		return
	}
	if event.ID == "" {
		event.ID = services.NewEventID()
	}
	if event.Status == "" {
		event.Status = models.EventStatusActive
	}

	events := h.store.AddEvent(event)
	respondJSON(w, http.StatusCreated, map[string]any{
		"event":  event,
		"events": events,
	})
}

// ReplaceEvents handles PUT /api/v1/events
func (h *CatalogHandler) ReplaceEvents(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Events []models.EventData `json:"events"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	events := h.store.SetEvents(req.Events)
	respondJSON(w, http.StatusOK, map[string]any{
		"events": events,
	})
}

// GetPhotographers handles GET /api/v1/photographers
func (h *CatalogHandler) GetPhotographers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"photographers": h.store.Photographers(),
	})
}

// ReplacePhotographers handles PUT /api/v1/photographers
func (h *CatalogHandler) ReplacePhotographers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Photographers []models.Photographer `json:"photographers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	photographers := h.store.SetPhotographers(req.Photographers)
	respondJSON(w, http.StatusOK, map[string]any{
		"photographers": photographers,
	})
}

// TogglePhotographerStatus handles POST /api/v1/photographers/{id}/toggle
func (h *CatalogHandler) TogglePhotographerStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, "id is required", http.StatusBadRequest)
		return
	}

	photographers := h.store.TogglePhotographerStatus(id)
	respondJSON(w, http.StatusOK, map[string]any{
		"photographers": photographers,
	})
}
