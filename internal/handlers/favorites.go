package handlers

import (
	"net/http"

	"acutia-backend/internal/store"

	"github.com/go-chi/chi/v5"
)

// FavoritesHandler handles favorites-related HTTP requests
type FavoritesHandler struct {
	store *store.Store
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(s *store.Store) *FavoritesHandler {
	return &FavoritesHandler{store: s}
}

// GetFavorites handles GET /api/v1/favorites
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"favorites": h.store.Favorites(),
	})
}

// ToggleFavorite handles POST /api/v1/favorites/{photo_id}/toggle
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photo_id")
	if photoID == "" {
		respondError(w, "photo_id is required", http.StatusBadRequest)
		return
	}

	favorites := h.store.ToggleFavorite(photoID)
	respondJSON(w, http.StatusOK, map[string]any{
		"favorites": favorites,
	})
}
