package handlers

import (
	"net/http"

	"acutia-backend/internal/store"

	"github.com/rs/zerolog/log"
)

// maxSelfieBytes bounds the multipart form held in memory.
const maxSelfieBytes = 10 << 20

// MatchHandler handles face-match search HTTP requests
type MatchHandler struct {
	store *store.Store
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(s *store.Store) *MatchHandler {
	return &MatchHandler{store: s}
}

// GetMatches handles GET /api/v1/matches
func (h *MatchHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"matches": h.store.MatchedPhotos(),
	})
}

// Search handles POST /api/v1/matches/search. The selfie and the consent
// flag are required before the core is invoked; the image bytes themselves
// are never inspected.
func (h *MatchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSelfieBytes); err != nil {
		respondError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	if r.FormValue("consent") != "true" {
		respondError(w, "consent is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("selfie")
	if err != nil {
		respondError(w, "selfie is required", http.StatusBadRequest)
		return
	}
	file.Close()

	eventID := r.FormValue("eventId")

	log.Info().
		Str("filename", header.Filename).
		Str("event_id", eventID).
		Msg("Match search started")

	result := h.store.SearchMatches(eventID)
	respondJSON(w, http.StatusOK, result)
}
