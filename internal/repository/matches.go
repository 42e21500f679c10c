package repository

import (
	"acutia-backend/internal/models"
	"acutia-backend/internal/storage"
)

// MatchRepository handles storage operations for the matched-photos
// working set. Each search overwrites the previous result.
type MatchRepository struct {
	store *storage.Store
}

// NewMatchRepository creates a new match repository.
func NewMatchRepository(store *storage.Store) *MatchRepository {
	return &MatchRepository{store: store}
}

// Get retrieves the photos matched by the most recent search.
func (r *MatchRepository) Get() []models.Photo {
	return storage.Get(r.store, storage.KeyMatchedPhotos, []models.Photo{})
}

// Set persists the matched photos, replacing any previous result.
func (r *MatchRepository) Set(photos []models.Photo) {
	storage.Set(r.store, storage.KeyMatchedPhotos, photos)
}
