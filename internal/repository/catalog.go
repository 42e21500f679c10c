package repository

import (
	"acutia-backend/internal/models"
	"acutia-backend/internal/seed"
	"acutia-backend/internal/storage"
)

// CatalogRepository handles storage operations for events and
// photographers. Reads fall back to the seed catalog when nothing has been
// persisted yet.
type CatalogRepository struct {
	store *storage.Store
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(store *storage.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Events retrieves the persisted events, or the seed events.
func (r *CatalogRepository) Events() []models.EventData {
	return storage.Get(r.store, storage.KeyEvents, seed.Events())
}

// SetEvents persists the full event list.
func (r *CatalogRepository) SetEvents(events []models.EventData) {
	storage.Set(r.store, storage.KeyEvents, events)
}

// Photographers retrieves the persisted photographers, or the seed
// photographers.
func (r *CatalogRepository) Photographers() []models.Photographer {
	return storage.Get(r.store, storage.KeyPhotographers, seed.Photographers())
}

// SetPhotographers persists the full photographer list.
func (r *CatalogRepository) SetPhotographers(photographers []models.Photographer) {
	storage.Set(r.store, storage.KeyPhotographers, photographers)
}
