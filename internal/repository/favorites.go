package repository

import "acutia-backend/internal/storage"

// FavoritesRepository handles storage operations for favorite photo ids.
type FavoritesRepository struct {
	store *storage.Store
}

// NewFavoritesRepository creates a new favorites repository.
func NewFavoritesRepository(store *storage.Store) *FavoritesRepository {
	return &FavoritesRepository{store: store}
}

// Get retrieves the favorite photo ids in first-favorited order.
func (r *FavoritesRepository) Get() []string {
	return storage.Get(r.store, storage.KeyFavorites, []string{})
}

// Set persists the favorite photo ids.
func (r *FavoritesRepository) Set(ids []string) {
	storage.Set(r.store, storage.KeyFavorites, ids)
}
