package repository

import (
	"acutia-backend/internal/models"
	"acutia-backend/internal/storage"
)

// CartRepository handles storage operations for the cart.
type CartRepository struct {
	store *storage.Store
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(store *storage.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Get retrieves the cart, empty when none is persisted.
func (r *CartRepository) Get() []models.CartItem {
	return storage.Get(r.store, storage.KeyCart, []models.CartItem{})
}

// Set persists the full cart. Every mutation rewrites the whole list;
// concurrent writers race and the last writer wins.
func (r *CartRepository) Set(items []models.CartItem) {
	storage.Set(r.store, storage.KeyCart, items)
}
