package repository

import (
	"acutia-backend/internal/models"
	"acutia-backend/internal/storage"
)

// UserRepository handles storage operations for the session user.
type UserRepository struct {
	store *storage.Store
}

// NewUserRepository creates a new user repository.
func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Get retrieves the current user, or the logged-out default when no user
// is persisted.
func (r *UserRepository) Get() models.User {
	return storage.Get(r.store, storage.KeyUser, models.User{})
}

// Set persists the user.
func (r *UserRepository) Set(user models.User) {
	storage.Set(r.store, storage.KeyUser, user)
}

// Clear removes the persisted user entirely.
func (r *UserRepository) Clear() {
	r.store.Remove(storage.KeyUser)
}
