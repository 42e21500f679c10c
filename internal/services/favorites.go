package services

import "acutia-backend/internal/repository"

// FavoritesService handles the favorite photo set, persisted as an ordered
// list without duplicates.
type FavoritesService struct {
	favorites *repository.FavoritesRepository
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(favorites *repository.FavoritesRepository) *FavoritesService {
	return &FavoritesService{favorites: favorites}
}

// List retrieves the favorite photo ids in first-favorited order.
func (s *FavoritesService) List() []string {
	return s.favorites.Get()
}

// Toggle flips membership of photoID: present ids are removed, absent ids
// are appended to the end. Returns the new list so callers can update
// dependent state without a second read.
func (s *FavoritesService) Toggle(photoID string) []string {
	ids := s.favorites.Get()

	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == photoID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, photoID)
	}

	s.favorites.Set(next)
	return next
}
