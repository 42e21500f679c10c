package services

import (
	"acutia-backend/internal/models"
	"acutia-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

// sessionUserID is the fixed synthetic id of the single demo user.
const sessionUserID = "u-1"

// SessionService handles login and logout for the single-profile session.
// It performs no validation of name or email; that is the caller's
// responsibility.
type SessionService struct {
	users *repository.UserRepository
}

// NewSessionService creates a new session service.
func NewSessionService(users *repository.UserRepository) *SessionService {
	return &SessionService{users: users}
}

// Current retrieves the current user, logged-out default when none.
func (s *SessionService) Current() models.User {
	return s.users.Get()
}

// Login persists and returns a logged-in user with the fixed synthetic id.
func (s *SessionService) Login(name, email string) models.User {
	user := models.User{
		ID:         sessionUserID,
		Name:       name,
		Email:      email,
		IsLoggedIn: true,
	}
	s.users.Set(user)

	log.Info().Str("email", email).Msg("User logged in")
	return user
}

// Logout removes the persisted user and returns the logged-out default.
// Cart, favorites and other entities are untouched.
func (s *SessionService) Logout() models.User {
	s.users.Clear()

	log.Info().Msg("User logged out")
	return models.User{}
}
