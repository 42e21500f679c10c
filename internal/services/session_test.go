package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acutia-backend/internal/models"
)

func TestSessionService_LoginPersistsUser(t *testing.T) {
	env := newTestEnv(1)

	user := env.session.Login("Ana", "ana@x.com")

	assert.Equal(t, "u-1", user.ID)
	assert.True(t, user.IsLoggedIn)
	assert.Equal(t, user, env.session.Current())
}

func TestSessionService_LoginAcceptsEmptyStrings(t *testing.T) {
	env := newTestEnv(1)

	// The core performs no validation; that is the caller's job.
	user := env.session.Login("", "")
	assert.True(t, user.IsLoggedIn)
}

func TestSessionService_LogoutClearsSessionOnly(t *testing.T) {
	env := newTestEnv(1)

	env.session.Login("Ana", "ana@x.com")
	env.cart.Add(testPhoto("photo-1", 990))
	env.favorites.Toggle("photo-2")

	cartBefore := env.cart.Items()
	favsBefore := env.favorites.List()

	got := env.session.Logout()

	assert.Equal(t, models.User{}, got)
	assert.Equal(t, models.User{}, env.session.Current())
	assert.Equal(t, cartBefore, env.cart.Items())
	assert.Equal(t, favsBefore, env.favorites.List())
}

func TestSessionService_LoginAfterLogout(t *testing.T) {
	env := newTestEnv(1)

	env.session.Login("Ana", "ana@x.com")
	env.session.Logout()
	user := env.session.Login("Bruno", "bruno@x.com")

	require.True(t, user.IsLoggedIn)
	assert.Equal(t, "Bruno", env.session.Current().Name)
}
