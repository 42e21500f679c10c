package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoritesService_ToggleAddsAndRemoves(t *testing.T) {
	env := newTestEnv(1)

	got := env.favorites.Toggle("photo-1")
	assert.Equal(t, []string{"photo-1"}, got)

	got = env.favorites.Toggle("photo-1")
	assert.Empty(t, got)
}

func TestFavoritesService_DoubleToggleRestoresState(t *testing.T) {
	env := newTestEnv(1)
	env.favorites.Toggle("photo-1")
	env.favorites.Toggle("photo-2")
	env.favorites.Toggle("photo-3")

	before := env.favorites.List()
	env.favorites.Toggle("photo-2")
	after := env.favorites.Toggle("photo-2")

	// Membership is restored and ordering of the others is untouched,
	// though the re-added id moves to the end.
	assert.ElementsMatch(t, before, after)
	assert.Equal(t, []string{"photo-1", "photo-3", "photo-2"}, after)
}

func TestFavoritesService_OrderIsFirstFavorited(t *testing.T) {
	env := newTestEnv(1)

	env.favorites.Toggle("photo-3")
	env.favorites.Toggle("photo-1")
	got := env.favorites.Toggle("photo-2")

	assert.Equal(t, []string{"photo-3", "photo-1", "photo-2"}, got)
}
