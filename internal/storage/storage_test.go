package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acutia-backend/internal/models"
)

func TestStore_RoundTrip(t *testing.T) {
	s := New(NewMemoryBackend(), DefaultPrefix)

	user := models.User{ID: "u-1", Name: "Ana", Email: "ana@x.com", IsLoggedIn: true}
	Set(s, KeyUser, user)

	got := Get(s, KeyUser, models.User{})
	assert.Equal(t, user, got)
}

func TestStore_RoundTrip_List(t *testing.T) {
	s := New(NewMemoryBackend(), DefaultPrefix)

	items := []models.CartItem{
		{Photo: models.Photo{ID: "photo-1", PriceCents: 990, Tags: []string{"torcida", "gol"}}, Quantity: 1},
		{Photo: models.Photo{ID: "photo-2", PriceCents: 1490}, Quantity: 1},
	}
	Set(s, KeyCart, items)

	got := Get(s, KeyCart, []models.CartItem{})
	assert.Equal(t, items, got)
}

func TestStore_Get_MissingKeyReturnsDefault(t *testing.T) {
	s := New(NewMemoryBackend(), DefaultPrefix)

	got := Get(s, KeyFavorites, []string{"fallback"})
	assert.Equal(t, []string{"fallback"}, got)
}

func TestStore_Get_CorruptValueReturnsDefault(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend, DefaultPrefix)

	// Plant a value that is not valid JSON under the namespaced key.
	require.NoError(t, backend.Save(DefaultPrefix+KeyUser, []byte("{not json")))

	got := Get(s, KeyUser, models.User{Name: "default"})
	assert.Equal(t, models.User{Name: "default"}, got)
}

func TestStore_Get_WrongShapeReturnsDefault(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend, DefaultPrefix)

	require.NoError(t, backend.Save(DefaultPrefix+KeyCart, []byte(`"a string, not a list"`)))

	got := Get(s, KeyCart, []models.CartItem{})
	assert.Empty(t, got)
}

func TestStore_Remove(t *testing.T) {
	s := New(NewMemoryBackend(), DefaultPrefix)

	Set(s, KeyUser, models.User{ID: "u-1", IsLoggedIn: true})
	s.Remove(KeyUser)

	got := Get(s, KeyUser, models.User{})
	assert.Equal(t, models.User{}, got)
}

func TestStore_Remove_AbsentKeyIsNoOp(t *testing.T) {
	s := New(NewMemoryBackend(), DefaultPrefix)

	assert.NotPanics(t, func() {
		s.Remove(KeyOrders)
	})
}

func TestStore_PrefixNamespacesKeys(t *testing.T) {
	backend := NewMemoryBackend()
	a := New(backend, "a_")
	b := New(backend, "b_")

	Set(a, KeyFavorites, []string{"photo-1"})
	Set(b, KeyFavorites, []string{"photo-2"})

	assert.Equal(t, []string{"photo-1"}, Get(a, KeyFavorites, []string{}))
	assert.Equal(t, []string{"photo-2"}, Get(b, KeyFavorites, []string{}))
}
