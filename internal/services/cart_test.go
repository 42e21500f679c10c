package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acutia-backend/internal/models"
)

func TestCartService_AddIsUniquePerPhoto(t *testing.T) {
	env := newTestEnv(1)
	photo := testPhoto("photo-1", 990)

	for i := 0; i < 5; i++ {
		env.cart.Add(photo)
	}

	items := env.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "photo-1", items[0].Photo.ID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartService_AddPreservesInsertionOrder(t *testing.T) {
	env := newTestEnv(1)

	env.cart.Add(testPhoto("photo-1", 990))
	env.cart.Add(testPhoto("photo-2", 1490))
	items := env.cart.Add(testPhoto("photo-3", 1990))

	require.Len(t, items, 3)
	assert.Equal(t, "photo-1", items[0].Photo.ID)
	assert.Equal(t, "photo-3", items[2].Photo.ID)
}

func TestCartService_RemoveFiltersByPhotoID(t *testing.T) {
	env := newTestEnv(1)
	env.cart.Add(testPhoto("photo-1", 990))
	env.cart.Add(testPhoto("photo-2", 1490))

	items := env.cart.Remove("photo-1")

	require.Len(t, items, 1)
	assert.Equal(t, "photo-2", items[0].Photo.ID)
}

func TestCartService_RemoveAbsentIsNoOp(t *testing.T) {
	env := newTestEnv(1)
	env.cart.Add(testPhoto("photo-1", 990))

	items := env.cart.Remove("photo-99")

	require.Len(t, items, 1)
	assert.Equal(t, items, env.cart.Items())
}

func TestCartService_Clear(t *testing.T) {
	env := newTestEnv(1)
	env.cart.Add(testPhoto("photo-1", 990))
	env.cart.Add(testPhoto("photo-2", 1490))

	assert.Empty(t, env.cart.Clear())
	assert.Empty(t, env.cart.Items())
}

func TestComputeTotals_FeeArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		prices   []int
		subtotal int
		fee      int
		total    int
	}{
		{"even subtotal", []int{10000}, 10000, 500, 10500},
		{"half-up rounding", []int{999}, 999, 50, 1049},
		{"multiple items", []int{990, 1490, 2990}, 5470, 274, 5744},
		{"empty cart", nil, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]models.CartItem, 0, len(tt.prices))
			for i, p := range tt.prices {
				items = append(items, models.CartItem{Photo: testPhoto(string(rune('a'+i)), p), Quantity: 1})
			}

			totals := ComputeTotals(items)
			assert.Equal(t, tt.subtotal, totals.Subtotal)
			assert.Equal(t, tt.fee, totals.PlatformFee)
			assert.Equal(t, tt.total, totals.Total)
		})
	}
}
