package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acutia-backend/internal/models"
)

func TestOrderService_LedgerIsNewestFirstAndImmutable(t *testing.T) {
	env := newTestEnv(1)

	a := models.Order{
		ID: "PED-000001", Total: 1049, PlatformFee: 50,
		CustomerName: "Ana", CustomerEmail: "ana@x.com",
		PaymentMethod: models.PaymentMethodPix, Status: models.OrderStatusApproved,
	}
	b := models.Order{
		ID: "PED-000002", Total: 10500, PlatformFee: 500,
		CustomerName: "Bruno", CustomerEmail: "bruno@x.com",
		PaymentMethod: models.PaymentMethodCard, Status: models.OrderStatusApproved,
	}

	env.orders.Add(a)
	env.orders.Add(b)

	orders := env.orders.List()
	require.Len(t, orders, 2)
	assert.Equal(t, b, orders[0])
	assert.Equal(t, a, orders[1])
}

func TestOrderService_GetAbsentOrder(t *testing.T) {
	env := newTestEnv(1)

	_, ok := env.orders.Get("PED-999999")
	assert.False(t, ok)
}

func TestOrderService_CheckoutBuildsOrderFromCart(t *testing.T) {
	env := newTestEnv(1)
	env.cart.Add(testPhoto("photo-1", 990))
	env.cart.Add(testPhoto("photo-2", 999))

	order := env.orders.Checkout("Ana", "ana@x.com", models.PaymentMethodPix)

	assert.Equal(t, models.OrderStatusApproved, order.Status)
	assert.Equal(t, "Ana", order.CustomerName)
	assert.Equal(t, models.PaymentMethodPix, order.PaymentMethod)
	require.Len(t, order.Items, 2)

	// subtotal 1989, fee round-half-up(99.45) = 99
	assert.Equal(t, 99, order.PlatformFee)
	assert.Equal(t, 2088, order.Total)
	assert.Equal(t, time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC), order.Date)
}

func TestOrderService_CheckoutIDFormat(t *testing.T) {
	env := newTestEnv(1)
	env.cart.Add(testPhoto("photo-1", 990))

	order := env.orders.Checkout("Ana", "ana@x.com", models.PaymentMethodCard)

	require.Len(t, order.ID, len("PED-")+6)
	assert.Equal(t, "PED-", order.ID[:4])
}

func TestOrderService_CheckoutClearsCartAndAppends(t *testing.T) {
	env := newTestEnv(1)
	env.cart.Add(testPhoto("photo-1", 990))

	order := env.orders.Checkout("Ana", "ana@x.com", models.PaymentMethodPix)

	assert.Empty(t, env.cart.Items())

	got, ok := env.orders.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, order, got)
}

func TestOrderService_CheckoutSnapshotIsStable(t *testing.T) {
	env := newTestEnv(1)
	env.cart.Add(testPhoto("photo-1", 990))

	order := env.orders.Checkout("Ana", "ana@x.com", models.PaymentMethodPix)

	// Later cart activity must not touch the ledger record.
	env.cart.Add(testPhoto("photo-9", 2990))

	got, ok := env.orders.Get(order.ID)
	require.True(t, ok)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "photo-1", got.Items[0].Photo.ID)
}
