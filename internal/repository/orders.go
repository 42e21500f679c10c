package repository

import (
	"acutia-backend/internal/models"
	"acutia-backend/internal/storage"
)

// OrderRepository handles storage operations for the order ledger. The
// ledger is append-only and ordered newest-first; records are never
// rewritten after insertion.
type OrderRepository struct {
	store *storage.Store
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(store *storage.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// List retrieves all orders, newest first.
func (r *OrderRepository) List() []models.Order {
	return storage.Get(r.store, storage.KeyOrders, []models.Order{})
}

// Add prepends order to the ledger and returns the new list.
func (r *OrderRepository) Add(order models.Order) []models.Order {
	orders := append([]models.Order{order}, r.List()...)
	storage.Set(r.store, storage.KeyOrders, orders)
	return orders
}

// Get retrieves an order by id. The second result is false when no order
// matches.
func (r *OrderRepository) Get(id string) (models.Order, bool) {
	for _, order := range r.List() {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}
