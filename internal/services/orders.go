package services

import (
	"strconv"
	"time"

	"acutia-backend/internal/models"
	"acutia-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	// orderIDPrefix plus the last digits of an epoch-millisecond timestamp
	// forms a short, human-distinguishable order id.
	orderIDPrefix = "PED-"
	orderIDDigits = 6

	// PaymentDelay is the fixed simulated payment-processing latency.
	PaymentDelay = 2500 * time.Millisecond
)

// OrderService handles the append-only order ledger and the simulated
// checkout flow. Orders are never mutated or removed after insertion.
type OrderService struct {
	orders *repository.OrderRepository
	cart   *repository.CartRepository
	delay  time.Duration
	now    func() time.Time
}

// NewOrderService creates a new order service with the production payment
// delay and wall clock.
func NewOrderService(orders *repository.OrderRepository, cart *repository.CartRepository) *OrderService {
	return &OrderService{
		orders: orders,
		cart:   cart,
		delay:  PaymentDelay,
		now:    time.Now,
	}
}

// NewOrderServiceWithClock creates an order service with an injected delay
// and time source, for deterministic tests.
func NewOrderServiceWithClock(orders *repository.OrderRepository, cart *repository.CartRepository, delay time.Duration, now func() time.Time) *OrderService {
	return &OrderService{orders: orders, cart: cart, delay: delay, now: now}
}

// List retrieves all orders, newest first.
func (s *OrderService) List() []models.Order {
	return s.orders.List()
}

// Get retrieves an order by id. The second result is false when no order
// matches.
func (s *OrderService) Get(id string) (models.Order, bool) {
	return s.orders.Get(id)
}

// Add prepends order to the ledger and returns the new list.
func (s *OrderService) Add(order models.Order) []models.Order {
	return s.orders.Add(order)
}

// Checkout snapshots the current cart into a new approved order, appends
// it to the ledger and empties the cart. The call blocks for the simulated
// payment-processing delay before the order is built; payment never fails
// in this flow. Inputs are trusted, validation happens at the call site.
func (s *OrderService) Checkout(name, email string, method models.PaymentMethod) models.Order {
	items := s.cart.Get()

	time.Sleep(s.delay)

	totals := ComputeTotals(items)
	order := models.Order{
		ID:            s.newOrderID(),
		Items:         items,
		Date:          s.now(),
		Total:         totals.Total,
		PlatformFee:   totals.PlatformFee,
		CustomerName:  name,
		CustomerEmail: email,
		PaymentMethod: method,
		Status:        models.OrderStatusApproved,
	}

	s.orders.Add(order)
	s.cart.Set([]models.CartItem{})

	log.Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Int("total", order.Total).
		Str("payment_method", string(method)).
		Msg("Order placed")

	return order
}

func (s *OrderService) newOrderID() string {
	millis := strconv.FormatInt(s.now().UnixMilli(), 10)
	if len(millis) > orderIDDigits {
		millis = millis[len(millis)-orderIDDigits:]
	}
	return orderIDPrefix + millis
}
