// Package store provides the single reactive access point the boundary
// consumes. It mirrors every persisted entity in memory for synchronous
// reads and notifies subscribers after each mutation.
package store

import (
	"sync"

	"acutia-backend/internal/models"
	"acutia-backend/internal/services"
	"acutia-backend/internal/storage"
)

// Store is the reactive facade over the entity managers. Mutating methods
// delegate to the owning service (which persists first), assign the
// returned authoritative value to the in-memory mirror and notify
// subscribers with the changed key. Reads return snapshots; callers must
// not mutate them.
type Store struct {
	session   *services.SessionService
	cart      *services.CartService
	favorites *services.FavoritesService
	catalog   *services.CatalogService
	orders    *services.OrderService
	match     *services.MatchService

	mu            sync.RWMutex
	user          models.User
	cartItems     []models.CartItem
	favoriteIDs   []string
	matched       []models.Photo
	events        []models.EventData
	photographers []models.Photographer
	orderList     []models.Order

	subMu       sync.Mutex
	subscribers []func(key string)
}

// New creates a store facade with its mirror initialized from the
// persisted state.
func New(
	session *services.SessionService,
	cart *services.CartService,
	favorites *services.FavoritesService,
	catalog *services.CatalogService,
	orders *services.OrderService,
	match *services.MatchService,
) *Store {
	return &Store{
		session:       session,
		cart:          cart,
		favorites:     favorites,
		catalog:       catalog,
		orders:        orders,
		match:         match,
		user:          session.Current(),
		cartItems:     cart.Items(),
		favoriteIDs:   favorites.List(),
		matched:       match.Matched(),
		events:        catalog.Events(),
		photographers: catalog.Photographers(),
		orderList:     orders.List(),
	}
}

// Subscribe registers fn to be called with the changed key after every
// mutation. Callbacks run outside the store's locks.
func (s *Store) Subscribe(fn func(key string)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(keys ...string) {
	s.subMu.Lock()
	subs := append([]func(string){}, s.subscribers...)
	s.subMu.Unlock()

	for _, fn := range subs {
		for _, key := range keys {
			fn(key)
		}
	}
}

// User returns the current session user.
func (s *Store) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Login logs the user in and returns the new identity.
func (s *Store) Login(name, email string) models.User {
	user := s.session.Login(name, email)

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.notify(storage.KeyUser)
	return user
}

// Logout clears the session. Cart and favorites are untouched.
func (s *Store) Logout() models.User {
	user := s.session.Logout()

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.notify(storage.KeyUser)
	return user
}

// Cart returns the current cart items.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartItems
}

// CartCount returns the number of cart items.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cartItems)
}

// CartTotals returns the checkout summary for the current cart.
func (s *Store) CartTotals() services.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return services.ComputeTotals(s.cartItems)
}

// AddToCart adds photo to the cart and returns the new cart.
func (s *Store) AddToCart(photo models.Photo) []models.CartItem {
	items := s.cart.Add(photo)

	s.mu.Lock()
	s.cartItems = items
	s.mu.Unlock()

	s.notify(storage.KeyCart)
	return items
}

// RemoveFromCart removes the item with photoID and returns the new cart.
func (s *Store) RemoveFromCart(photoID string) []models.CartItem {
	items := s.cart.Remove(photoID)

	s.mu.Lock()
	s.cartItems = items
	s.mu.Unlock()

	s.notify(storage.KeyCart)
	return items
}

// ClearCart empties the cart.
func (s *Store) ClearCart() []models.CartItem {
	items := s.cart.Clear()

	s.mu.Lock()
	s.cartItems = items
	s.mu.Unlock()

	s.notify(storage.KeyCart)
	return items
}

// Favorites returns the favorite photo ids.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favoriteIDs
}

// IsFavorite reports whether photoID is currently favorited.
func (s *Store) IsFavorite(photoID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.favoriteIDs {
		if id == photoID {
			return true
		}
	}
	return false
}

// ToggleFavorite flips membership of photoID and returns the new list.
func (s *Store) ToggleFavorite(photoID string) []string {
	ids := s.favorites.Toggle(photoID)

	s.mu.Lock()
	s.favoriteIDs = ids
	s.mu.Unlock()

	s.notify(storage.KeyFavorites)
	return ids
}

// MatchedPhotos returns the photos from the most recent match search.
func (s *Store) MatchedPhotos() []models.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matched
}

// SetMatchedPhotos replaces the matched-photos working set directly.
func (s *Store) SetMatchedPhotos(photos []models.Photo) []models.Photo {
	photos = s.match.SetMatched(photos)

	s.mu.Lock()
	s.matched = photos
	s.mu.Unlock()

	s.notify(storage.KeyMatchedPhotos)
	return photos
}

// SearchMatches runs the simulated match search, scoped to eventID when
// non-empty. The call blocks for the simulated processing delay; other
// store operations proceed meanwhile. Concurrent searches race and the
// last one to finish wins the matched-photos mirror.
func (s *Store) SearchMatches(eventID string) models.MatchResult {
	result := s.match.Search(eventID)

	s.mu.Lock()
	s.matched = result.Matches
	s.mu.Unlock()

	s.notify(storage.KeyMatchedPhotos)
	return result
}

// Events returns the catalog events.
func (s *Store) Events() []models.EventData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events
}

// AddEvent prepends event to the catalog and returns the new list.
func (s *Store) AddEvent(event models.EventData) []models.EventData {
	events := s.catalog.AddEvent(event)

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()

	s.notify(storage.KeyEvents)
	return events
}

// SetEvents replaces the catalog event list.
func (s *Store) SetEvents(events []models.EventData) []models.EventData {
	events = s.catalog.SetEvents(events)

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()

	s.notify(storage.KeyEvents)
	return events
}

// Photographers returns the catalog photographers.
func (s *Store) Photographers() []models.Photographer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.photographers
}

// SetPhotographers replaces the catalog photographer list.
func (s *Store) SetPhotographers(photographers []models.Photographer) []models.Photographer {
	photographers = s.catalog.SetPhotographers(photographers)

	s.mu.Lock()
	s.photographers = photographers
	s.mu.Unlock()

	s.notify(storage.KeyPhotographers)
	return photographers
}

// TogglePhotographerStatus flips the approval status of the matching
// photographer and returns the new list.
func (s *Store) TogglePhotographerStatus(id string) []models.Photographer {
	photographers := s.catalog.TogglePhotographerStatus(id)

	s.mu.Lock()
	s.photographers = photographers
	s.mu.Unlock()

	s.notify(storage.KeyPhotographers)
	return photographers
}

// Orders returns the order ledger, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderList
}

// Order retrieves an order by id. The second result is false when no
// order matches.
func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orderList {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// Checkout turns the current cart into a new order after the simulated
// payment delay, then empties the cart. Returns the created order.
func (s *Store) Checkout(name, email string, method models.PaymentMethod) models.Order {
	order := s.orders.Checkout(name, email, method)

	s.mu.Lock()
	s.orderList = append([]models.Order{order}, s.orderList...)
	s.cartItems = []models.CartItem{}
	s.mu.Unlock()

	s.notify(storage.KeyOrders, storage.KeyCart)
	return order
}
