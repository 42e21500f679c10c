package services

import (
	"acutia-backend/internal/models"
	"acutia-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

// Totals is the checkout summary derived from a cart, in integer cents.
type Totals struct {
	Subtotal    int `json:"subtotal"`
	PlatformFee int `json:"platformFee"`
	Total       int `json:"total"`
}

// CartService handles cart mutations. The cart holds at most one item per
// photo id; every mutation rewrites the full persisted list and returns
// the new authoritative value.
type CartService struct {
	cart *repository.CartRepository
}

// NewCartService creates a new cart service.
func NewCartService(cart *repository.CartRepository) *CartService {
	return &CartService{cart: cart}
}

// Items retrieves the current cart.
func (s *CartService) Items() []models.CartItem {
	return s.cart.Get()
}

// Add appends photo to the cart with quantity 1. Adding a photo already in
// the cart is a no-op.
func (s *CartService) Add(photo models.Photo) []models.CartItem {
	items := s.cart.Get()
	for _, item := range items {
		if item.Photo.ID == photo.ID {
			return items
		}
	}

	items = append(items, models.CartItem{Photo: photo, Quantity: 1})
	s.cart.Set(items)

	log.Debug().Str("photo_id", photo.ID).Int("size", len(items)).Msg("Photo added to cart")
	return items
}

// Remove filters the item with photoID out of the cart. Removing an absent
// photo is a no-op.
func (s *CartService) Remove(photoID string) []models.CartItem {
	items := s.cart.Get()
	kept := items[:0]
	for _, item := range items {
		if item.Photo.ID != photoID {
			kept = append(kept, item)
		}
	}

	s.cart.Set(kept)
	return kept
}

// Clear empties the cart.
func (s *CartService) Clear() []models.CartItem {
	items := []models.CartItem{}
	s.cart.Set(items)
	return items
}

// ComputeTotals derives the checkout summary for items: the subtotal, the
// 5% platform fee and their sum.
func ComputeTotals(items []models.CartItem) Totals {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Photo.PriceCents * item.Quantity
	}

	fee := platformFee(subtotal)
	return Totals{
		Subtotal:    subtotal,
		PlatformFee: fee,
		Total:       subtotal + fee,
	}
}

// platformFee is round-half-up of 5% of subtotal, computed on integer
// cents.
func platformFee(subtotal int) int {
	return (subtotal*5 + 50) / 100
}
