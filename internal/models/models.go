package models

import "time"

// EventStatus is the lifecycle state of a catalog event.
type EventStatus string

const (
	EventStatusActive EventStatus = "active"
	EventStatusEnded  EventStatus = "ended"
)

// PhotographerStatus is the approval state of a photographer.
type PhotographerStatus string

const (
	PhotographerStatusApproved PhotographerStatus = "approved"
	PhotographerStatusPending  PhotographerStatus = "pending"
)

// PaymentMethod is the payment option chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "card"
)

// OrderStatus is the settlement state of an order.
type OrderStatus string

const (
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusCanceled OrderStatus = "canceled"
)

// User represents the current profile identity.
// The logged-out default has empty fields and IsLoggedIn=false.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// Photo represents a purchasable catalog photo. MatchScore is set only on
// photos produced by the match engine; catalog-sourced photos carry none.
type Photo struct {
	ID               string    `json:"id"`
	URL              string    `json:"url"`
	EventID          string    `json:"eventId"`
	Tags             []string  `json:"tags"`
	PriceCents       int       `json:"priceCents"`
	PhotographerName string    `json:"photographerName"`
	MatchScore       int       `json:"matchScore,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	Width            int       `json:"width,omitempty"`
	Height           int       `json:"height,omitempty"`
}

// CartItem is one cart line. Quantity is always 1; the cart holds at most
// one item per photo id.
type CartItem struct {
	Photo    Photo `json:"photo"`
	Quantity int   `json:"quantity"`
}

// EventData represents a catalog event.
type EventData struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Date        string      `json:"date"`
	Location    string      `json:"location"`
	Thumbnail   string      `json:"thumbnail"`
	Status      EventStatus `json:"status"`
	Description string      `json:"description,omitempty"`
	PhotoCount  int         `json:"photoCount,omitempty"`
}

// Photographer represents a catalog photographer.
type Photographer struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Status      PhotographerStatus `json:"status"`
	PhotosCount int                `json:"photosCount"`
}

// Order is an immutable ledger record. Items is a snapshot of the cart at
// checkout time; Total and PlatformFee are integer cents.
type Order struct {
	ID            string        `json:"id"`
	Items         []CartItem    `json:"items"`
	Date          time.Time     `json:"date"`
	Total         int           `json:"total"`
	PlatformFee   int           `json:"platformFee"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        OrderStatus   `json:"status"`
}

// MatchResult is the outcome of a simulated face-match search.
type MatchResult struct {
	Matches          []Photo `json:"matches"`
	ProcessingTimeMs int64   `json:"processingTimeMs"`
}
