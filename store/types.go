// Package store is the demo domain used by the scenario runner and the
// examples: a small e-commerce model with nested objects, collections, a
// recursive category tree and a self-referencing customer link.
package store

import (
	"time"

	"github.com/google/uuid"
)

// Money is an amount in the lowest currency unit (cents), to avoid
// floating-point errors.
type Money struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Statuses lists every defined order status.
func Statuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPaid, StatusShipped, StatusCancelled}
}

// Customer represents the user placing orders. Referrer links to another
// customer, so population leaves it nil.
type Customer struct {
	ID        uuid.UUID         `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	City      string            `json:"city"`
	Age       int               `json:"age"`
	IsActive  bool              `json:"is_active"`
	SignedUp  time.Time         `json:"signed_up"`
	Referrer  *Customer         `json:"referrer,omitempty"`
	Orders    []Order           `json:"orders,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
}

// Order represents a transaction made by a customer.
type Order struct {
	ID       uuid.UUID   `json:"id"`
	Status   OrderStatus `json:"status"`
	Total    Money       `json:"total"`
	Items    []Item      `json:"items"`
	Note     *string     `json:"note,omitempty"`
	PlacedAt time.Time   `json:"placed_at"`
}

// Item is a product line within an order. It snapshots the price at the
// time of purchase.
type Item struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

// Category is a recursive tree: children carry the parent's type, so they
// are constructed without being populated further.
type Category struct {
	Name     string     `json:"name"`
	Children []Category `json:"children,omitempty"`
}
