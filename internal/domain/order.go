// Package domain defines the value types the pizzeria backend exchanges with
// the client: pizzas, orders and their product lines, and cook tasks.
// All of them are server-owned; the client never mutates them locally.
package domain

import "time"

// OrderStatus is the lifecycle status of an order as the backend reports it.
type OrderStatus string

const (
	StatusDraft     OrderStatus = "DRAFT"
	StatusFormed    OrderStatus = "FORMED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusDeleted   OrderStatus = "DELETED"
	StatusRejected  OrderStatus = "REJECTED"
)

// Statuses lists every order status in the order the backend defines them.
var Statuses = []OrderStatus{
	StatusDraft,
	StatusDeleted,
	StatusFormed,
	StatusCompleted,
	StatusRejected,
}

// ProductLine is one position inside an order.
type ProductLine struct {
	ID       int   `json:"id"`
	Product  Pizza `json:"product"`
	Quantity int   `json:"quantity"`
}

// Order is a customer order. At most one order per user may be in DRAFT
// status; the backend enforces that, the client only relies on it.
type Order struct {
	ID                 int           `json:"id"`
	Status             OrderStatus   `json:"status"`
	CreationDatetime   time.Time     `json:"creation_datetime"`
	CompletionDatetime *time.Time    `json:"completion_datetime"`
	Products           []ProductLine `json:"products"`
}

// IsDraft reports whether the order is still being assembled.
func (o Order) IsDraft() bool { return o.Status == StatusDraft }
