package models

import "time"

// OrderStatus describes where an order is in fulfilment.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
)

// Order is a confirmed spaceship purchase. Orders are written once and never
// updated by storekeeper.
type Order struct {
	ID          int64
	InvoiceID   string
	CustomerID  int64
	SpaceshipID int64
	OrderedAt   time.Time
	Destination string
	Status      OrderStatus
	Discount    Money
	Total       Money
}
