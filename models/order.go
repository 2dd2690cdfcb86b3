package models

import "time"

// FulfillmentMethod is how the customer receives the order
type FulfillmentMethod string

const (
	MethodPickup   FulfillmentMethod = "pickup"
	MethodDelivery FulfillmentMethod = "delivery"
)

// Label returns the customer-facing name used in order summaries.
func (m FulfillmentMethod) Label() string {
	if m == MethodDelivery {
		return "Delivery (20 min+)"
	}
	return "Ambil Sendiri"
}

// OrderLine is the frozen copy of an item on an order, independent of any
// later menu edits. Price is the unit price at submission time.
type OrderLine struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  string  `json:"order_id" gorm:"not null;index"`
	Name     string  `json:"name" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`
}

// Order is created exactly once at submission time and never mutated.
// DistanceKm and DeliveryCost are populated only for delivery orders;
// DeliveryCost is in currency minor units.
type Order struct {
	ID           string            `json:"id" gorm:"primaryKey"`
	OrderNumber  int               `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerName string            `json:"customer_name" gorm:"not null"`
	Method       FulfillmentMethod `json:"delivery_method" gorm:"not null"`
	Address      string            `json:"address"`
	DistanceKm   float64           `json:"distance"`
	DeliveryCost int64             `json:"delivery_cost"`
	Lines        []OrderLine       `json:"items" gorm:"foreignKey:OrderID"`
	TotalItems   int               `json:"total_items" gorm:"not null"`
	Subtotal     float64           `json:"subtotal" gorm:"not null"`
	CreatedAt    time.Time         `json:"order_date"`
}
