package domain

import "time"

// Order lifecycle states as reported by the order backend.
const (
	OrderPlaced     = "PLACED"
	OrderProcessing = "PROCESSING"
	OrderShipped    = "SHIPPED"
	OrderDelivered  = "DELIVERED"
	OrderCancelled  = "CANCELLED"
)

// Order is an order record returned by the order backend.
type Order struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Phone           string    `json:"phone"`
	ShippingAddress string    `json:"shippingAddress"`
	Status          string    `json:"status"`
	TotalAmount     float64   `json:"totalAmount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// OrderItem is one line of an order-creation request, keyed by the backend's
// medicine identifier.
type OrderItem struct {
	MedicineID string `json:"medicineId"`
	Quantity   int    `json:"quantity"`
}
