package domain

import "time"

// Order lifecycle states as shown on the admin dashboard.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known lifecycle states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderProduct is the product snapshot embedded in an order. Orders keep
// their own copy so later catalog changes never rewrite order history.
type OrderProduct struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Order is a customer order held in the in-memory order book. There is no
// fulfillment backend; status changes only through the admin dashboard.
type Order struct {
	ID              string       `json:"id"`
	OrderNumber     string       `json:"order_number"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerAddress string       `json:"customer_address"`
	Product         OrderProduct `json:"product"`
	Quantity        int          `json:"quantity"`
	Total           float64      `json:"total"`
	Status          string       `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
}

// OrderTicket is returned immediately when an order is submitted. The order
// itself lands in the order book once the simulated processing completes.
type OrderTicket struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}
