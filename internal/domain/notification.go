package domain

import "time"

// Notification types surfaced on the admin dashboard.
const (
	NotificationOrder    = "order"
	NotificationCustomer = "customer"
	NotificationSystem   = "system"
)

// AdminNotification is an entry in the admin-facing event log. ID and
// CreatedAt are assigned by the store on insertion and never change.
type AdminNotification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
