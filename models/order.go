package models

import "time"

// Order statuses as reported by the order service. Forward-moving;
// CANCELLED is reachable from any non-terminal state.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusPickedUp  = "PICKED_UP"
	OrderStatusInTransit = "IN_TRANSIT"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is owned by the order service; the client only holds a
// read-only cached copy refreshed by polling.
type Order struct {
	ID           uint        `json:"id"`
	RestaurantID uint        `json:"restaurantId"`
	UserID       uint        `json:"userId"`
	Status       string      `json:"status"`
	TotalCents   int64       `json:"totalCents"`
	CreatedAt    time.Time   `json:"createdAt"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	ID         uint  `json:"id"`
	MenuItemID uint  `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"priceCents"`
}
