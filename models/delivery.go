package models

import "time"

// Delivery statuses as reported by the delivery service.
const (
	DeliveryStatusPending   = "PENDING"
	DeliveryStatusAssigned  = "ASSIGNED"
	DeliveryStatusPickedUp  = "PICKED_UP"
	DeliveryStatusInTransit = "IN_TRANSIT"
	DeliveryStatusDelivered = "DELIVERED"
	DeliveryStatusCancelled = "CANCELLED"
)

// Delivery relates to exactly one Order via OrderID. Same ownership
// model as Order: backend-owned, cached client-side.
type Delivery struct {
	ID                    uint       `json:"id"`
	OrderID               uint       `json:"orderId"`
	RestaurantID          uint       `json:"restaurantId"`
	CustomerID            uint       `json:"customerId"`
	Status                string     `json:"status"`
	PickupAddress         string     `json:"pickupAddress"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	CreatedAt             time.Time  `json:"createdAt"`
	AssignedAt            *time.Time `json:"assignedAt,omitempty"`
	PickedUpAt            *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt           *time.Time `json:"deliveredAt,omitempty"`
	EstimatedDeliveryTime time.Time  `json:"estimatedDeliveryTime"`
	Agent                 *Agent     `json:"agent,omitempty"`
}

// Agent is the delivery agent assigned to a delivery, if any.
type Agent struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
