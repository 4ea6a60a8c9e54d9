package services

import (
	"strings"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
)

// StatusInfo is the display metadata derived from a status value:
// progress toward completion, a short label, icon and color keys for
// the UI layer, and a one-line description.
type StatusInfo struct {
	Progress    int    `json:"progress"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var orderStatusTable = map[string]StatusInfo{
	models.OrderStatusPending: {
		Progress:    5,
		Label:       "Order Placed",
		Icon:        "clock",
		Color:       "yellow",
		Description: "Order placed, waiting for the restaurant to confirm",
	},
	models.OrderStatusPreparing: {
		Progress:    25,
		Label:       "Preparing",
		Icon:        "chef-hat",
		Color:       "orange",
		Description: "The restaurant is preparing your food",
	},
	models.OrderStatusReady: {
		Progress:    45,
		Label:       "Ready for Pickup",
		Icon:        "package",
		Color:       "blue",
		Description: "Your order is packed and waiting for a rider",
	},
	models.OrderStatusPickedUp: {
		Progress:    65,
		Label:       "Picked Up",
		Icon:        "bike",
		Color:       "indigo",
		Description: "A rider has picked up your order",
	},
	models.OrderStatusInTransit: {
		Progress:    85,
		Label:       "On the Way",
		Icon:        "map-pin",
		Color:       "purple",
		Description: "Your order is on its way to you",
	},
	models.OrderStatusDelivered: {
		Progress:    100,
		Label:       "Delivered",
		Icon:        "check-circle",
		Color:       "green",
		Description: "Your order has been delivered, enjoy",
	},
	models.OrderStatusCancelled: {
		Progress:    0,
		Label:       "Cancelled",
		Icon:        "x-circle",
		Color:       "red",
		Description: "This order was cancelled",
	},
}

var deliveryStatusTable = map[string]StatusInfo{
	models.DeliveryStatusPending: {
		Progress:    5,
		Label:       "Waiting for Rider",
		Icon:        "clock",
		Color:       "yellow",
		Description: "Delivery created, waiting for a rider to be assigned",
	},
	models.DeliveryStatusAssigned: {
		Progress:    30,
		Label:       "Rider Assigned",
		Icon:        "user-check",
		Color:       "orange",
		Description: "A rider is heading to the restaurant",
	},
	models.DeliveryStatusPickedUp: {
		Progress:    55,
		Label:       "Picked Up",
		Icon:        "bike",
		Color:       "indigo",
		Description: "The rider has picked up the order",
	},
	models.DeliveryStatusInTransit: {
		Progress:    80,
		Label:       "On the Way",
		Icon:        "map-pin",
		Color:       "purple",
		Description: "The rider is on the way to the delivery address",
	},
	models.DeliveryStatusDelivered: {
		Progress:    100,
		Label:       "Delivered",
		Icon:        "check-circle",
		Color:       "green",
		Description: "The order has been delivered",
	},
	models.DeliveryStatusCancelled: {
		Progress:    0,
		Label:       "Cancelled",
		Icon:        "x-circle",
		Color:       "red",
		Description: "This delivery was cancelled",
	},
}

// OrderStatusInfo maps an order status to its display entry. Unknown
// or empty input falls back to the PENDING entry, never fails.
func OrderStatusInfo(status string) StatusInfo {
	if info, ok := orderStatusTable[strings.ToUpper(status)]; ok {
		return info
	}
	return orderStatusTable[models.OrderStatusPending]
}

// DeliveryStatusInfo is the delivery-side counterpart of
// OrderStatusInfo, with the same PENDING fallback.
func DeliveryStatusInfo(status string) StatusInfo {
	if info, ok := deliveryStatusTable[strings.ToUpper(status)]; ok {
		return info
	}
	return deliveryStatusTable[models.DeliveryStatusPending]
}

// IsTerminalStatus reports whether a status ends the lifecycle for
// both orders and deliveries.
func IsTerminalStatus(status string) bool {
	switch strings.ToUpper(status) {
	case models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	}
	return false
}
