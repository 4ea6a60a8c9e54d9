package models

// CartItem is one line of the pending order. All items in a cart are
// expected to share one RestaurantID; the store does not enforce this,
// the calling UI does.
type CartItem struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	Quantity       int               `json:"quantity"`
	Image          string            `json:"image"`
	RestaurantID   uint              `json:"restaurantId"`
	RestaurantName string            `json:"restaurantName"`
	Category       string            `json:"category"`
	Description    string            `json:"description,omitempty"`
	Customizations map[string]string `json:"customizations,omitempty"`
}
