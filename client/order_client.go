package client

import (
	"fmt"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
)

// OrderClient wraps the order service.
type OrderClient struct {
	*Client
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{Client: New(baseURL)}
}

func (oc *OrderClient) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := oc.getJSON(fmt.Sprintf("/orders/%d", orderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders fetches every order; the backend exposes no per-user
// listing, so callers filter by UserID client-side.
func (oc *OrderClient) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := oc.getJSON("/orders/all", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrdersForUser filters the full listing down to one user.
func (oc *OrderClient) ListOrdersForUser(userID uint) ([]models.Order, error) {
	orders, err := oc.ListOrders()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (oc *OrderClient) ListRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := oc.getJSON("/restaurants", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}
