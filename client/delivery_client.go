package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
)

// DeliveryClient wraps the delivery service. The action endpoints
// (status update, assign, auto-assign) are fire-and-forget: their
// effect is only observed on the next poll.
type DeliveryClient struct {
	*Client
}

func NewDeliveryClient(baseURL string) *DeliveryClient {
	return &DeliveryClient{Client: New(baseURL)}
}

// CreateDeliveryRequest is the body of POST /deliveries.
type CreateDeliveryRequest struct {
	OrderID         uint   `json:"orderId"`
	RestaurantID    uint   `json:"restaurantId"`
	CustomerID      uint   `json:"customerId"`
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress"`
}

func (dc *DeliveryClient) GetByOrder(orderID uint) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := dc.getJSON(fmt.Sprintf("/deliveries/order/%d", orderID), &delivery); err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (dc *DeliveryClient) ListByCustomer(customerID uint) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	if err := dc.getJSON(fmt.Sprintf("/deliveries/customer/%d", customerID), &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (dc *DeliveryClient) List() ([]models.Delivery, error) {
	var deliveries []models.Delivery
	if err := dc.getJSON("/deliveries", &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (dc *DeliveryClient) Create(req CreateDeliveryRequest) error {
	_, err := dc.doJSON(http.MethodPost, "/deliveries", req)
	return err
}

func (dc *DeliveryClient) UpdateStatus(deliveryID uint, status string) error {
	path := fmt.Sprintf("/deliveries/%d/status?status=%s", deliveryID, url.QueryEscape(status))
	_, err := dc.doJSON(http.MethodPut, path, nil)
	return err
}

func (dc *DeliveryClient) Assign(deliveryID, agentID uint) error {
	path := fmt.Sprintf("/deliveries/%d/assign?agentId=%d", deliveryID, agentID)
	_, err := dc.doJSON(http.MethodPost, path, nil)
	return err
}

func (dc *DeliveryClient) AutoAssign(deliveryID uint) error {
	path := fmt.Sprintf("/deliveries/%d/auto-assign", deliveryID)
	_, err := dc.doJSON(http.MethodPost, path, nil)
	return err
}
