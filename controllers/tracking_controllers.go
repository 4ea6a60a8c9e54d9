package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hitesh009911/grub-stack-00-sub001/client"
	"github.com/hitesh009911/grub-stack-00-sub001/services"
	"github.com/hitesh009911/grub-stack-00-sub001/stores"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
)

// TrackingController exposes the cached monitor state to the UI.
// Tracking a different order or customer re-keys the shared monitor,
// which refetches immediately; everything else is served from cache.
type TrackingController struct {
	Sessions  *stores.SessionStore
	Orders    *services.OrderMonitor
	Delivs    *services.DeliveryMonitor
	OrderAPI  *client.OrderClient
	DelivsAPI *client.DeliveryClient
}

func NewTrackingController(
	sessions *stores.SessionStore,
	orders *services.OrderMonitor,
	delivs *services.DeliveryMonitor,
	orderAPI *client.OrderClient,
	delivsAPI *client.DeliveryClient,
) *TrackingController {
	return &TrackingController{
		Sessions:  sessions,
		Orders:    orders,
		Delivs:    delivs,
		OrderAPI:  orderAPI,
		DelivsAPI: delivsAPI,
	}
}

// TrackOrder -> cached order plus its derived display state.
func (tc *TrackingController) TrackOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if tc.Orders.WatchingOrder() != uint(orderID) {
		tc.Orders.WatchOrder(uint(orderID))
	}

	snap := tc.Orders.Snapshot()
	payload := gin.H{"snapshot": snap}
	if snap.Order != nil {
		payload["display"] = services.OrderStatusInfo(snap.Order.Status)
		payload["terminal"] = services.IsTerminalStatus(snap.Order.Status)
		payload["total_display"] = utils.FormatPriceCents(snap.Order.TotalCents)
	}
	utils.RespondJSON(c, http.StatusOK, "Order tracking", payload)
}

// TrackMyOrders -> the session user's order list.
func (tc *TrackingController) TrackMyOrders(c *gin.Context) {
	user := tc.Sessions.Current()
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	if tc.Orders.WatchingUser() != user.ID {
		tc.Orders.WatchUser(user.ID)
	}

	utils.RespondJSON(c, http.StatusOK, "Order list tracking", tc.Orders.Snapshot())
}

func (tc *TrackingController) RefreshOrders(c *gin.Context) {
	tc.Orders.Refresh()
	utils.RespondJSON(c, http.StatusOK, "Orders refreshed", tc.Orders.Snapshot())
}

// TrackDeliveryByOrder -> the delivery belonging to one order.
func (tc *TrackingController) TrackDeliveryByOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if tc.Delivs.WatchingOrder() != uint(orderID) {
		tc.Delivs.WatchOrder(uint(orderID))
	}

	snap := tc.Delivs.Snapshot()
	payload := gin.H{"snapshot": snap}
	if snap.Delivery != nil {
		payload["display"] = services.DeliveryStatusInfo(snap.Delivery.Status)
		payload["terminal"] = services.IsTerminalStatus(snap.Delivery.Status)
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery tracking", payload)
}

// TrackMyDeliveries -> the session customer's delivery list.
func (tc *TrackingController) TrackMyDeliveries(c *gin.Context) {
	user := tc.Sessions.Current()
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	if tc.Delivs.WatchingCustomer() != user.ID {
		tc.Delivs.WatchCustomer(user.ID)
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery list tracking", tc.Delivs.Snapshot())
}

// TrackAllDeliveries -> agent/admin dashboard over every delivery.
func (tc *TrackingController) TrackAllDeliveries(c *gin.Context) {
	if !tc.Delivs.WatchingEverything() {
		tc.Delivs.WatchAll()
	}
	utils.RespondJSON(c, http.StatusOK, "All deliveries", tc.Delivs.Snapshot())
}

func (tc *TrackingController) RefreshDeliveries(c *gin.Context) {
	tc.Delivs.Refresh()
	utils.RespondJSON(c, http.StatusOK, "Deliveries refreshed", tc.Delivs.Snapshot())
}

// CreateDelivery -> fire-and-forget; the new delivery shows up on the
// next poll.
func (tc *TrackingController) CreateDelivery(c *gin.Context) {
	var req client.CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.DelivsAPI.Create(req); err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Delivery requested", nil)
}

func (tc *TrackingController) UpdateDeliveryStatus(c *gin.Context) {
	deliveryID, err := strconv.Atoi(c.Param("delivery_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := c.Query("status")
	if status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status query parameter required"))
		return
	}

	if err := tc.DelivsAPI.UpdateStatus(uint(deliveryID), status); err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Status update requested", nil)
}

func (tc *TrackingController) AssignDelivery(c *gin.Context) {
	deliveryID, err := strconv.Atoi(c.Param("delivery_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	agentID, err := strconv.Atoi(c.Query("agentId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("agentId query parameter required"))
		return
	}

	if err := tc.DelivsAPI.Assign(uint(deliveryID), uint(agentID)); err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Assignment requested", nil)
}

func (tc *TrackingController) AutoAssignDelivery(c *gin.Context) {
	deliveryID, err := strconv.Atoi(c.Param("delivery_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.DelivsAPI.AutoAssign(uint(deliveryID)); err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Auto-assignment requested", nil)
}

// ListRestaurants -> proxied straight to the order service, no cache.
func (tc *TrackingController) ListRestaurants(c *gin.Context) {
	restaurants, err := tc.OrderAPI.ListRestaurants()
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurants", restaurants)
}
