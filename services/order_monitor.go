package services

import (
	"time"

	"github.com/hitesh009911/grub-stack-00-sub001/client"
	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
)

const orderFetchFallbackError = "Failed to fetch order status"

// OrderSnapshot is the monitor state handed to the UI layer: cached
// data, the in-flight flag, and the last fetch error if any.
type OrderSnapshot struct {
	Order       *models.Order  `json:"order,omitempty"`
	Orders      []models.Order `json:"orders,omitempty"`
	Loading     bool           `json:"loading"`
	Error       string         `json:"error,omitempty"`
	LastUpdated time.Time      `json:"last_updated"`
}

// OrderMonitor polls the order service for one order or for a user's
// order list. Fetches replace the cache wholesale; a failed fetch
// keeps the previous data (stale-but-valid) and records an error
// string that the next successful fetch clears.
//
// Overlapping fetches are resolved by a per-monitor sequence number:
// a response is applied only when it belongs to the latest issued
// fetch, so last-issued wins rather than last-resolved.
type OrderMonitor struct {
	client *client.OrderClient

	Interval    time.Duration
	AutoRefresh bool
	StopChan    chan struct{}

	state monitorState

	orderID uint // single-entity mode
	userID  uint // collection mode

	order  *models.Order
	orders []models.Order
}

func NewOrderMonitor(c *client.OrderClient, interval time.Duration) *OrderMonitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &OrderMonitor{
		client:      c,
		Interval:    interval,
		AutoRefresh: true,
		StopChan:    make(chan struct{}),
	}
}

// WatchOrder switches the monitor to single-order mode and refetches
// immediately. Any in-flight fetch for the old key is discarded.
func (om *OrderMonitor) WatchOrder(orderID uint) {
	om.state.mu.Lock()
	om.orderID = orderID
	om.userID = 0
	om.order = nil
	om.orders = nil
	om.state.invalidateLocked()
	om.state.mu.Unlock()

	go om.poll()
}

// WatchUser switches the monitor to collection mode for one user.
func (om *OrderMonitor) WatchUser(userID uint) {
	om.state.mu.Lock()
	om.userID = userID
	om.orderID = 0
	om.order = nil
	om.orders = nil
	om.state.invalidateLocked()
	om.state.mu.Unlock()

	go om.poll()
}

// Start performs one immediate fetch and, when AutoRefresh is set,
// keeps refetching on the interval until Stop.
func (om *OrderMonitor) Start() {
	go om.poll()

	if !om.AutoRefresh {
		return
	}

	go func() {
		ticker := time.NewTicker(om.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				go om.poll()
			case <-om.StopChan:
				return
			}
		}
	}()
}

// Stop tears down the ticker and invalidates in-flight fetches so a
// late response cannot touch state after teardown.
func (om *OrderMonitor) Stop() {
	close(om.StopChan)
	om.state.mu.Lock()
	om.state.invalidateLocked()
	om.state.mu.Unlock()
}

// Refresh runs the fetch path on demand, through the same loading and
// error slots as the scheduled polls.
func (om *OrderMonitor) Refresh() {
	om.poll()
}

func (om *OrderMonitor) poll() {
	om.state.mu.Lock()
	orderID, userID := om.orderID, om.userID
	if orderID == 0 && userID == 0 {
		om.state.mu.Unlock()
		return
	}
	seq := om.state.issueLocked()
	om.state.mu.Unlock()

	if orderID != 0 {
		order, err := om.client.GetOrder(orderID)
		om.apply(seq, err, func() { om.order = order })
		return
	}

	orders, err := om.client.ListOrdersForUser(userID)
	om.apply(seq, err, func() { om.orders = orders })
}

// apply commits a fetch result unless a newer fetch has been issued
// since this one started.
func (om *OrderMonitor) apply(seq uint64, err error, commit func()) {
	om.state.mu.Lock()
	defer om.state.mu.Unlock()

	if !om.state.currentLocked(seq) {
		return
	}

	om.state.loading = false
	if err != nil {
		om.state.errMsg = errorMessage(err, orderFetchFallbackError)
		utils.ErrorLogger.Printf("Order poll failed: %v", err)
		return
	}

	commit()
	om.state.errMsg = ""
	om.state.lastUpdated = time.Now()
}

// WatchingOrder returns the order key, zero in collection mode.
func (om *OrderMonitor) WatchingOrder() uint {
	om.state.mu.Lock()
	defer om.state.mu.Unlock()
	return om.orderID
}

// WatchingUser returns the collection key, zero in single mode.
func (om *OrderMonitor) WatchingUser() uint {
	om.state.mu.Lock()
	defer om.state.mu.Unlock()
	return om.userID
}

// Snapshot returns the current cached state.
func (om *OrderMonitor) Snapshot() OrderSnapshot {
	om.state.mu.Lock()
	defer om.state.mu.Unlock()

	snap := OrderSnapshot{
		Loading:     om.state.loading,
		Error:       om.state.errMsg,
		LastUpdated: om.state.lastUpdated,
	}
	if om.order != nil {
		order := *om.order
		snap.Order = &order
	}
	if om.orders != nil {
		snap.Orders = make([]models.Order, len(om.orders))
		copy(snap.Orders, om.orders)
	}
	return snap
}
