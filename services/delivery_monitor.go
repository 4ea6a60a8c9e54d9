package services

import (
	"time"

	"github.com/hitesh009911/grub-stack-00-sub001/client"
	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
)

const deliveryFetchFallbackError = "Failed to fetch delivery status"

type deliveryWatchMode int

const (
	watchNone deliveryWatchMode = iota
	watchByOrder
	watchByCustomer
	watchAll
)

// DeliverySnapshot mirrors OrderSnapshot for deliveries.
type DeliverySnapshot struct {
	Delivery    *models.Delivery  `json:"delivery,omitempty"`
	Deliveries  []models.Delivery `json:"deliveries,omitempty"`
	Loading     bool              `json:"loading"`
	Error       string            `json:"error,omitempty"`
	LastUpdated time.Time         `json:"last_updated"`
}

// DeliveryMonitor polls the delivery service for the delivery of one
// order, a customer's delivery list, or the full list (delivery-agent
// view). Same replace-wholesale, stale-on-error, last-issued-wins
// semantics as OrderMonitor.
type DeliveryMonitor struct {
	client *client.DeliveryClient

	Interval    time.Duration
	AutoRefresh bool
	StopChan    chan struct{}

	state monitorState

	mode       deliveryWatchMode
	orderID    uint
	customerID uint

	delivery   *models.Delivery
	deliveries []models.Delivery
}

func NewDeliveryMonitor(c *client.DeliveryClient, interval time.Duration) *DeliveryMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &DeliveryMonitor{
		client:      c,
		Interval:    interval,
		AutoRefresh: true,
		StopChan:    make(chan struct{}),
	}
}

// WatchOrder tracks the single delivery belonging to one order.
func (dm *DeliveryMonitor) WatchOrder(orderID uint) {
	dm.rewatch(watchByOrder, orderID, 0)
}

// WatchCustomer tracks all deliveries of one customer.
func (dm *DeliveryMonitor) WatchCustomer(customerID uint) {
	dm.rewatch(watchByCustomer, 0, customerID)
}

// WatchAll tracks every delivery; the delivery-agent dashboard view.
func (dm *DeliveryMonitor) WatchAll() {
	dm.rewatch(watchAll, 0, 0)
}

func (dm *DeliveryMonitor) rewatch(mode deliveryWatchMode, orderID, customerID uint) {
	dm.state.mu.Lock()
	dm.mode = mode
	dm.orderID = orderID
	dm.customerID = customerID
	dm.delivery = nil
	dm.deliveries = nil
	dm.state.invalidateLocked()
	dm.state.mu.Unlock()

	go dm.poll()
}

func (dm *DeliveryMonitor) Start() {
	go dm.poll()

	if !dm.AutoRefresh {
		return
	}

	go func() {
		ticker := time.NewTicker(dm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				go dm.poll()
			case <-dm.StopChan:
				return
			}
		}
	}()
}

func (dm *DeliveryMonitor) Stop() {
	close(dm.StopChan)
	dm.state.mu.Lock()
	dm.state.invalidateLocked()
	dm.state.mu.Unlock()
}

func (dm *DeliveryMonitor) Refresh() {
	dm.poll()
}

func (dm *DeliveryMonitor) poll() {
	dm.state.mu.Lock()
	mode, orderID, customerID := dm.mode, dm.orderID, dm.customerID
	if mode == watchNone {
		dm.state.mu.Unlock()
		return
	}
	seq := dm.state.issueLocked()
	dm.state.mu.Unlock()

	switch mode {
	case watchByOrder:
		delivery, err := dm.client.GetByOrder(orderID)
		dm.apply(seq, err, func() { dm.delivery = delivery })
	case watchByCustomer:
		deliveries, err := dm.client.ListByCustomer(customerID)
		dm.apply(seq, err, func() { dm.deliveries = deliveries })
	case watchAll:
		deliveries, err := dm.client.List()
		dm.apply(seq, err, func() { dm.deliveries = deliveries })
	}
}

func (dm *DeliveryMonitor) apply(seq uint64, err error, commit func()) {
	dm.state.mu.Lock()
	defer dm.state.mu.Unlock()

	if !dm.state.currentLocked(seq) {
		return
	}

	dm.state.loading = false
	if err != nil {
		dm.state.errMsg = errorMessage(err, deliveryFetchFallbackError)
		utils.ErrorLogger.Printf("Delivery poll failed: %v", err)
		return
	}

	commit()
	dm.state.errMsg = ""
	dm.state.lastUpdated = time.Now()
}

func (dm *DeliveryMonitor) WatchingOrder() uint {
	dm.state.mu.Lock()
	defer dm.state.mu.Unlock()
	if dm.mode != watchByOrder {
		return 0
	}
	return dm.orderID
}

func (dm *DeliveryMonitor) WatchingCustomer() uint {
	dm.state.mu.Lock()
	defer dm.state.mu.Unlock()
	if dm.mode != watchByCustomer {
		return 0
	}
	return dm.customerID
}

func (dm *DeliveryMonitor) WatchingEverything() bool {
	dm.state.mu.Lock()
	defer dm.state.mu.Unlock()
	return dm.mode == watchAll
}

func (dm *DeliveryMonitor) Snapshot() DeliverySnapshot {
	dm.state.mu.Lock()
	defer dm.state.mu.Unlock()

	snap := DeliverySnapshot{
		Loading:     dm.state.loading,
		Error:       dm.state.errMsg,
		LastUpdated: dm.state.lastUpdated,
	}
	if dm.delivery != nil {
		delivery := *dm.delivery
		snap.Delivery = &delivery
	}
	if dm.deliveries != nil {
		snap.Deliveries = make([]models.Delivery, len(dm.deliveries))
		copy(snap.Deliveries, dm.deliveries)
	}
	return snap
}
