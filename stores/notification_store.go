package stores

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
	"gorm.io/gorm"
)

const (
	// How long a read notification survives before decay removes it.
	notificationRetention = 5 * time.Minute
	defaultDecayInterval  = 60 * time.Second
)

// NotificationStore is the process-wide alert list: most-recent-first,
// persisted on every change, with background decay of read entries.
//
// ClearAll sets a persistent opt-out flag that suppresses all future
// Add calls until the flag is externally reset. There is deliberately
// no route that resets it; see ResetCleared.
type NotificationStore struct {
	db *gorm.DB

	mu      sync.Mutex
	items   []models.Notification
	cleared bool

	StopChan chan struct{}
	Interval time.Duration
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	ns := &NotificationStore{
		db:       db,
		StopChan: make(chan struct{}),
		Interval: defaultDecayInterval,
	}

	// The opt-out flag wins: when it was persisted, any prior list is
	// skipped and the store starts empty.
	var cleared bool
	if ok, err := LoadState(db, StateKeyNotificationsCleared, &cleared); err == nil && ok && cleared {
		ns.cleared = true
		return ns
	}

	var items []models.Notification
	if ok, err := LoadState(db, StateKeyNotifications, &items); err == nil && ok {
		ns.items = items
	}
	return ns
}

func (ns *NotificationStore) persist() {
	if err := SaveState(ns.db, StateKeyNotifications, ns.items); err != nil {
		utils.ErrorLogger.Printf("Error persisting notifications: %v", err)
	}
}

// Add assigns an id and timestamp, marks the entry unread and prepends
// it. No-op while the opt-out flag is set.
func (ns *NotificationStore) Add(title, message, notifType, actionURL string) *models.Notification {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if ns.cleared {
		return nil
	}

	notif := models.Notification{
		ID:        fmt.Sprintf("%d-%04d", time.Now().UnixNano(), rand.Intn(10000)),
		Title:     title,
		Message:   message,
		Type:      notifType,
		Timestamp: time.Now(),
		Read:      false,
		ActionURL: actionURL,
	}

	ns.items = append([]models.Notification{notif}, ns.items...)
	ns.persist()
	return &notif
}

// MarkRead is idempotent; unknown ids are ignored.
func (ns *NotificationStore) MarkRead(id string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	for i := range ns.items {
		if ns.items[i].ID == id {
			ns.items[i].Read = true
			break
		}
	}
	ns.persist()
}

func (ns *NotificationStore) MarkAllRead() {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	for i := range ns.items {
		ns.items[i].Read = true
	}
	ns.persist()
}

// Remove deletes one entry regardless of read state.
func (ns *NotificationStore) Remove(id string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	filtered := ns.items[:0]
	for _, n := range ns.items {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	ns.items = filtered
	ns.persist()
}

// ClearAll empties the list and sets the persistent opt-out flag.
// After this, Add is a no-op until ResetCleared.
func (ns *NotificationStore) ClearAll() {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	ns.items = nil
	ns.cleared = true
	ns.persist()
	if err := SaveState(ns.db, StateKeyNotificationsCleared, true); err != nil {
		utils.ErrorLogger.Printf("Error persisting notification opt-out flag: %v", err)
	}
}

// ClearRead deletes read entries only; the opt-out flag is untouched.
func (ns *NotificationStore) ClearRead() {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	filtered := ns.items[:0]
	for _, n := range ns.items {
		if !n.Read {
			filtered = append(filtered, n)
		}
	}
	ns.items = filtered
	ns.persist()
}

// ResetCleared lifts the opt-out flag. Nothing in the product calls
// this; it exists for external administration only.
func (ns *NotificationStore) ResetCleared() {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	ns.cleared = false
	DeleteState(ns.db, StateKeyNotificationsCleared)
}

func (ns *NotificationStore) Items() []models.Notification {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	items := make([]models.Notification, len(ns.items))
	copy(items, ns.items)
	return items
}

// UnreadCount is derived on every call, never cached.
func (ns *NotificationStore) UnreadCount() int {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	count := 0
	for _, n := range ns.items {
		if !n.Read {
			count++
		}
	}
	return count
}

func (ns *NotificationStore) Cleared() bool {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return ns.cleared
}

// StartDecay runs the background decay tick until Stop is called.
func (ns *NotificationStore) StartDecay() {
	go func() {
		ticker := time.NewTicker(ns.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ns.decay()
			case <-ns.StopChan:
				return
			}
		}
	}()
}

func (ns *NotificationStore) Stop() {
	close(ns.StopChan)
}

// decay removes read entries older than the retention window. Unread
// entries are never auto-removed. Suspended while opted out.
func (ns *NotificationStore) decay() {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if ns.cleared {
		return
	}

	cutoff := time.Now().Add(-notificationRetention)
	filtered := ns.items[:0]
	removed := 0
	for _, n := range ns.items {
		if n.Read && n.Timestamp.Before(cutoff) {
			removed++
			continue
		}
		filtered = append(filtered, n)
	}

	if removed > 0 {
		ns.items = filtered
		ns.persist()
		utils.InfoLogger.Printf("Decayed %d read notifications", removed)
	}
}
