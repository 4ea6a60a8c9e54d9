package stores

import (
	"sync"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
	"gorm.io/gorm"
)

// CartStore holds the pending order's line items. It assumes one
// restaurant per cart but does not enforce it; that guard belongs to
// the calling UI.
type CartStore struct {
	db *gorm.DB

	mu    sync.RWMutex
	items []models.CartItem
}

func NewCartStore(db *gorm.DB) *CartStore {
	cs := &CartStore{db: db}
	var items []models.CartItem
	if ok, err := LoadState(db, StateKeyCart, &items); err == nil && ok {
		cs.items = items
	}
	return cs
}

func (cs *CartStore) persist() {
	if err := SaveState(cs.db, StateKeyCart, cs.items); err != nil {
		utils.ErrorLogger.Printf("Error persisting cart: %v", err)
	}
}

// Add merges by item ID: an item already in the cart gets its
// quantity bumped by one, anything else is appended with quantity 1.
func (cs *CartStore) Add(item models.CartItem) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.items {
		if cs.items[i].ID == item.ID {
			cs.items[i].Quantity++
			cs.persist()
			return
		}
	}

	item.Quantity = 1
	cs.items = append(cs.items, item)
	cs.persist()
}

// UpdateQuantity sets an item's quantity; zero or less removes it.
func (cs *CartStore) UpdateQuantity(itemID uint, quantity int) {
	if quantity <= 0 {
		cs.Remove(itemID)
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.items {
		if cs.items[i].ID == itemID {
			cs.items[i].Quantity = quantity
			break
		}
	}
	cs.persist()
}

func (cs *CartStore) Remove(itemID uint) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	filtered := cs.items[:0]
	for _, item := range cs.items {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	cs.items = filtered
	cs.persist()
}

func (cs *CartStore) Clear() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.items = nil
	cs.persist()
}

func (cs *CartStore) Items() []models.CartItem {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	items := make([]models.CartItem, len(cs.items))
	copy(items, cs.items)
	return items
}

// TotalItems is the sum of quantities, recomputed on every call.
func (cs *CartStore) TotalItems() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	total := 0
	for _, item := range cs.items {
		total += item.Quantity
	}
	return total
}

func (cs *CartStore) TotalPrice() float64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	total := 0.0
	for _, item := range cs.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CurrentRestaurant returns the restaurant the cart belongs to, taken
// from the first item. Zero when the cart is empty.
func (cs *CartStore) CurrentRestaurant() uint {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	if len(cs.items) == 0 {
		return 0
	}
	return cs.items[0].RestaurantID
}
