package stores

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
	"gorm.io/gorm"
)

// Persisted local-state keys. Each store owns one blob (the
// notification store owns two: the list and the cleared flag).
const (
	StateKeyUser                 = "grubstack_user"
	StateKeyAdmin                = "grubstack_admin"
	StateKeyCart                 = "grubstack_cart"
	StateKeyNotifications        = "grubstack_notifications"
	StateKeyNotificationsCleared = "grubstack_notifications_cleared"
)

// SaveState serializes v and rewrites the blob under key.
func SaveState(db *gorm.DB, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	record := models.StateRecord{
		Key:       key,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}
	return db.Save(&record).Error
}

// LoadState hydrates out from the blob under key. A missing blob is
// not an error. A malformed blob is logged, deleted, and treated as
// missing so the owning store starts empty instead of failing.
func LoadState(db *gorm.DB, key string, out interface{}) (bool, error) {
	var record models.StateRecord
	if err := db.First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(record.Value), out); err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("Malformed state blob for key %s, resetting: %v", key, err)
		}
		DeleteState(db, key)
		return false, nil
	}

	return true, nil
}

// DeleteState drops the blob under key.
func DeleteState(db *gorm.DB, key string) error {
	return db.Delete(&models.StateRecord{}, "key = ?", key).Error
}
