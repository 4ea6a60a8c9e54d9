package models

import "time"

// StateRecord is one persisted local-state blob. Each store owns a
// distinct namespaced key and rewrites its blob on every mutation.
type StateRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
