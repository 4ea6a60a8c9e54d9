package config

import (
	"os"
	"strconv"
	"time"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds everything the client needs from the environment:
// backend locations, poll intervals and the local listen port.
type Config struct {
	AuthBaseURL     string
	OrderBaseURL    string
	DeliveryBaseURL string

	OrderPollInterval    time.Duration
	DeliveryPollInterval time.Duration

	Port       string
	StatePath  string
	CORSOrigin string
}

func Load() *Config {
	return &Config{
		AuthBaseURL:          getEnv("AUTH_BASE_URL", "http://localhost:8081"),
		OrderBaseURL:         getEnv("ORDER_BASE_URL", "http://localhost:8082"),
		DeliveryBaseURL:      getEnv("DELIVERY_BASE_URL", "http://localhost:8083"),
		OrderPollInterval:    getEnvDuration("ORDER_POLL_INTERVAL_MS", 5000),
		DeliveryPollInterval: getEnvDuration("DELIVERY_POLL_INTERVAL_MS", 30000),
		Port:                 getEnv("PORT", "8080"),
		StatePath:            getEnv("STATE_DB_PATH", "grubstack_state.db"),
		CORSOrigin:           getEnv("CORS_ALLOW_ORIGIN", "http://127.0.0.1:5500"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallbackMs int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallbackMs) * time.Millisecond
}

// InitDB opens the local sqlite state database and migrates the
// state blob table.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.StateRecord{}); err != nil {
		return nil, err
	}

	return db, nil
}
