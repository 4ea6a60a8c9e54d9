package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/hitesh009911/grub-stack-00-sub001/controllers"
	"github.com/hitesh009911/grub-stack-00-sub001/middlewares"
	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/stores"
)

func setupNotificationRouter(db *gorm.DB) (*gin.Engine, *stores.NotificationStore) {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	store := stores.NewNotificationStore(db)
	notifCtrl := controllers.NewNotificationController(store)

	authed := router.Group("/", middlewares.AuthMiddleware())
	authed.GET("/notifications", notifCtrl.GetAllNotifications)
	authed.POST("/notifications", notifCtrl.CreateNotification)
	authed.POST("/notifications/read-all", notifCtrl.MarkAllRead)
	authed.POST("/notifications/:notif_id/read", notifCtrl.MarkRead)
	authed.DELETE("/notifications/read", notifCtrl.ClearRead)
	authed.DELETE("/notifications/:notif_id", notifCtrl.DeleteNotification)
	authed.DELETE("/notifications", notifCtrl.ClearAll)
	return router, store
}

type notifListResponse struct {
	Data struct {
		Notifications []models.Notification `json:"notifications"`
		UnreadCount   int                   `json:"unread_count"`
		Cleared       bool                  `json:"cleared"`
	} `json:"data"`
}

func TestNotificationLifecycle(t *testing.T) {
	db := setupTestDBForCart(t)
	router, _ := setupNotificationRouter(db)

	// Create
	w := doJSON(t, router, "POST", "/notifications", map[string]string{
		"title":   "Order update",
		"message": "Your order is being prepared",
		"type":    "info",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Notification `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Data.ID)
	assert.False(t, created.Data.Read)

	// List -> one unread
	w = doJSON(t, router, "GET", "/notifications", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list notifListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data.Notifications, 1)
	assert.Equal(t, 1, list.Data.UnreadCount)

	// Mark read
	w = doJSON(t, router, "POST", "/notifications/"+created.Data.ID+"/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/notifications", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Data.UnreadCount)

	// Delete
	w = doJSON(t, router, "DELETE", "/notifications/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotificationClearAllOptsOut(t *testing.T) {
	db := setupTestDBForCart(t)
	router, store := setupNotificationRouter(db)

	w := doJSON(t, router, "POST", "/notifications", map[string]string{
		"title": "T", "message": "M",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// ClearAll empties and permanently dismisses
	w = doJSON(t, router, "DELETE", "/notifications", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// A later create is silently ignored
	w = doJSON(t, router, "POST", "/notifications", map[string]string{
		"title": "T2", "message": "M2",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var list notifListResponse
	w = doJSON(t, router, "GET", "/notifications", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Data.Notifications)
	assert.True(t, list.Data.Cleared)

	// No route lifts the flag; only the store-level reset does.
	store.ResetCleared()
	w = doJSON(t, router, "POST", "/notifications", map[string]string{
		"title": "T3", "message": "M3",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNotificationClearReadKeepsUnread(t *testing.T) {
	db := setupTestDBForCart(t)
	router, _ := setupNotificationRouter(db)

	w := doJSON(t, router, "POST", "/notifications", map[string]string{"title": "A", "message": "read me"})
	var created struct {
		Data models.Notification `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	doJSON(t, router, "POST", "/notifications", map[string]string{"title": "B", "message": "keep me"})

	doJSON(t, router, "POST", "/notifications/"+created.Data.ID+"/read", nil)
	w = doJSON(t, router, "DELETE", "/notifications/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list notifListResponse
	w = doJSON(t, router, "GET", "/notifications", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data.Notifications, 1)
	assert.Equal(t, "B", list.Data.Notifications[0].Title)
	assert.False(t, list.Data.Cleared)
}
