package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/stores"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
)

type NotificationController struct {
	Notifications *stores.NotificationStore
}

func NewNotificationController(notifications *stores.NotificationStore) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All notifications", gin.H{
		"notifications": nc.Notifications.Items(),
		"unread_count":  nc.Notifications.UnreadCount(),
		"cleared":       nc.Notifications.Cleared(),
	})
}

// CreateNotification -> a no-op while the store is in its
// permanently-dismissed state.
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var body struct {
		Title     string `json:"title" binding:"required"`
		Message   string `json:"message" binding:"required"`
		Type      string `json:"type"`
		ActionURL string `json:"action_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Type == "" {
		body.Type = models.NotificationInfo
	}

	notif := nc.Notifications.Add(body.Title, body.Message, body.Type, body.ActionURL)
	if notif == nil {
		utils.RespondJSON(c, http.StatusOK, "Notifications are dismissed", nil)
		return
	}

	utils.InfoLogger.Printf("Notification created: %v", notif.Message)
	utils.RespondJSON(c, http.StatusCreated, "Notification created", notif)
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	id := c.Param("notif_id")
	nc.Notifications.MarkRead(id)
	utils.RespondJSON(c, http.StatusOK, "Notification read", gin.H{
		"notif_id":     id,
		"unread_count": nc.Notifications.UnreadCount(),
	})
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	nc.Notifications.MarkAllRead()
	utils.RespondJSON(c, http.StatusOK, "All notifications read", gin.H{
		"unread_count": nc.Notifications.UnreadCount(),
	})
}

func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id := c.Param("notif_id")
	nc.Notifications.Remove(id)
	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": id})
}

// ClearAll -> empties the list and permanently dismisses future
// notifications. No route lifts the flag again.
func (nc *NotificationController) ClearAll(c *gin.Context) {
	nc.Notifications.ClearAll()
	utils.RespondJSON(c, http.StatusOK, "Notifications cleared", nil)
}

func (nc *NotificationController) ClearRead(c *gin.Context) {
	nc.Notifications.ClearRead()
	utils.RespondJSON(c, http.StatusOK, "Read notifications cleared", gin.H{
		"notifications": nc.Notifications.Items(),
	})
}
