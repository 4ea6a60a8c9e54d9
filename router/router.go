package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hitesh009911/grub-stack-00-sub001/client"
	"github.com/hitesh009911/grub-stack-00-sub001/controllers"
	"github.com/hitesh009911/grub-stack-00-sub001/middlewares"
	"github.com/hitesh009911/grub-stack-00-sub001/services"
	"github.com/hitesh009911/grub-stack-00-sub001/stores"
)

// Deps is everything the local HTTP surface is built over.
type Deps struct {
	Sessions      *stores.SessionStore
	Cart          *stores.CartStore
	Notifications *stores.NotificationStore
	OrderMonitor  *services.OrderMonitor
	DelivMonitor  *services.DeliveryMonitor
	OrderAPI      *client.OrderClient
	DeliveryAPI   *client.DeliveryClient
	Limiter       *middlewares.RateLimiter
	CORSOrigin    string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares(deps.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if deps.Limiter != nil {
		r.Use(deps.Limiter.RateLimit())
	}

	sessionCtrl := controllers.NewSessionController(deps.Sessions)
	cartCtrl := controllers.NewCartController(deps.Cart)
	notifCtrl := controllers.NewNotificationController(deps.Notifications)
	trackCtrl := controllers.NewTrackingController(
		deps.Sessions, deps.OrderMonitor, deps.DelivMonitor,
		deps.OrderAPI, deps.DeliveryAPI,
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", sessionCtrl.Login)
	r.POST("/auth/register", sessionCtrl.Register)
	r.GET("/restaurants", trackCtrl.ListRestaurants)

	auth := r.Group("/", middlewares.AuthMiddleware())
	{
		auth.POST("/auth/logout", sessionCtrl.Logout)
		auth.GET("/auth/profile", sessionCtrl.GetProfile)
		auth.PATCH("/auth/profile", sessionCtrl.UpdateProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:item_id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:item_id", cartCtrl.DeleteItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.GET("/notifications", notifCtrl.GetAllNotifications)
		auth.POST("/notifications", notifCtrl.CreateNotification)
		auth.POST("/notifications/read-all", notifCtrl.MarkAllRead)
		auth.POST("/notifications/:notif_id/read", notifCtrl.MarkRead)
		auth.DELETE("/notifications/read", notifCtrl.ClearRead)
		auth.DELETE("/notifications/:notif_id", notifCtrl.DeleteNotification)
		auth.DELETE("/notifications", notifCtrl.ClearAll)

		auth.GET("/track/orders", trackCtrl.TrackMyOrders)
		auth.GET("/track/orders/:order_id", trackCtrl.TrackOrder)
		auth.POST("/track/orders/refresh", trackCtrl.RefreshOrders)
		auth.GET("/track/deliveries", trackCtrl.TrackMyDeliveries)
		auth.GET("/track/deliveries/order/:order_id", trackCtrl.TrackDeliveryByOrder)
		auth.POST("/track/deliveries/refresh", trackCtrl.RefreshDeliveries)

		auth.GET("/track/deliveries/all",
			middlewares.RequireRole("delivery"), trackCtrl.TrackAllDeliveries)
		auth.POST("/deliveries",
			middlewares.RequireRole("restaurant"), trackCtrl.CreateDelivery)
		auth.PUT("/deliveries/:delivery_id/status",
			middlewares.RequireRole("delivery", "restaurant"), trackCtrl.UpdateDeliveryStatus)
		auth.POST("/deliveries/:delivery_id/assign",
			middlewares.RequireRole(), trackCtrl.AssignDelivery)
		auth.POST("/deliveries/:delivery_id/auto-assign",
			middlewares.RequireRole("restaurant"), trackCtrl.AutoAssignDelivery)
	}

	return r
}
