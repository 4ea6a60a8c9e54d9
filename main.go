package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hitesh009911/grub-stack-00-sub001/client"
	"github.com/hitesh009911/grub-stack-00-sub001/config"
	"github.com/hitesh009911/grub-stack-00-sub001/middlewares"
	"github.com/hitesh009911/grub-stack-00-sub001/router"
	"github.com/hitesh009911/grub-stack-00-sub001/services"
	"github.com/hitesh009911/grub-stack-00-sub001/stores"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg.StatePath)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open local state database: %v", err)
	}
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Backend clients
	authClient := client.NewAuthClient(cfg.AuthBaseURL)
	orderClient := client.NewOrderClient(cfg.OrderBaseURL)
	deliveryClient := client.NewDeliveryClient(cfg.DeliveryBaseURL)

	// Stores hydrate from the persisted blobs
	sessions := stores.NewSessionStore(db, authClient)
	cart := stores.NewCartStore(db)
	notifications := stores.NewNotificationStore(db)
	notifications.StartDecay()
	defer notifications.Stop()

	// Status monitors
	orderMonitor := services.NewOrderMonitor(orderClient, cfg.OrderPollInterval)
	deliveryMonitor := services.NewDeliveryMonitor(deliveryClient, cfg.DeliveryPollInterval)

	if user := sessions.Current(); user != nil {
		orderMonitor.WatchUser(user.ID)
		deliveryMonitor.WatchCustomer(user.ID)
		utils.InfoLogger.Printf("Restored session for %s (role=%s)", user.Email, user.Role)
	}

	orderMonitor.Start()
	defer orderMonitor.Stop()
	deliveryMonitor.Start()
	defer deliveryMonitor.Stop()

	r := router.SetupRouter(router.Deps{
		Sessions:      sessions,
		Cart:          cart,
		Notifications: notifications,
		OrderMonitor:  orderMonitor,
		DelivMonitor:  deliveryMonitor,
		OrderAPI:      orderClient,
		DeliveryAPI:   deliveryClient,
		Limiter:       middlewares.NewRateLimiter(50, 1),
		CORSOrigin:    cfg.CORSOrigin,
	})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
