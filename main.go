package main

import (
	"fmt"
	"log"

	"barberpro-backend/config"
	"barberpro-backend/routes"
	"barberpro-backend/services"
	"barberpro-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := config.Load()

	var store storage.Store
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect database: %v", err)
		}
		store = pg
	} else {
		log.Println("DB_URL not set, using in-memory storage")
		store = storage.NewMemory()
	}

	var notifier services.Notifier
	if cfg.TwilioAccountSID != "" {
		notifier = services.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom)
	} else {
		notifier = services.NewWhatsAppLinkNotifier()
	}

	app, err := services.NewApp(store, notifier)
	if err != nil {
		log.Fatalf("Failed to load application state: %v", err)
	}

	app.Reminders.StartScheduler()
	defer app.Reminders.Stop()

	r := routes.SetupRouter(app)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
