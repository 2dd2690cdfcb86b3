package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"dimzia-storefront/config"
	"dimzia-storefront/handlers"
	"dimzia-storefront/notify"
	"dimzia-storefront/orders"
	"dimzia-storefront/pricing"
	"dimzia-storefront/routes"
	"dimzia-storefront/store"
	"dimzia-storefront/store/gormstore"
	"dimzia-storefront/store/pgstore"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer st.Close()

	if err := store.EnsureSeed(ctx, st); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	pricer := pricing.Pricer{
		Policy:    pricing.Policy(cfg.Delivery.Policy),
		CostPerKm: cfg.Delivery.CostPerKm,
		Origin:    pricing.Coordinate{Lat: cfg.Delivery.StoreLat, Lon: cfg.Delivery.StoreLon},
	}

	composer := &orders.Composer{
		Orders: st,
		Phone:  cfg.Delivery.WhatsAppPhone,
	}
	if cfg.Telegram.Token != "" {
		notifier, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("Telegram notifications disabled: %v", err)
		} else {
			composer.Notifier = notifier
		}
	}

	h := handlers.New(st, pricer, composer, cfg.JWTSecret, cfg.AdminEmail)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Dimzia Dimsum Storefront API",
			"backend": cfg.Store.Backend,
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// openStore picks the persistence provider; the two backends are
// interchangeable deployment configurations behind one interface.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "postgres":
		pg := cfg.Store.Postgres
		connStr := fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s",
			pg.User, pg.Password, pg.Host, pg.Port, pg.Database,
		)
		return pgstore.Open(ctx, connStr)
	case "sqlite", "":
		return gormstore.Open(cfg.Store.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
}
