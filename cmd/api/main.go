package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/keinsta/si-bills-api/internal/application/service"
	"github.com/keinsta/si-bills-api/internal/config"
	"github.com/keinsta/si-bills-api/internal/infrastructure/database"
	"github.com/keinsta/si-bills-api/internal/infrastructure/repository"
	"github.com/keinsta/si-bills-api/internal/presentation/http/handler"
	"github.com/keinsta/si-bills-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	billRepo := repository.NewBillRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	billService := service.NewBillService(billRepo, cfg.Billing.SerialPrefix)

	// Initialize handlers
	handlers := &routes.Handlers{
		Bill: handler.NewBillHandler(billService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
