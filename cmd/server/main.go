package main

import (
	"log"

	"github.com/bridgegen/backend/internal/router"
	"github.com/bridgegen/backend/internal/seed"
	"github.com/bridgegen/backend/pkg/config"
	"github.com/bridgegen/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db)

	// Validator
	e.Validator = validators.NewValidator()

	// Optional demo seeding for development
	if cfg.SeedDemoData {
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
