package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/ItsBhatt/devConnector/internal/router"
	"github.com/ItsBhatt/devConnector/pkg/config"
	"github.com/ItsBhatt/devConnector/pkg/firebase"
	"github.com/ItsBhatt/devConnector/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Firebase is optional; without it only local JWTs are accepted
	var firebaseAuth *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseAuth, err = firebase.NewAuthClient(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	config.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo.Database(cfg.MongoDatabase), firebaseAuth)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
