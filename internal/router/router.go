package router

import (
	"context"
	"log"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/ItsBhatt/devConnector/internal/handlers"
	"github.com/ItsBhatt/devConnector/internal/identity"
	"github.com/ItsBhatt/devConnector/internal/middleware"
	"github.com/ItsBhatt/devConnector/internal/models"
	"github.com/ItsBhatt/devConnector/internal/posts"
	"github.com/ItsBhatt/devConnector/internal/repositories"
	"github.com/ItsBhatt/devConnector/pkg/config"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil when Firebase is not configured.
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgdb *mongo.Database, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create post indexes: %v", err)
	}

	postService := posts.NewPostService(postRepo, userRepo, notificationRepo, cfg.PostSaveAttempts)

	// firebaseVerifier stays a nil interface unless a client exists
	var firebaseVerifier identity.TokenVerifier
	if firebaseAuthClient != nil {
		firebaseVerifier = firebaseAuthClient
	}

	jwtProvider := identity.NewJWTProvider(cfg.JWTSecret, cfg.JWTExpiry)
	var provider identity.Provider = jwtProvider
	if cfg.AuthProvider == config.AuthProviderFirebase {
		if firebaseVerifier == nil {
			log.Fatalf("AUTH_PROVIDER=%s requires FIREBASE_CREDENTIALS_PATH", config.AuthProviderFirebase)
		}
		provider = identity.NewFirebaseProvider(firebaseVerifier, userRepo)
	}
	log.Printf("Using %s identity provider.", cfg.AuthProvider)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, jwtProvider, firebaseVerifier)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes ---
	api := e.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(provider))
	log.Println("Authentication middleware applied to /api/v1 group.")

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
