package router

import (
	"log"

	"github.com/bridgegen/backend/internal/handlers"
	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Word{},
		&models.Post{},
		&models.Media{},
		&models.Comment{},
		&models.Like{},
		&models.CommentLike{},
		&models.Poll{},
		&models.PollOption{},
		&models.PollVote{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	wordRepo := repositories.NewPostgresWordRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	reactionRepo := repositories.NewPostgresReactionRepository(db)
	pollRepo := repositories.NewPostgresPollRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	api := e.Group("/api")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(postRepo, reactionRepo, pollRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo, notificationRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(reactionRepo, userRepo, notificationRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Poll routes
	pollHandler := handlers.NewPollHandler(pollRepo, userRepo, notificationRepo)
	pollHandler.RegisterPollRoutes(api)
	log.Println("Poll routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Word-of-day routes
	wordHandler := handlers.NewWordHandler(wordRepo)
	wordHandler.RegisterWordRoutes(api)
	log.Println("Word routes configured.")

	log.Println("All routes configured.")
}
