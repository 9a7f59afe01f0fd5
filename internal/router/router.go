package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/unilink-et/backend/internal/handlers"
	"github.com/unilink-et/backend/internal/middleware"
	"github.com/unilink-et/backend/internal/repositories"
	"github.com/unilink-et/backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	likeRepo := repositories.NewMongoLikeRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)
	chatRepo := repositories.NewMongoChatRepository(db)
	notificationRepo := repositories.NewMongoNotificationRepository(db)
	marketplaceRepo := repositories.NewMongoMarketplaceRepository(db)

	// --- Initialize Services ---
	resolver := services.NewIdentityResolver(userRepo)
	notificationService := services.NewNotificationService(notificationRepo, resolver)
	interactionService := services.NewInteractionService(postRepo, likeRepo, commentRepo, notificationService)
	feedService := services.NewFeedService(postRepo, likeRepo, commentRepo, resolver)
	chatService := services.NewChatService(chatRepo, resolver, notificationService)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())

	userHandler := handlers.NewUserHandler(userRepo, resolver)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	likeHandler := handlers.NewLikeHandler(interactionService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	commentHandler := handlers.NewCommentHandler(interactionService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	chatHandler := handlers.NewChatHandler(chatService)
	chatHandler.RegisterChatRoutes(api)
	log.Println("Chat routes configured.")

	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceRepo)
	marketplaceHandler.RegisterMarketplaceRoutes(api)
	log.Println("Marketplace routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
