package routes

import (
	"log"
	"time"

	"applytrack-api/internal/api/handlers"
	"applytrack-api/internal/api/middleware"
	"applytrack-api/internal/app"
	"applytrack-api/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Services ---
	cache := services.NewAnalyticsCache(app.RedisClient, time.Minute)
	userService := services.NewUserService(app.UserRepo, app.Config.JWT.Secret, app.Config.JWT.Expiration)
	applicationService := services.NewApplicationService(app.ApplicationRepo, cache)
	analyticsService := services.NewAnalyticsService(app.ApplicationRepo, cache)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterAnalyticsRoutes(apiV1, analyticsHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Routes registered")
}
