package routes

import (
	"applytrack-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAnalyticsRoutes registers all routes related to the dashboard
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler handlers.AnalyticsHandlerInterface, authMiddleware gin.HandlerFunc) {
	analytics := rg.Group("/analytics")
	analytics.Use(authMiddleware)
	{
		analytics.GET("/summary", analyticsHandler.GetSummary)
	}
}
