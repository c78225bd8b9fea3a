package routes

import (
	"applytrack-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to application records
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationHandler handlers.ApplicationHandlerInterface, authMiddleware gin.HandlerFunc) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware) // All record operations are owner-scoped
	{
		applications.GET("", applicationHandler.ListApplications)
		applications.POST("", applicationHandler.CreateApplication)
		applications.PATCH("/:id", applicationHandler.UpdateApplication)
		applications.PATCH("/:id/follow-up", applicationHandler.ToggleFollowUp)
		applications.POST("/:id/interviews", applicationHandler.AddInterviewDate)
		applications.GET("/:id/timeline", applicationHandler.GetTimeline)
		applications.DELETE("/:id", applicationHandler.DeleteApplication)
	}
}
