// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the auth routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the
// application routes.
type ApplicationHandlerInterface interface {
	ListApplications(c *gin.Context)
	CreateApplication(c *gin.Context)
	UpdateApplication(c *gin.Context)
	ToggleFollowUp(c *gin.Context)
	AddInterviewDate(c *gin.Context)
	GetTimeline(c *gin.Context)
	DeleteApplication(c *gin.Context)
}

// AnalyticsHandlerInterface defines the methods needed by the analytics
// routes.
type AnalyticsHandlerInterface interface {
	GetSummary(c *gin.Context)
}
