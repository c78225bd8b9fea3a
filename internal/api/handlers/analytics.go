package handlers

import (
	"log"
	"net/http"

	"applytrack-api/internal/api/middleware"
	"applytrack-api/internal/services"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler holds dependencies for dashboard aggregation.
type AnalyticsHandler struct {
	service services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

var _ AnalyticsHandlerInterface = (*AnalyticsHandler)(nil)

// GetSummary godoc
//
//	@Summary		Dashboard summary
//	@Description	Returns counters, the status distribution and the 8-week application volume for the authenticated user.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	dto.AnalyticsSummary	"Aggregated summary"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/analytics/summary [get]
//	@Security		BearerAuth
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	ownerID, err := middleware.GetOwnerIDFromContext(c)
	if err != nil {
		log.Printf("GetSummary: Error getting owner ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), ownerID)
	if err != nil {
		log.Printf("GetSummary: Error aggregating summary for owner %s: %v", ownerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
