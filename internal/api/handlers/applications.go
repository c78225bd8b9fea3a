package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"applytrack-api/internal/api/middleware"
	"applytrack-api/internal/services"
	"applytrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application-record operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)

// ownerAndID pulls the authenticated owner and the :id path parameter, the
// shared prologue of every single-record endpoint.
func ownerAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	ownerID, err := middleware.GetOwnerIDFromContext(c)
	if err != nil {
		log.Printf("Error getting owner ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, id, true
}

// mapServiceError translates service errors to HTTP responses for the
// fallthrough cases shared by all application endpoints.
func (h *ApplicationHandler) mapServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op})
	}
}

// ListApplications godoc
//
//	@Summary		List applications
//	@Description	Returns the authenticated user's applications, filtered and sorted.
//	@Tags			applications
//	@Produce		json
//	@Param			search			query		string	false	"Case-insensitive match against company or role"
//	@Param			status			query		string	false	"Status filter or 'all'"	default(all)
//	@Param			followUpOnly	query		bool	false	"Only records flagged for follow-up"
//	@Param			sortBy			query		string	false	"date-desc, date-asc, company-asc, company-desc or status"	default(date-desc)
//	@Success		200	{array}		dto.ApplicationResponse	"Filtered, sorted applications"
//	@Failure		400	{object}	map[string]string		"Bad Request - Invalid query parameters"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/applications [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	ownerID, err := middleware.GetOwnerIDFromContext(c)
	if err != nil {
		log.Printf("ListApplications: Error getting owner ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.OwnerID = ownerID

	apps, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListApplications: Error listing applications for owner %s: %v", ownerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	now := time.Now()
	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, MapApplicationToResponse(&apps[i], now))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateApplication godoc
//
//	@Summary		Record a new application
//	@Description	Creates an application record with its status history seeded to one entry.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.CreateApplicationRequest	true	"Application to record"
//	@Success		201			{object}	dto.ApplicationResponse			"Application created"
//	@Failure		400			{object}	map[string]string				"Bad Request - Missing or invalid fields"
//	@Failure		401			{object}	map[string]string				"Unauthorized"
//	@Failure		500			{object}	map[string]string				"Internal Server Error"
//	@Router			/applications [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	ownerID, err := middleware.GetOwnerIDFromContext(c)
	if err != nil {
		log.Printf("CreateApplication: Error getting owner ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.OwnerID = ownerID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.mapServiceError(c, "create application", err)
		return
	}

	c.JSON(http.StatusCreated, MapApplicationToResponse(app, time.Now()))
}

// UpdateApplication godoc
//
//	@Summary		Update status and/or follow-up flag
//	@Description	Transitions the status (appending to the history unless unchanged) and/or sets the follow-up flag.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Application ID"	Format(uuid)
//	@Param			update	body		dto.UpdateApplicationRequest	true	"Fields to update"
//	@Success		200		{object}	dto.ApplicationResponse			"Application updated"
//	@Failure		400		{object}	map[string]string				"Bad Request - Invalid ID or fields"
//	@Failure		401		{object}	map[string]string				"Unauthorized"
//	@Failure		404		{object}	map[string]string				"Application not found"
//	@Failure		500		{object}	map[string]string				"Internal Server Error"
//	@Router			/applications/{id} [patch]
//	@Security		BearerAuth
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	req.OwnerID = ownerID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.mapServiceError(c, "update application", err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(app, time.Now()))
}

// ToggleFollowUp godoc
//
//	@Summary		Toggle the follow-up flag
//	@Description	Flips the follow-up flag, independent of status.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string					true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.ApplicationResponse	"Application updated"
//	@Failure		400	{object}	map[string]string		"Bad Request - Invalid ID format"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		404	{object}	map[string]string		"Application not found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/{id}/follow-up [patch]
//	@Security		BearerAuth
func (h *ApplicationHandler) ToggleFollowUp(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	req := dto.ToggleFollowUpRequest{ID: id, OwnerID: ownerID}
	app, err := h.service.ToggleFollowUp(c.Request.Context(), &req)
	if err != nil {
		h.mapServiceError(c, "toggle follow-up", err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(app, time.Now()))
}

// AddInterviewDate godoc
//
//	@Summary		Schedule an interview
//	@Description	Appends a date to the application's interview schedule.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Application ID"	Format(uuid)
//	@Param			interview	body		dto.AddInterviewDateRequest	true	"Interview date"
//	@Success		200			{object}	dto.ApplicationResponse		"Application updated"
//	@Failure		400			{object}	map[string]string			"Bad Request - Invalid ID or date"
//	@Failure		401			{object}	map[string]string			"Unauthorized"
//	@Failure		404			{object}	map[string]string			"Application not found"
//	@Failure		500			{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/interviews [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) AddInterviewDate(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	var req dto.AddInterviewDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	req.OwnerID = ownerID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.AddInterviewDate(c.Request.Context(), &req)
	if err != nil {
		h.mapServiceError(c, "add interview date", err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(app, time.Now()))
}

// GetTimeline godoc
//
//	@Summary		Application timeline
//	@Description	Returns the status history followed by scheduled interviews.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string					true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.TimelineResponse	"Timeline"
//	@Failure		400	{object}	map[string]string		"Bad Request - Invalid ID format"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		404	{object}	map[string]string		"Application not found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/{id}/timeline [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetTimeline(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	req := dto.GetApplicationRequest{ID: id, OwnerID: ownerID}
	timeline, err := h.service.Timeline(c.Request.Context(), &req)
	if err != nil {
		h.mapServiceError(c, "retrieve timeline", err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

// DeleteApplication godoc
//
//	@Summary		Delete an application
//	@Description	Permanently removes an owned application record.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string				true	"Application ID"	Format(uuid)
//	@Success		204	{object}	nil					"Application deleted"
//	@Failure		400	{object}	map[string]string	"Bad Request - Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Application not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/{id} [delete]
//	@Security		BearerAuth
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	req := dto.DeleteApplicationRequest{ID: id, OwnerID: ownerID}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		h.mapServiceError(c, "delete application", err)
		return
	}

	c.Status(http.StatusNoContent)
}
