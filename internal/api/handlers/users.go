package handlers

import (
	"errors"
	"log"
	"net/http"

	"applytrack-api/internal/api/middleware"
	"applytrack-api/internal/services"
	"applytrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds dependencies for account operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

var _ UserHandlerInterface = (*UserHandler)(nil)

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account and logs the user straight in.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.CreateUserRequest	true	"Account details"
//	@Success		201		{object}	dto.AuthResponse		"Account created"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		409		{object}	map[string]string		"Conflict - Email already registered"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		} else {
			log.Printf("Register: Error creating account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: MapUserToResponse(user), Token: token})
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns a bearer token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Login credentials"
//	@Success		200			{object}	dto.AuthResponse	"Logged in"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string	"Unauthorized - Invalid credentials"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			log.Printf("Login: Error logging in: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: MapUserToResponse(user), Token: token})
}

// Me godoc
//
//	@Summary		Current account
//	@Description	Returns the account behind the bearer token.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponse	"Current account"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Account not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/me [get]
//	@Security		BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	ownerID, err := middleware.GetOwnerIDFromContext(c)
	if err != nil {
		log.Printf("Me: Error getting owner ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			log.Printf("Me: Error fetching account %s: %v", ownerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}
