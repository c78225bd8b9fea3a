package routes_test

import (
	"time"

	"applytrack-api/internal/api/handlers"
	"applytrack-api/internal/api/middleware"
	"applytrack-api/internal/api/routes"
	"applytrack-api/internal/services"
	"applytrack-api/internal/storage/memory"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testJWTSecret = "test-secret"

func generateTestToken(userID uuid.UUID, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// setupApplicationRouter wires a real handler and service over the in-memory
// store, behind the real JWT middleware, so tests exercise the full HTTP path.
func setupApplicationRouter() (*gin.Engine, *memory.ApplicationStore) {
	gin.SetMode(gin.TestMode)
	store := memory.NewApplicationStore()
	svc := services.NewApplicationService(store, services.NewAnalyticsCache(nil, 0))
	handler := handlers.NewApplicationHandler(svc, validator.New())

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	routes.RegisterApplicationRoutes(apiV1, handler, middleware.JWTAuthMiddleware(testJWTSecret))
	return router, store
}
