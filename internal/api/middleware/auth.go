// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	ownerCtx            = "ownerID" // Key to store the owning user's ID in context
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. The
// token subject is the owner id that scopes every record operation.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid {
			ownerID, err := uuid.Parse(claims.Subject)
			if err != nil {
				log.Printf("Auth middleware: Error parsing owner ID from token subject '%s': %v", claims.Subject, err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
				return
			}

			c.Set(ownerCtx, ownerID)
			c.Next()
		} else {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		}
	}
}

// GetOwnerIDFromContext returns the authenticated owner id placed in the
// gin context by JWTAuthMiddleware.
func GetOwnerIDFromContext(c *gin.Context) (uuid.UUID, error) {
	ownerIDAny, exists := c.Get(ownerCtx)
	if !exists {
		return uuid.Nil, errors.New("owner ID not found in context")
	}

	ownerID, ok := ownerIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("owner ID in context is of invalid type")
	}

	return ownerID, nil
}
