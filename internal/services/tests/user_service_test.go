package services_test

import (
	"context"
	"testing"
	"time"

	"applytrack-api/internal/services"
	"applytrack-api/internal/storage/memory"
	"applytrack-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newUserService() services.UserService {
	return services.NewUserService(memory.NewUserStore(), testJWTSecret, time.Hour)
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	svc := newUserService()

	user, token, err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "  Test@Example.COM ",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email, "email lowercased and trimmed")
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	req := &dto.CreateUserRequest{Name: "Test User", Email: "test@example.com", Password: "password123"}
	_, _, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestLoginSuccess(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, &dto.CreateUserRequest{
		Name: "Test User", Email: "test@example.com", Password: "password123",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, &dto.LoginRequest{Email: "Test@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &dto.CreateUserRequest{
		Name: "Test User", Email: "test@example.com", Password: "password123",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, &dto.LoginRequest{Email: "test@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestGetByID(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, &dto.CreateUserRequest{
		Name: "Test User", Email: "test@example.com", Password: "password123",
	})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, found.Email)

	_, err = svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, services.ErrNotFound)
}
