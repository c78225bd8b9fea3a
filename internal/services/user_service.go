package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"applytrack-api/internal/models"
	"applytrack-api/internal/storage"
	"applytrack-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo          storage.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, jwtSecret string, jwtExpiration time.Duration) UserService {
	return &userService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates an account with a bcrypt-hashed password and logs the
// new user straight in by returning a signed token.
func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: Error hashing password for email %s: %v", req.Email, err)
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashedPassword),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, "", fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("Register: Error creating user: %v", err)
		return nil, "", fmt.Errorf("internal error creating user: %w", err)
	}

	token, err := s.issueToken(created.ID)
	if err != nil {
		log.Printf("Register: Error generating JWT token for user %s: %v", created.Email, err)
		return nil, "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return created, token, nil
}

// Login verifies the credentials and returns the user with a signed token.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", email)
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", email, err)
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return nil, "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return user, token, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// issueToken signs a token whose subject is the owner id scoping all
// record operations.
func (s *userService) issueToken(userID uuid.UUID) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
