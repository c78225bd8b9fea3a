package storage

import (
	"context"

	"applytrack-api/internal/models"

	"github.com/google/uuid"
)

// ApplicationRepository defines the record-store contract for application
// records. Records live in per-owner partitions: GetAll returns only the
// owner's records and PutAll replaces the owner's partition wholesale
// (read-modify-write, last writer wins).
type ApplicationRepository interface {
	GetAll(ctx context.Context, ownerID uuid.UUID) ([]models.Application, error)
	PutAll(ctx context.Context, ownerID uuid.UUID, apps []models.Application) error
}

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
