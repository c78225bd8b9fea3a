package services

import (
	"context"

	"applytrack-api/internal/models"
	"applytrack-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for account business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ApplicationService defines the interface for application-record business
// logic. Every operation is scoped to the owner carried in the request.
type ApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.Application, error)
	Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error)
	ToggleFollowUp(ctx context.Context, req *dto.ToggleFollowUpRequest) (*models.Application, error)
	AddInterviewDate(ctx context.Context, req *dto.AddInterviewDateRequest) (*models.Application, error)
	Timeline(ctx context.Context, req *dto.GetApplicationRequest) (*dto.TimelineResponse, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
}

// AnalyticsService derives the dashboard summary from the owner's full
// record set.
type AnalyticsService interface {
	Summary(ctx context.Context, ownerID uuid.UUID) (*dto.AnalyticsSummary, error)
}
