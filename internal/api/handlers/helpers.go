package handlers

import (
	"fmt"
	"time"

	"applytrack-api/internal/models"
	"applytrack-api/internal/services"
	"applytrack-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapUserToResponse converts a models.User to a dto.UserResponse
func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// MapApplicationToResponse converts a models.Application to the read-only
// snapshot handed to display consumers.
func MapApplicationToResponse(app *models.Application, now time.Time) dto.ApplicationResponse {
	interviewDates := make([]string, 0, len(app.InterviewDates))
	for _, d := range app.InterviewDates {
		interviewDates = append(interviewDates, d.Format(services.DateLayout))
	}

	notesPerStage := make(map[string]string, len(app.NotesPerStage))
	for status, note := range app.NotesPerStage {
		notesPerStage[string(status)] = note
	}

	history := make([]dto.StatusChangeResponse, 0, len(app.StatusHistory))
	for _, change := range app.StatusHistory {
		history = append(history, dto.StatusChangeResponse{
			Status: string(change.Status),
			Date:   change.Date.Format(services.DateLayout),
			Notes:  change.Notes,
		})
	}

	return dto.ApplicationResponse{
		ID:             app.ID,
		CompanyName:    app.CompanyName,
		Role:           app.Role,
		DateApplied:    app.DateApplied.Format(services.DateLayout),
		Status:         string(app.Status),
		Notes:          app.Notes,
		FollowUpNeeded: app.FollowUpNeeded,
		InterviewDates: interviewDates,
		NotesPerStage:  notesPerStage,
		StatusHistory:  history,
		NeedsAttention: app.NeedsAttention(now),
		CreatedAt:      app.CreatedAt.Format(time.RFC3339),
	}
}
