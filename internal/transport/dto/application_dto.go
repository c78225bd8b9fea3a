package dto

import (
	"github.com/google/uuid"
)

// CreateApplicationRequest defines the structure for recording a new
// application. Dates are YYYY-MM-DD strings; parsing happens in the service
// so a bad date surfaces as a validation error, not a bind error.
type CreateApplicationRequest struct {
	OwnerID        uuid.UUID `json:"-"` // Set from user context
	CompanyName    string    `json:"company_name" validate:"required,max=200"`
	Role           string    `json:"role" validate:"required,max=200"`
	DateApplied    string    `json:"date_applied" validate:"required"`
	Status         string    `json:"status" validate:"omitempty,oneof=Applied Interview Selected Rejected"`
	Notes          string    `json:"notes" validate:"omitempty,max=2000"`
	FollowUpNeeded bool      `json:"follow_up_needed"`
	InterviewDate  string    `json:"interview_date" validate:"omitempty"`
}

// ListApplicationsRequest defines the filter/sort parameters for listing
// the owner's applications.
type ListApplicationsRequest struct {
	OwnerID      uuid.UUID `json:"-"` // Set from user context
	Search       string    `form:"search"`
	Status       string    `form:"status,default=all"`
	FollowUpOnly bool      `form:"followUpOnly"`
	SortBy       string    `form:"sortBy,default=date-desc"`
}

// GetApplicationRequest identifies one owned application.
type GetApplicationRequest struct {
	ID      uuid.UUID `json:"-" validate:"required"` // From path
	OwnerID uuid.UUID `json:"-"`                     // Set from user context
}

// UpdateApplicationRequest mirrors the inline editor: status (with an
// optional note) and the follow-up flag can change in one call.
type UpdateApplicationRequest struct {
	ID             uuid.UUID `json:"-"` // From path
	OwnerID        uuid.UUID `json:"-"` // Set from user context
	Status         *string   `json:"status" validate:"omitempty,oneof=Applied Interview Selected Rejected"`
	Note           *string   `json:"note" validate:"omitempty,max=2000"`
	FollowUpNeeded *bool     `json:"follow_up_needed"`
}

// ToggleFollowUpRequest flips the follow-up flag of one owned application.
type ToggleFollowUpRequest struct {
	ID      uuid.UUID `json:"-"` // From path
	OwnerID uuid.UUID `json:"-"` // Set from user context
}

// AddInterviewDateRequest appends a date to an application's interview
// schedule.
type AddInterviewDateRequest struct {
	ID      uuid.UUID `json:"-"` // From path
	OwnerID uuid.UUID `json:"-"` // Set from user context
	Date    string    `json:"date" validate:"required"`
}

// DeleteApplicationRequest identifies one owned application to hard-delete.
type DeleteApplicationRequest struct {
	ID      uuid.UUID `json:"-"` // From path
	OwnerID uuid.UUID `json:"-"` // Set from user context
}

// StatusChangeResponse is one entry of the status timeline.
type StatusChangeResponse struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	Notes  string `json:"notes,omitempty"`
}

// ApplicationResponse is the read-only snapshot handed to display
// consumers. Mutations go through the service operations and a re-query.
type ApplicationResponse struct {
	ID             uuid.UUID              `json:"id"`
	CompanyName    string                 `json:"company_name"`
	Role           string                 `json:"role"`
	DateApplied    string                 `json:"date_applied"`
	Status         string                 `json:"status"`
	Notes          string                 `json:"notes,omitempty"`
	FollowUpNeeded bool                   `json:"follow_up_needed"`
	InterviewDates []string               `json:"interview_dates"`
	NotesPerStage  map[string]string      `json:"notes_per_stage"`
	StatusHistory  []StatusChangeResponse `json:"status_history"`
	NeedsAttention bool                   `json:"needs_attention"`
	CreatedAt      string                 `json:"created_at"`
}

// TimelineEntry is one item of the combined status/interview timeline.
type TimelineEntry struct {
	Kind   string `json:"kind"` // "status" or "interview"
	Status string `json:"status,omitempty"`
	Date   string `json:"date"`
	Notes  string `json:"notes,omitempty"`
}

// TimelineResponse is the original timeline modal's data: the status
// history followed by scheduled interviews.
type TimelineResponse struct {
	CompanyName string          `json:"company_name"`
	Role        string          `json:"role"`
	Entries     []TimelineEntry `json:"entries"`
}
