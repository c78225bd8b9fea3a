package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Application Status Enum ---
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusSelected  Status = "Selected"
	StatusRejected  Status = "Rejected"
)

// AllStatuses lists every status in display order. The analytics
// distribution iterates this so zero counts are always emitted.
var AllStatuses = []Status{StatusApplied, StatusInterview, StatusSelected, StatusRejected}

// Valid reports whether s is one of the four fixed statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusSelected, StatusRejected:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for Status
func (s *Status) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Status: value is not string or []byte")
		}
	}
	v := Status(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid Status value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for Status
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

// StatusChange is one entry in an application's status history.
type StatusChange struct {
	Status Status    `json:"status"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes"`
}

// User represents an account owning application records.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Application is one tracked job application. StatusHistory is append-only
// and insertion-ordered; its last entry always matches Status.
type Application struct {
	ID             uuid.UUID         `json:"id"`
	OwnerID        uuid.UUID         `json:"owner_id"`
	CompanyName    string            `json:"company_name"`
	Role           string            `json:"role"`
	DateApplied    time.Time         `json:"date_applied"`
	Status         Status            `json:"status"`
	Notes          string            `json:"notes"`
	FollowUpNeeded bool              `json:"follow_up_needed"`
	InterviewDates []time.Time       `json:"interview_dates"`
	NotesPerStage  map[Status]string `json:"notes_per_stage"`
	StatusHistory  []StatusChange    `json:"status_history"`
	CreatedAt      time.Time         `json:"created_at"`
}

// NewApplication builds a record with its history seeded to a single entry
// for the initial status. Input validation happens in the service layer.
func NewApplication(ownerID uuid.UUID, companyName, role string, dateApplied time.Time, status Status, notes string, followUpNeeded bool, interviewDate *time.Time) *Application {
	app := &Application{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		CompanyName:    companyName,
		Role:           role,
		DateApplied:    dateApplied,
		Status:         status,
		Notes:          notes,
		FollowUpNeeded: followUpNeeded,
		InterviewDates: []time.Time{},
		NotesPerStage:  map[Status]string{status: notes},
		StatusHistory: []StatusChange{{
			Status: status,
			Date:   dateApplied,
			Notes:  notes,
		}},
		CreatedAt: time.Now().UTC(),
	}
	if interviewDate != nil {
		app.InterviewDates = append(app.InterviewDates, *interviewDate)
	}
	return app
}

// Normalize backfills fields that older stored records may be missing so
// they remain usable after loading. It is idempotent: running it again on
// an already-normalized record changes nothing.
func (a *Application) Normalize(owner uuid.UUID) {
	if a.OwnerID == uuid.Nil {
		a.OwnerID = owner
	}
	if a.InterviewDates == nil {
		a.InterviewDates = []time.Time{}
	}
	if a.NotesPerStage == nil {
		a.NotesPerStage = map[Status]string{}
	}
	if len(a.StatusHistory) == 0 {
		a.StatusHistory = []StatusChange{{
			Status: a.Status,
			Date:   a.DateApplied,
			Notes:  a.Notes,
		}}
	}
}

// TransitionStatus moves the record to newStatus, appending a history entry
// dated now. A transition to the current status is a no-op and adds no
// history entry. When note is empty, the note last recorded for newStatus
// is reused. Reports whether the record changed.
func (a *Application) TransitionStatus(newStatus Status, note string, now time.Time) bool {
	if newStatus == a.Status {
		return false
	}
	if a.NotesPerStage == nil {
		a.NotesPerStage = map[Status]string{}
	}
	if note == "" {
		note = a.NotesPerStage[newStatus]
	}
	a.StatusHistory = append(a.StatusHistory, StatusChange{
		Status: newStatus,
		Date:   now,
		Notes:  note,
	})
	a.Status = newStatus
	a.NotesPerStage[newStatus] = note
	return true
}

// ToggleFollowUp flips the follow-up flag. Independent of status.
func (a *Application) ToggleFollowUp() {
	a.FollowUpNeeded = !a.FollowUpNeeded
}

// AddInterviewDate appends a date to the append-only interview schedule.
func (a *Application) AddInterviewDate(date time.Time) {
	a.InterviewDates = append(a.InterviewDates, date)
}

// NeedsAttention reports whether the record has sat in Applied for more
// than seven days as of now.
func (a *Application) NeedsAttention(now time.Time) bool {
	return a.Status == StatusApplied && now.Sub(a.DateApplied) > 7*24*time.Hour
}
