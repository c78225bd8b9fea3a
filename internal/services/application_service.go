package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"applytrack-api/internal/models"
	"applytrack-api/internal/storage"
	"applytrack-api/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	repo  storage.ApplicationRepository
	cache *AnalyticsCache
	now   func() time.Time
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(repo storage.ApplicationRepository, cache *AnalyticsCache) ApplicationService {
	return &applicationService{repo: repo, cache: cache, now: time.Now}
}

// Create records a new application with its status history seeded to one
// entry for the initial status.
func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	role := strings.TrimSpace(req.Role)
	if companyName == "" || role == "" || req.DateApplied == "" {
		return nil, fmt.Errorf("%w: company name, role and date applied are required", ErrValidation)
	}

	dateApplied, err := parseDate("date_applied", req.DateApplied)
	if err != nil {
		return nil, err
	}

	status := models.StatusApplied
	if req.Status != "" {
		status = models.Status(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
		}
	}

	var interviewDate *time.Time
	if req.InterviewDate != "" {
		d, err := parseDate("interview_date", req.InterviewDate)
		if err != nil {
			return nil, err
		}
		interviewDate = &d
	}

	app := models.NewApplication(req.OwnerID, companyName, role, dateApplied,
		status, strings.TrimSpace(req.Notes), req.FollowUpNeeded, interviewDate)

	apps, err := s.loadOwned(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	apps = append(apps, *app)

	if err := s.persist(ctx, req.OwnerID, apps); err != nil {
		return nil, err
	}

	log.Printf("Application %s created for owner %s (%s / %s)", app.ID, req.OwnerID, companyName, role)
	return app, nil
}

// List derives the filtered, sorted display view over the owner's records.
func (s *applicationService) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.Application, error) {
	apps, err := s.loadOwned(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	return FilterAndSort(apps, ListFilter{
		Search:       req.Search,
		Status:       req.Status,
		FollowUpOnly: req.FollowUpOnly,
		SortBy:       req.SortBy,
	}), nil
}

// Update applies the inline-edit operation: an optional status transition
// (with note) and an optional follow-up flag change in one call. A
// transition to the current status leaves the history untouched.
func (s *applicationService) Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	if req.Status != nil && !models.Status(*req.Status).Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
	}

	return s.mutate(ctx, req.OwnerID, req.ID, func(app *models.Application) error {
		if req.Status != nil {
			note := ""
			if req.Note != nil {
				note = strings.TrimSpace(*req.Note)
			}
			if app.TransitionStatus(models.Status(*req.Status), note, s.now()) {
				log.Printf("Application %s transitioned to %s for owner %s", app.ID, *req.Status, req.OwnerID)
			}
		}
		if req.FollowUpNeeded != nil {
			app.FollowUpNeeded = *req.FollowUpNeeded
		}
		return nil
	})
}

// ToggleFollowUp flips the follow-up flag, independent of status.
func (s *applicationService) ToggleFollowUp(ctx context.Context, req *dto.ToggleFollowUpRequest) (*models.Application, error) {
	return s.mutate(ctx, req.OwnerID, req.ID, func(app *models.Application) error {
		app.ToggleFollowUp()
		return nil
	})
}

// AddInterviewDate appends a date to the application's interview schedule.
func (s *applicationService) AddInterviewDate(ctx context.Context, req *dto.AddInterviewDateRequest) (*models.Application, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, req.OwnerID, req.ID, func(app *models.Application) error {
		app.AddInterviewDate(date)
		return nil
	})
}

// Timeline returns the status history followed by scheduled interviews.
func (s *applicationService) Timeline(ctx context.Context, req *dto.GetApplicationRequest) (*dto.TimelineResponse, error) {
	apps, err := s.loadOwned(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	app := findByID(apps, req.ID)
	if app == nil {
		// A foreign record id is indistinguishable from an unknown one:
		// the caller only ever sees not-found.
		log.Printf("Timeline: Application %s not in owner %s's record set", req.ID, req.OwnerID)
		return nil, ErrNotFound
	}

	resp := &dto.TimelineResponse{
		CompanyName: app.CompanyName,
		Role:        app.Role,
		Entries:     make([]dto.TimelineEntry, 0, len(app.StatusHistory)+len(app.InterviewDates)),
	}
	for _, change := range app.StatusHistory {
		resp.Entries = append(resp.Entries, dto.TimelineEntry{
			Kind:   "status",
			Status: string(change.Status),
			Date:   change.Date.Format(DateLayout),
			Notes:  change.Notes,
		})
	}
	for _, d := range app.InterviewDates {
		resp.Entries = append(resp.Entries, dto.TimelineEntry{
			Kind:  "interview",
			Date:  d.Format(DateLayout),
			Notes: app.NotesPerStage[models.StatusInterview],
		})
	}
	return resp, nil
}

// Delete permanently removes an owned record. A record owned by someone
// else is absent from the caller's partition and reports not-found, never
// confirming foreign existence.
func (s *applicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	apps, err := s.loadOwned(ctx, req.OwnerID)
	if err != nil {
		return err
	}

	kept := apps[:0]
	found := false
	for _, app := range apps {
		if app.ID == req.ID {
			found = true
			continue
		}
		kept = append(kept, app)
	}
	if !found {
		log.Printf("Delete: Application %s not in owner %s's record set", req.ID, req.OwnerID)
		return ErrNotFound
	}

	if err := s.persist(ctx, req.OwnerID, kept); err != nil {
		return err
	}
	log.Printf("Application %s deleted for owner %s", req.ID, req.OwnerID)
	return nil
}

// loadOwned reads the owner's partition and runs the normalization upgrade
// path on every record, so older/partial records stay usable.
func (s *applicationService) loadOwned(ctx context.Context, ownerID uuid.UUID) ([]models.Application, error) {
	apps, err := s.repo.GetAll(ctx, ownerID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("loading records for owner %s", ownerID))
	}
	for i := range apps {
		apps[i].Normalize(ownerID)
	}
	return apps, nil
}

// persist writes the owner's partition back and drops their cached
// analytics snapshot.
func (s *applicationService) persist(ctx context.Context, ownerID uuid.UUID, apps []models.Application) error {
	if err := s.repo.PutAll(ctx, ownerID, apps); err != nil {
		return mapRepoError(err, fmt.Sprintf("persisting records for owner %s", ownerID))
	}
	s.cache.Invalidate(ctx, ownerID)
	return nil
}

// mutate is the shared load-modify-persist path for single-record edits.
func (s *applicationService) mutate(ctx context.Context, ownerID, id uuid.UUID, fn func(*models.Application) error) (*models.Application, error) {
	apps, err := s.loadOwned(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	app := findByID(apps, id)
	if app == nil {
		log.Printf("Mutate: Application %s not in owner %s's record set", id, ownerID)
		return nil, ErrNotFound
	}
	if err := fn(app); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, ownerID, apps); err != nil {
		return nil, err
	}
	result := *app
	return &result, nil
}

func findByID(apps []models.Application, id uuid.UUID) *models.Application {
	for i := range apps {
		if apps[i].ID == id {
			return &apps[i]
		}
	}
	return nil
}
