package integration_tests

import (
	"context"
	"testing"

	"applytrack-api/internal/models"
	"applytrack-api/internal/services"
	"applytrack-api/internal/storage/postgres"
	"applytrack-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApplicationServiceIntegrationTest initializes the service over a real
// database pool.
func setupApplicationServiceIntegrationTest(t *testing.T) (context.Context, services.ApplicationService) {
	t.Helper()
	pool := getTestPool(t)
	ctx := context.Background()
	cleanupTables(ctx, t, pool, "application_records")

	repo := postgres.NewApplicationRepo(pool)
	return ctx, services.NewApplicationService(repo, services.NewAnalyticsCache(nil, 0))
}

func TestApplicationService_Integration_CreateAndReload(t *testing.T) {
	ctx, svc := setupApplicationServiceIntegrationTest(t)
	owner := uuid.New()

	created, err := svc.Create(ctx, &dto.CreateApplicationRequest{
		OwnerID:     owner,
		CompanyName: "Acme Corp",
		Role:        "Backend Engineer",
		DateApplied: "2024-03-01",
		Notes:       "referral",
	})
	require.NoError(t, err)

	// The nested history and stage notes survive the JSONB round trip.
	apps, err := svc.List(ctx, &dto.ListApplicationsRequest{OwnerID: owner})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, created.ID, apps[0].ID)
	require.Len(t, apps[0].StatusHistory, 1)
	assert.Equal(t, "referral", apps[0].NotesPerStage[models.StatusApplied])
}

func TestApplicationService_Integration_TransitionPersists(t *testing.T) {
	ctx, svc := setupApplicationServiceIntegrationTest(t)
	owner := uuid.New()

	created, err := svc.Create(ctx, &dto.CreateApplicationRequest{
		OwnerID:     owner,
		CompanyName: "Acme Corp",
		Role:        "Backend Engineer",
		DateApplied: "2024-03-01",
	})
	require.NoError(t, err)

	status := string(models.StatusInterview)
	note := "onsite loop"
	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{
		ID: created.ID, OwnerID: owner, Status: &status, Note: &note,
	})
	require.NoError(t, err)

	apps, err := svc.List(ctx, &dto.ListApplicationsRequest{OwnerID: owner})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, models.StatusInterview, apps[0].Status)
	require.Len(t, apps[0].StatusHistory, 2)
	assert.Equal(t, note, apps[0].StatusHistory[1].Notes)
}

func TestApplicationService_Integration_OwnerPartitions(t *testing.T) {
	ctx, svc := setupApplicationServiceIntegrationTest(t)
	ownerA := uuid.New()
	ownerB := uuid.New()

	createdA, err := svc.Create(ctx, &dto.CreateApplicationRequest{
		OwnerID: ownerA, CompanyName: "Acme", Role: "r", DateApplied: "2024-03-01",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateApplicationRequest{
		OwnerID: ownerB, CompanyName: "Globex", Role: "r", DateApplied: "2024-03-02",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, &dto.DeleteApplicationRequest{ID: createdA.ID, OwnerID: ownerB})
	assert.ErrorIs(t, err, services.ErrNotFound)

	appsA, err := svc.List(ctx, &dto.ListApplicationsRequest{OwnerID: ownerA})
	require.NoError(t, err)
	assert.Len(t, appsA, 1)
}
