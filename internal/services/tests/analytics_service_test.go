package services_test

import (
	"context"
	"testing"
	"time"

	"applytrack-api/internal/models"
	"applytrack-api/internal/services"
	"applytrack-api/internal/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmptySet(t *testing.T) {
	now := day(2024, 3, 15)

	summary := services.Aggregate(nil, now)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.InterviewCount)
	assert.Equal(t, 0, summary.SelectedCount)
	assert.Equal(t, 0.0, summary.SuccessRate, "success rate of an empty set is zero, not NaN")
	assert.Equal(t, 0, summary.ThisWeekCount)

	require.Len(t, summary.StatusDistribution, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		assert.Equal(t, 0, summary.StatusDistribution[string(status)], "status %s", status)
	}

	require.Len(t, summary.WeeklyVolume, 8)
	for _, bucket := range summary.WeeklyVolume {
		assert.Equal(t, 0, bucket.Count)
	}
}

// A single record walked Applied -> Interview -> Selected: three history
// entries, counted once as an interview, once as selected, 100% success.
func TestAggregateFullPipelineRecord(t *testing.T) {
	owner := uuid.New()
	app := models.NewApplication(owner, "Acme", "Backend Engineer",
		day(2024, 1, 1), models.StatusApplied, "", false, nil)
	app.TransitionStatus(models.StatusInterview, "", day(2024, 1, 5))
	app.TransitionStatus(models.StatusSelected, "", day(2024, 1, 9))
	require.Len(t, app.StatusHistory, 3)

	summary := services.Aggregate([]models.Application{*app}, day(2024, 1, 10))

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.InterviewCount)
	assert.Equal(t, 1, summary.SelectedCount)
	assert.Equal(t, 100.0, summary.SuccessRate)
	assert.Equal(t, map[string]int{
		"Applied": 0, "Interview": 0, "Selected": 1, "Rejected": 0,
	}, summary.StatusDistribution)
}

func TestAggregateCountersAndDistribution(t *testing.T) {
	owner := uuid.New()
	now := day(2024, 3, 15)
	apps := []models.Application{
		*models.NewApplication(owner, "A", "r", day(2024, 3, 14), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "B", "r", day(2024, 3, 10), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "C", "r", day(2024, 3, 1), models.StatusInterview, "", false, nil),
		*models.NewApplication(owner, "D", "r", day(2024, 2, 1), models.StatusSelected, "", false, nil),
		*models.NewApplication(owner, "E", "r", day(2024, 1, 15), models.StatusRejected, "", false, nil),
		*models.NewApplication(owner, "F", "r", day(2024, 1, 10), models.StatusRejected, "", false, nil),
	}

	summary := services.Aggregate(apps, now)

	assert.Equal(t, 6, summary.Total)
	// Selected implies the interview round was reached.
	assert.Equal(t, 2, summary.InterviewCount)
	assert.Equal(t, 1, summary.SelectedCount)
	assert.Equal(t, map[string]int{
		"Applied": 2, "Interview": 1, "Selected": 1, "Rejected": 2,
	}, summary.StatusDistribution)
}

func TestAggregateSuccessRateRoundsToOneDecimal(t *testing.T) {
	owner := uuid.New()
	apps := []models.Application{
		*models.NewApplication(owner, "A", "r", day(2024, 1, 1), models.StatusSelected, "", false, nil),
		*models.NewApplication(owner, "B", "r", day(2024, 1, 2), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "C", "r", day(2024, 1, 3), models.StatusRejected, "", false, nil),
	}

	summary := services.Aggregate(apps, day(2024, 1, 10))

	assert.Equal(t, 33.3, summary.SuccessRate) // 1/3 -> 33.333... -> 33.3
}

func TestAggregateThisWeekWindow(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	apps := []models.Application{
		// Inside the trailing 7-day window (2024-03-09 .. 2024-03-15).
		*models.NewApplication(owner, "today", "r", day(2024, 3, 15), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "edge", "r", day(2024, 3, 9), models.StatusApplied, "", false, nil),
		// Just outside.
		*models.NewApplication(owner, "too-old", "r", day(2024, 3, 8), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "future", "r", day(2024, 3, 16), models.StatusApplied, "", false, nil),
	}

	summary := services.Aggregate(apps, now)

	assert.Equal(t, 2, summary.ThisWeekCount)
}

func TestAggregateWeeklyVolumeBuckets(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	apps := []models.Application{
		*models.NewApplication(owner, "current", "r", day(2024, 3, 15), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "last-week", "r", day(2024, 3, 14), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "last-week-2", "r", day(2024, 3, 8), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "oldest-bucket", "r", day(2024, 1, 26), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "before-range", "r", day(2024, 1, 25), models.StatusApplied, "", false, nil),
	}

	summary := services.Aggregate(apps, now)

	require.Len(t, summary.WeeklyVolume, 8)
	// Oldest first; the last bucket starts on the current day.
	assert.Equal(t, "2024-01-26", summary.WeeklyVolume[0].WeekStart)
	assert.Equal(t, "2024-03-15", summary.WeeklyVolume[7].WeekStart)

	assert.Equal(t, 1, summary.WeeklyVolume[0].Count, "record on the oldest bucket's start day")
	assert.Equal(t, 2, summary.WeeklyVolume[6].Count, "2024-03-08 and 2024-03-14 share a bucket")
	assert.Equal(t, 1, summary.WeeklyVolume[7].Count, "record on the current day")

	total := 0
	for _, bucket := range summary.WeeklyVolume {
		total += bucket.Count
	}
	assert.Equal(t, 4, total, "record before the 8-week range is not bucketed")
}

func TestSummaryRecomputesFromStoreAndIsolatesOwners(t *testing.T) {
	store := memory.NewApplicationStore()
	cache := services.NewAnalyticsCache(nil, 0)
	svc := services.NewAnalyticsService(store, cache)
	ctx := context.Background()

	ownerA := uuid.New()
	ownerB := uuid.New()
	appsA := []models.Application{
		*models.NewApplication(ownerA, "Acme", "r", day(2024, 1, 1), models.StatusSelected, "", false, nil),
		*models.NewApplication(ownerA, "Globex", "r", day(2024, 1, 2), models.StatusApplied, "", false, nil),
	}
	appsB := []models.Application{
		*models.NewApplication(ownerB, "Umbrella", "r", day(2024, 1, 3), models.StatusRejected, "", false, nil),
	}
	require.NoError(t, store.PutAll(ctx, ownerA, appsA))
	require.NoError(t, store.PutAll(ctx, ownerB, appsB))

	summaryA, err := svc.Summary(ctx, ownerA)
	require.NoError(t, err)
	summaryB, err := svc.Summary(ctx, ownerB)
	require.NoError(t, err)

	assert.Equal(t, 2, summaryA.Total)
	assert.Equal(t, 1, summaryA.SelectedCount)
	assert.Equal(t, 50.0, summaryA.SuccessRate)

	assert.Equal(t, 1, summaryB.Total)
	assert.Equal(t, 0, summaryB.SelectedCount)
	assert.Equal(t, 1, summaryB.StatusDistribution[string(models.StatusRejected)])
}

func TestSummaryEmptyOwner(t *testing.T) {
	svc := services.NewAnalyticsService(memory.NewApplicationStore(), services.NewAnalyticsCache(nil, 0))

	summary, err := svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total)
	assert.Len(t, summary.WeeklyVolume, 8)
}
