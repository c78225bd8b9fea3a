package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"applytrack-api/internal/models"
	"applytrack-api/internal/storage"
	"applytrack-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const weeklyVolumeBuckets = 8

// AnalyticsCache stores aggregated summaries per owner in Redis with a
// short TTL. A nil client disables caching entirely; every method is a
// no-op then, so tests and cache-less deployments need no special casing.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates a cache around the given client. client may be nil.
func NewAnalyticsCache(client *redis.Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{client: client, ttl: ttl}
}

func (c *AnalyticsCache) key(ownerID uuid.UUID) string {
	return fmt.Sprintf("analytics:summary:%s", ownerID)
}

// Get returns the cached summary for the owner, or nil on miss or error.
func (c *AnalyticsCache) Get(ctx context.Context, ownerID uuid.UUID) *dto.AnalyticsSummary {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("AnalyticsCache: Error reading summary for owner %s: %v", ownerID, err)
		}
		return nil
	}
	var summary dto.AnalyticsSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		log.Printf("AnalyticsCache: Error decoding cached summary for owner %s: %v", ownerID, err)
		return nil
	}
	return &summary
}

// Set stores the summary. Cache failures are logged, never propagated.
func (c *AnalyticsCache) Set(ctx context.Context, ownerID uuid.UUID, summary *dto.AnalyticsSummary) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		log.Printf("AnalyticsCache: Error encoding summary for owner %s: %v", ownerID, err)
		return
	}
	if err := c.client.Set(ctx, c.key(ownerID), raw, c.ttl).Err(); err != nil {
		log.Printf("AnalyticsCache: Error caching summary for owner %s: %v", ownerID, err)
	}
}

// Invalidate drops the owner's cached summary after a mutation.
func (c *AnalyticsCache) Invalidate(ctx context.Context, ownerID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.key(ownerID)).Err(); err != nil {
		log.Printf("AnalyticsCache: Error invalidating summary for owner %s: %v", ownerID, err)
	}
}

type analyticsService struct {
	repo  storage.ApplicationRepository
	cache *AnalyticsCache
	now   func() time.Time
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(repo storage.ApplicationRepository, cache *AnalyticsCache) AnalyticsService {
	return &analyticsService{repo: repo, cache: cache, now: time.Now}
}

// Summary returns the owner's dashboard aggregate, recomputed in full from
// the record set unless a fresh cached copy exists.
func (s *analyticsService) Summary(ctx context.Context, ownerID uuid.UUID) (*dto.AnalyticsSummary, error) {
	if cached := s.cache.Get(ctx, ownerID); cached != nil {
		return cached, nil
	}

	apps, err := s.repo.GetAll(ctx, ownerID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("loading records for analytics for owner %s", ownerID))
	}
	for i := range apps {
		apps[i].Normalize(ownerID)
	}

	summary := Aggregate(apps, s.now())
	s.cache.Set(ctx, ownerID, &summary)
	return &summary, nil
}

// Aggregate derives the full summary from a record set. Pure: no caching,
// no I/O, safe to call with an empty (or nil) slice.
func Aggregate(apps []models.Application, now time.Time) dto.AnalyticsSummary {
	summary := dto.AnalyticsSummary{
		Total:              len(apps),
		StatusDistribution: make(map[string]int, len(models.AllStatuses)),
		WeeklyVolume:       make([]dto.WeekBucket, 0, weeklyVolumeBuckets),
	}
	for _, status := range models.AllStatuses {
		summary.StatusDistribution[string(status)] = 0
	}

	today := midnight(now)
	// Trailing 7-day window: the six prior calendar days plus today.
	weekAgo := today.AddDate(0, 0, -6)

	for _, app := range apps {
		summary.StatusDistribution[string(app.Status)]++
		switch app.Status {
		case models.StatusInterview:
			summary.InterviewCount++
		case models.StatusSelected:
			summary.InterviewCount++
			summary.SelectedCount++
		}
		if !app.DateApplied.Before(weekAgo) && !app.DateApplied.After(now) {
			summary.ThisWeekCount++
		}
	}

	if summary.Total > 0 {
		rate := float64(summary.SelectedCount) / float64(summary.Total) * 100
		summary.SuccessRate = math.Round(rate*10) / 10
	}

	// Eight non-overlapping 7-day windows, oldest first, the last one
	// containing now. Boundaries are midnight-aligned to the current day.
	for i := weeklyVolumeBuckets - 1; i >= 0; i-- {
		weekStart := today.AddDate(0, 0, -7*i)
		weekEnd := weekStart.AddDate(0, 0, 7)
		count := 0
		for _, app := range apps {
			if !app.DateApplied.Before(weekStart) && app.DateApplied.Before(weekEnd) {
				count++
			}
		}
		summary.WeeklyVolume = append(summary.WeeklyVolume, dto.WeekBucket{
			WeekStart: weekStart.Format(DateLayout),
			Count:     count,
		})
	}

	return summary
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
