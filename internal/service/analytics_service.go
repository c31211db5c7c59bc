package service

import (
	"context"
	"time"

	"foliolink/internal/api/dto/v1/analytics"
	"foliolink/internal/logging"
	"foliolink/internal/repository"
)

// Aggregation periods accepted by the analytics API
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// AnalyticsService records public portfolio page views and aggregates them
// into day/week/month buckets.
type AnalyticsService struct {
	views  repository.PageViewRepository
	logger *logging.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(views repository.PageViewRepository) *AnalyticsService {
	return &AnalyticsService{
		views:  views,
		logger: logging.GetGlobalLogger(),
	}
}

// Track records a single page view
func (s *AnalyticsService) Track(ctx context.Context, username, path, referrer string) error {
	_, err := s.views.Create(ctx, username, path, referrer)
	return err
}

// Aggregate returns view counts bucketed by the given period: the last 30
// days, 12 weeks, or 12 months, oldest bucket first with gaps zero-filled.
func (s *AnalyticsService) Aggregate(ctx context.Context, username, period string) (*analytics.StatsResponse, error) {
	now := timeNow()

	var since time.Time
	switch period {
	case PeriodDay:
		since = startOfDay(now).AddDate(0, 0, -29)
	case PeriodWeek:
		since = startOfWeek(now).AddDate(0, 0, -7*11)
	case PeriodMonth:
		since = startOfMonth(now).AddDate(0, -11, 0)
	default:
		return nil, ErrInvalidPeriod
	}

	views, err := s.views.ListSince(ctx, username, since)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, v := range views {
		counts[bucketLabel(v.VisitedAt, period)]++
	}

	stats := &analytics.StatsResponse{
		Username: username,
		Period:   period,
		Total:    len(views),
		Buckets:  make([]analytics.Bucket, 0),
	}

	for cursor := since; !cursor.After(now); cursor = nextBucket(cursor, period) {
		label := bucketLabel(cursor, period)
		stats.Buckets = append(stats.Buckets, analytics.Bucket{
			Label: label,
			Count: counts[label],
		})
	}

	return stats, nil
}

func bucketLabel(t time.Time, period string) string {
	switch period {
	case PeriodWeek:
		return startOfWeek(t).Format("2006-01-02")
	case PeriodMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

func nextBucket(t time.Time, period string) time.Time {
	switch period {
	case PeriodWeek:
		return t.AddDate(0, 0, 7)
	case PeriodMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return startOfDay(t).AddDate(0, 0, -(weekday - 1))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
