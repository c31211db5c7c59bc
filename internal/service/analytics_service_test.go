package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"foliolink/internal/db/ent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPageViewRepository overrides individual calls per test
type mockPageViewRepository struct {
	createFunc    func(ctx context.Context, username, path, referrer string) (*ent.PageView, error)
	listSinceFunc func(ctx context.Context, username string, since time.Time) ([]*ent.PageView, error)
}

func (m *mockPageViewRepository) Create(ctx context.Context, username, path, referrer string) (*ent.PageView, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, username, path, referrer)
	}
	return &ent.PageView{Username: username, Path: path, Referrer: referrer}, nil
}

func (m *mockPageViewRepository) ListSince(ctx context.Context, username string, since time.Time) ([]*ent.PageView, error) {
	if m.listSinceFunc != nil {
		return m.listSinceFunc(ctx, username, since)
	}
	return nil, nil
}

func TestAnalyticsTrack(t *testing.T) {
	var gotUsername, gotPath string
	repo := &mockPageViewRepository{
		createFunc: func(ctx context.Context, username, path, referrer string) (*ent.PageView, error) {
			gotUsername, gotPath = username, path
			return &ent.PageView{}, nil
		},
	}

	svc := NewAnalyticsService(repo)
	err := svc.Track(context.Background(), "janedoe", "/projects", "https://google.com")

	require.NoError(t, err)
	assert.Equal(t, "janedoe", gotUsername)
	assert.Equal(t, "/projects", gotPath)
}

func TestAnalyticsAggregate_InvalidPeriod(t *testing.T) {
	svc := NewAnalyticsService(&mockPageViewRepository{})

	_, err := svc.Aggregate(context.Background(), "janedoe", "year")

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestAnalyticsAggregate_DailyBuckets(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	setTimeNow(t, now)

	repo := &mockPageViewRepository{
		listSinceFunc: func(ctx context.Context, username string, since time.Time) ([]*ent.PageView, error) {
			return []*ent.PageView{
				{Username: username, VisitedAt: now.AddDate(0, 0, -3)},
				{Username: username, VisitedAt: now.AddDate(0, 0, -3).Add(2 * time.Hour)},
				{Username: username, VisitedAt: now},
			}, nil
		},
	}

	svc := NewAnalyticsService(repo)
	stats, err := svc.Aggregate(context.Background(), "janedoe", PeriodDay)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Len(t, stats.Buckets, 30)

	byLabel := make(map[string]int)
	for _, b := range stats.Buckets {
		byLabel[b.Label] = b.Count
	}
	assert.Equal(t, 2, byLabel["2026-08-17"])
	assert.Equal(t, 1, byLabel["2026-08-20"])
	assert.Equal(t, 0, byLabel["2026-08-19"])
}

func TestAnalyticsAggregate_MonthlyBuckets(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	setTimeNow(t, now)

	repo := &mockPageViewRepository{
		listSinceFunc: func(ctx context.Context, username string, since time.Time) ([]*ent.PageView, error) {
			return []*ent.PageView{
				{Username: username, VisitedAt: time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)},
				{Username: username, VisitedAt: time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)},
				{Username: username, VisitedAt: now},
			}, nil
		},
	}

	svc := NewAnalyticsService(repo)
	stats, err := svc.Aggregate(context.Background(), "janedoe", PeriodMonth)

	require.NoError(t, err)
	assert.Len(t, stats.Buckets, 12)

	byLabel := make(map[string]int)
	for _, b := range stats.Buckets {
		byLabel[b.Label] = b.Count
	}
	assert.Equal(t, 2, byLabel["2026-06"])
	assert.Equal(t, 1, byLabel["2026-08"])
}

func TestAnalyticsAggregate_WeeklyBucketsAlignToMonday(t *testing.T) {
	// 2026-08-20 is a Thursday; its week starts Monday 2026-08-17
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	setTimeNow(t, now)

	repo := &mockPageViewRepository{
		listSinceFunc: func(ctx context.Context, username string, since time.Time) ([]*ent.PageView, error) {
			return []*ent.PageView{
				{Username: username, VisitedAt: time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}

	svc := NewAnalyticsService(repo)
	stats, err := svc.Aggregate(context.Background(), "janedoe", PeriodWeek)

	require.NoError(t, err)
	assert.Len(t, stats.Buckets, 12)
	assert.Equal(t, "2026-08-17", stats.Buckets[len(stats.Buckets)-1].Label)
	assert.Equal(t, 1, stats.Buckets[len(stats.Buckets)-1].Count)
}

func TestAnalyticsAggregate_StoreError(t *testing.T) {
	repo := &mockPageViewRepository{
		listSinceFunc: func(ctx context.Context, username string, since time.Time) ([]*ent.PageView, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewAnalyticsService(repo)
	_, err := svc.Aggregate(context.Background(), "janedoe", PeriodDay)

	assert.Error(t, err)
}
