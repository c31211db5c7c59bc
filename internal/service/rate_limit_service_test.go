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

func TestRateLimit_AllowsAndRecordsUnderCap(t *testing.T) {
	repo := &memRateLimitRepository{}
	svc := NewRateLimitService(repo, RateLimitConfig{})

	decision := svc.CheckAndRecord(context.Background(), "1.2.3.4")

	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, repo.count())
}

func TestRateLimit_DeniesAtCapWithoutRecording(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	setTimeNow(t, base)

	repo := &memRateLimitRepository{}
	for i := 0; i < 3; i++ {
		_, err := repo.Create(context.Background(), "1.2.3.4", ContactFormEndpoint, base.Add(-time.Duration(i*10)*time.Second))
		require.NoError(t, err)
	}

	svc := NewRateLimitService(repo, RateLimitConfig{})
	decision := svc.CheckAndRecord(context.Background(), "1.2.3.4")

	assert.False(t, decision.Allowed)
	assert.GreaterOrEqual(t, decision.RemainingSeconds, 1)
	assert.LessOrEqual(t, decision.RemainingSeconds, 120)
	// A denied submission must not consume a slot
	assert.Equal(t, 3, repo.count())
}

func TestRateLimit_IndependentPerIP(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	setTimeNow(t, base)

	repo := &memRateLimitRepository{}
	for i := 0; i < 3; i++ {
		_, err := repo.Create(context.Background(), "1.2.3.4", ContactFormEndpoint, base)
		require.NoError(t, err)
	}

	svc := NewRateLimitService(repo, RateLimitConfig{})
	decision := svc.CheckAndRecord(context.Background(), "5.6.7.8")

	assert.True(t, decision.Allowed)
}

func TestRateLimit_WindowScenario(t *testing.T) {
	// 3 submissions at t=0,30,60 succeed; t=90 is denied with ~30s
	// remaining; t=130 is allowed again once the t=0 entry has aged out.
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	current := base

	original := timeNow
	timeNow = func() time.Time { return current }
	t.Cleanup(func() { timeNow = original })

	repo := &memRateLimitRepository{}
	svc := NewRateLimitService(repo, RateLimitConfig{Window: 120 * time.Second, MaxRequests: 3})

	for _, offset := range []time.Duration{0, 30 * time.Second, 60 * time.Second} {
		current = base.Add(offset)
		decision := svc.CheckAndRecord(context.Background(), "1.2.3.4")
		require.True(t, decision.Allowed, "submission at t=%v should be allowed", offset)
	}

	current = base.Add(90 * time.Second)
	decision := svc.CheckAndRecord(context.Background(), "1.2.3.4")
	require.False(t, decision.Allowed)
	assert.Equal(t, 30, decision.RemainingSeconds)

	current = base.Add(130 * time.Second)
	decision = svc.CheckAndRecord(context.Background(), "1.2.3.4")
	assert.True(t, decision.Allowed)
}

func TestRateLimit_RemainingSecondsFlooredAtOne(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	setTimeNow(t, base)

	repo := &memRateLimitRepository{}
	// All three entries are about to age out
	for i := 0; i < 3; i++ {
		_, err := repo.Create(context.Background(), "1.2.3.4", ContactFormEndpoint, base.Add(-120*time.Second+time.Millisecond))
		require.NoError(t, err)
	}

	svc := NewRateLimitService(repo, RateLimitConfig{})
	decision := svc.CheckAndRecord(context.Background(), "1.2.3.4")

	require.False(t, decision.Allowed)
	assert.Equal(t, 1, decision.RemainingSeconds)
}

func TestRateLimit_StoreUnreachableFailsOpen(t *testing.T) {
	repo := &mockRateLimitRepository{
		listSinceFunc: func(ctx context.Context, ip, endpoint string, since time.Time) ([]*ent.RateLimitEntry, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewRateLimitService(repo, RateLimitConfig{})
	decision := svc.CheckAndRecord(context.Background(), "1.2.3.4")

	assert.True(t, decision.Allowed)
}

func TestRateLimit_PruneFailureIsNonFatal(t *testing.T) {
	repo := &memRateLimitRepository{}
	failing := &mockRateLimitRepository{
		deleteOlderThanFunc: func(ctx context.Context, endpoint string, cutoff time.Time) (int, error) {
			return 0, errors.New("lock timeout")
		},
		listSinceFunc: repo.ListSince,
		createFunc:    repo.Create,
	}

	svc := NewRateLimitService(failing, RateLimitConfig{})
	decision := svc.CheckAndRecord(context.Background(), "1.2.3.4")

	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, repo.count())
}
