package tasks

import (
	"context"
	"time"

	"foliolink/internal/logging"
	"foliolink/internal/repository"
	"foliolink/internal/service"
)

// RateLimitCleanup periodically removes rate-limit rows that have aged out
// of the sliding window. The limiter also prunes opportunistically on each
// check; this sweep keeps the table small during quiet periods.
type RateLimitCleanup struct {
	repo     repository.RateLimitRepository
	window   time.Duration
	interval time.Duration
	logger   *logging.Logger
}

// NewRateLimitCleanup creates a new cleanup task
func NewRateLimitCleanup(repo repository.RateLimitRepository, window time.Duration) *RateLimitCleanup {
	return &RateLimitCleanup{
		repo:     repo,
		window:   window,
		interval: 5 * time.Minute,
		logger:   logging.GetGlobalLogger(),
	}
}

// Start begins the cleanup task in the background
func (t *RateLimitCleanup) Start() {
	go t.runPeriodically()
}

// runPeriodically runs the cleanup task at regular intervals
func (t *RateLimitCleanup) runPeriodically() {
	// Run immediately on startup
	t.cleanup()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for range ticker.C {
		t.cleanup()
	}
}

// cleanup performs the actual sweep
func (t *RateLimitCleanup) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-t.window)
	deleted, err := t.repo.DeleteOlderThan(ctx, service.ContactFormEndpoint, cutoff)
	if err != nil {
		t.logger.Warn("rate limit cleanup sweep failed: %v", err)
		return
	}

	if deleted > 0 {
		t.logger.Info("Deleted %d expired rate limit entries", deleted)
	}
}
