package service

import (
	"context"
	"math"
	"time"

	"foliolink/internal/logging"
	"foliolink/internal/repository"
)

// ContactFormEndpoint keys rate-limit rows written by the contact pipeline.
const ContactFormEndpoint = "contact_form"

// timeNow is swapped out in tests
var timeNow = time.Now

// RateLimitConfig holds the sliding-window parameters.
type RateLimitConfig struct {
	// Window is the trailing interval the cap applies to.
	Window time.Duration
	// MaxRequests is the cap per (ip, endpoint) within the window.
	MaxRequests int
}

// RateLimitDecision is the outcome of one check.
type RateLimitDecision struct {
	Allowed          bool
	RemainingSeconds int
}

// RateLimitService enforces a persistent sliding-window cap per client IP.
//
// The check-then-insert sequence is not transactionally isolated, so
// concurrent submissions from the same IP can slip past the cap. That is the
// accepted approximate-limiter semantic.
type RateLimitService struct {
	repo   repository.RateLimitRepository
	config RateLimitConfig
	logger *logging.Logger
}

// NewRateLimitService creates a new rate limit service
func NewRateLimitService(repo repository.RateLimitRepository, config RateLimitConfig) *RateLimitService {
	if config.Window == 0 {
		config.Window = 120 * time.Second
	}
	if config.MaxRequests == 0 {
		config.MaxRequests = 3
	}
	return &RateLimitService{
		repo:   repo,
		config: config,
		logger: logging.GetGlobalLogger(),
	}
}

// CheckAndRecord checks whether the IP is under the cap and, if so, records
// the submission. If the store is unreachable the request is allowed:
// availability of the contact form outweighs strict enforcement while the
// limiter itself is degraded.
func (s *RateLimitService) CheckAndRecord(ctx context.Context, ip string) RateLimitDecision {
	now := timeNow()
	cutoff := now.Add(-s.config.Window)

	// Best-effort prune. Stale rows only ever make future windows more
	// conservative, never less.
	if _, err := s.repo.DeleteOlderThan(ctx, ContactFormEndpoint, cutoff); err != nil {
		s.logger.Warn("rate limit prune failed: %v", err)
	}

	entries, err := s.repo.ListSince(ctx, ip, ContactFormEndpoint, cutoff)
	if err != nil {
		s.logger.Warn("rate limit store unreachable, allowing submission from %s: %v", ip, err)
		return RateLimitDecision{Allowed: true}
	}

	if len(entries) >= s.config.MaxRequests {
		// Entries are newest first; the window reopens when the oldest
		// counted entry ages out.
		oldest := entries[len(entries)-1]
		remaining := int(math.Ceil(oldest.CreatedAt.Add(s.config.Window).Sub(now).Seconds()))
		if remaining < 1 {
			remaining = 1
		}
		return RateLimitDecision{Allowed: false, RemainingSeconds: remaining}
	}

	if _, err := s.repo.Create(ctx, ip, ContactFormEndpoint, now); err != nil {
		s.logger.Warn("failed to record rate limit entry for %s: %v", ip, err)
	}

	return RateLimitDecision{Allowed: true}
}
