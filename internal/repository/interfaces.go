package repository

import (
	"context"
	"time"

	"foliolink/internal/db/ent"
)

// RateLimitRepository handles persistence of rate-limit rows
type RateLimitRepository interface {
	// ListSince returns entries for an ip+endpoint created at or after the
	// given time, newest first.
	ListSince(ctx context.Context, ip, endpoint string, since time.Time) ([]*ent.RateLimitEntry, error)
	// Create records a new entry stamped with the given time.
	Create(ctx context.Context, ip, endpoint string, at time.Time) (*ent.RateLimitEntry, error)
	// DeleteOlderThan removes entries for an endpoint created before the
	// cutoff and reports how many rows were deleted.
	DeleteOlderThan(ctx context.Context, endpoint string, cutoff time.Time) (int, error)
}

// ContactMessageRecord carries the fields stored in the submission audit trail.
type ContactMessageRecord struct {
	SenderName     string
	SenderEmail    string
	Message        string
	RecipientEmail string
	RecipientName  string
	IPAddress      string
	UserAgent      string
}

// ContactMessageRepository handles the append-only submission audit trail
type ContactMessageRepository interface {
	Create(ctx context.Context, record ContactMessageRecord) (*ent.ContactMessage, error)
}

// PageViewRepository handles persistence of portfolio page views
type PageViewRepository interface {
	Create(ctx context.Context, username, path, referrer string) (*ent.PageView, error)
	// ListSince returns views for a portfolio visited at or after the given
	// time, oldest first.
	ListSince(ctx context.Context, username string, since time.Time) ([]*ent.PageView, error)
}
