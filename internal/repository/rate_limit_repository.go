package repository

import (
	"context"
	"time"

	"foliolink/internal/db/ent"
	"foliolink/internal/db/ent/ratelimitentry"
)

// rateLimitRepository implements RateLimitRepository interface
type rateLimitRepository struct {
	client *ent.Client
}

// NewRateLimitRepository creates a new RateLimitRepository instance
func NewRateLimitRepository(client *ent.Client) RateLimitRepository {
	return &rateLimitRepository{
		client: client,
	}
}

// ListSince returns entries for an ip+endpoint created at or after the given time, newest first
func (r *rateLimitRepository) ListSince(ctx context.Context, ip, endpoint string, since time.Time) ([]*ent.RateLimitEntry, error) {
	return r.client.RateLimitEntry.Query().
		Where(
			ratelimitentry.IPAddress(ip),
			ratelimitentry.Endpoint(endpoint),
			ratelimitentry.CreatedAtGTE(since),
		).
		Order(ent.Desc(ratelimitentry.FieldCreatedAt)).
		All(ctx)
}

// Create records a new entry stamped with the given time
func (r *rateLimitRepository) Create(ctx context.Context, ip, endpoint string, at time.Time) (*ent.RateLimitEntry, error) {
	return r.client.RateLimitEntry.Create().
		SetIPAddress(ip).
		SetEndpoint(endpoint).
		SetCreatedAt(at).
		Save(ctx)
}

// DeleteOlderThan removes entries for an endpoint created before the cutoff
func (r *rateLimitRepository) DeleteOlderThan(ctx context.Context, endpoint string, cutoff time.Time) (int, error) {
	return r.client.RateLimitEntry.Delete().
		Where(
			ratelimitentry.Endpoint(endpoint),
			ratelimitentry.CreatedAtLT(cutoff),
		).
		Exec(ctx)
}
