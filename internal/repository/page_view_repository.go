package repository

import (
	"context"
	"time"

	"foliolink/internal/db/ent"
	"foliolink/internal/db/ent/pageview"
)

// pageViewRepository implements PageViewRepository interface
type pageViewRepository struct {
	client *ent.Client
}

// NewPageViewRepository creates a new PageViewRepository instance
func NewPageViewRepository(client *ent.Client) PageViewRepository {
	return &pageViewRepository{
		client: client,
	}
}

// Create records a single page view
func (r *pageViewRepository) Create(ctx context.Context, username, path, referrer string) (*ent.PageView, error) {
	create := r.client.PageView.Create().
		SetUsername(username).
		SetPath(path)
	if referrer != "" {
		create.SetReferrer(referrer)
	}
	return create.Save(ctx)
}

// ListSince returns views for a portfolio visited at or after the given time, oldest first
func (r *pageViewRepository) ListSince(ctx context.Context, username string, since time.Time) ([]*ent.PageView, error) {
	return r.client.PageView.Query().
		Where(
			pageview.Username(username),
			pageview.VisitedAtGTE(since),
		).
		Order(ent.Asc(pageview.FieldVisitedAt)).
		All(ctx)
}
