package service

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"foliolink/internal/db/ent"
	"foliolink/internal/logging"
	"foliolink/internal/repository"
)

func TestMain(m *testing.M) {
	if err := logging.InitLogger(&logging.LogConfig{
		Level: "info",
		File:  filepath.Join(os.TempDir(), "foliolink-test.log"),
	}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// mockRateLimitRepository overrides individual calls per test
type mockRateLimitRepository struct {
	listSinceFunc       func(ctx context.Context, ip, endpoint string, since time.Time) ([]*ent.RateLimitEntry, error)
	createFunc          func(ctx context.Context, ip, endpoint string, at time.Time) (*ent.RateLimitEntry, error)
	deleteOlderThanFunc func(ctx context.Context, endpoint string, cutoff time.Time) (int, error)
}

func (m *mockRateLimitRepository) ListSince(ctx context.Context, ip, endpoint string, since time.Time) ([]*ent.RateLimitEntry, error) {
	if m.listSinceFunc != nil {
		return m.listSinceFunc(ctx, ip, endpoint, since)
	}
	return nil, nil
}

func (m *mockRateLimitRepository) Create(ctx context.Context, ip, endpoint string, at time.Time) (*ent.RateLimitEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, ip, endpoint, at)
	}
	return &ent.RateLimitEntry{IPAddress: ip, Endpoint: endpoint, CreatedAt: at}, nil
}

func (m *mockRateLimitRepository) DeleteOlderThan(ctx context.Context, endpoint string, cutoff time.Time) (int, error) {
	if m.deleteOlderThanFunc != nil {
		return m.deleteOlderThanFunc(ctx, endpoint, cutoff)
	}
	return 0, nil
}

// memRateLimitRepository is an in-memory store with real window semantics
type memRateLimitRepository struct {
	mu      sync.Mutex
	entries []*ent.RateLimitEntry
}

func (m *memRateLimitRepository) ListSince(ctx context.Context, ip, endpoint string, since time.Time) ([]*ent.RateLimitEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*ent.RateLimitEntry
	for _, e := range m.entries {
		if e.IPAddress == ip && e.Endpoint == endpoint && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	// Newest first, matching the real repository
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRateLimitRepository) Create(ctx context.Context, ip, endpoint string, at time.Time) (*ent.RateLimitEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := &ent.RateLimitEntry{IPAddress: ip, Endpoint: endpoint, CreatedAt: at}
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *memRateLimitRepository) DeleteOlderThan(ctx context.Context, endpoint string, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var kept []*ent.RateLimitEntry
	deleted := 0
	for _, e := range m.entries {
		if e.Endpoint == endpoint && e.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return deleted, nil
}

func (m *memRateLimitRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// mockContactMessageRepository records audit trail writes
type mockContactMessageRepository struct {
	mu      sync.Mutex
	records []repository.ContactMessageRecord
	err     error
}

func (m *mockContactMessageRepository) Create(ctx context.Context, record repository.ContactMessageRecord) (*ent.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	m.records = append(m.records, record)
	return &ent.ContactMessage{}, nil
}

// setTimeNow freezes the service clock and restores it on cleanup
func setTimeNow(t *testing.T, at time.Time) {
	t.Helper()
	original := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = original })
}
