package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-search/internal/domain/candidate"
)

func TestPoolCache_ServesWithinTTL(t *testing.T) {
	store := &mockStore{fetchAll: []candidate.Candidate{{Name: "a"}}}
	pool := NewPoolCache(store, time.Minute, nil)

	first := pool.Candidates(context.Background())
	second := pool.Candidates(context.Background())

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected the pooled candidate both times")
	}
	if store.fetchCalls != 1 {
		t.Fatalf("fresh pool must not refetch, got %d fetches", store.fetchCalls)
	}
}

func TestPoolCache_RefreshesAfterTTL(t *testing.T) {
	store := &mockStore{fetchAll: []candidate.Candidate{{Name: "a"}}}
	pool := NewPoolCache(store, time.Minute, nil)

	clock := time.Now()
	pool.now = func() time.Time { return clock }

	pool.Candidates(context.Background())
	clock = clock.Add(61 * time.Second)
	pool.Candidates(context.Background())

	if store.fetchCalls != 2 {
		t.Fatalf("stale pool must refetch, got %d fetches", store.fetchCalls)
	}
}

func TestPoolCache_FailedRefreshServesEmpty(t *testing.T) {
	store := &mockStore{fetchErr: errors.New("db down")}
	pool := NewPoolCache(store, time.Minute, nil)

	got := pool.Candidates(context.Background())

	if got == nil || len(got) != 0 {
		t.Fatalf("failed refresh must yield an empty pool, got %v", got)
	}
	if store.fetchCalls != 1 {
		t.Fatalf("expected 1 fetch, got %d", store.fetchCalls)
	}

	// The failure is stamped too, so the next call within the TTL stays empty
	// without hammering the store.
	pool.Candidates(context.Background())
	if store.fetchCalls != 1 {
		t.Fatalf("failed refresh must still honor the TTL, got %d fetches", store.fetchCalls)
	}
}

func TestPoolCache_NotifyOnSuccessOnly(t *testing.T) {
	store := &mockStore{fetchErr: errors.New("db down")}
	pool := NewPoolCache(store, time.Minute, nil)

	var notified []int
	pool.SetNotify(func(count int) { notified = append(notified, count) })

	clock := time.Now()
	pool.now = func() time.Time { return clock }

	pool.Candidates(context.Background())
	if len(notified) != 0 {
		t.Fatalf("failed refresh must not notify, got %v", notified)
	}

	store.fetchErr = nil
	store.fetchAll = []candidate.Candidate{{Name: "a"}, {Name: "b"}}
	clock = clock.Add(61 * time.Second)

	pool.Candidates(context.Background())
	if len(notified) != 1 || notified[0] != 2 {
		t.Fatalf("expected one notification with the pool size, got %v", notified)
	}
}
