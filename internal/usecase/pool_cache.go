package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"talent-search/internal/domain/candidate"

	"golang.org/x/sync/singleflight"
)

// PoolCache holds the full candidate pool fetched from the store. The pool is
// refreshed synchronously by whichever request finds it stale; singleflight
// collapses concurrent refreshes into one upstream fetch. A failed refresh
// resets the pool to empty instead of surfacing the error, so searches
// degrade to "no candidates found".
type PoolCache struct {
	store  candidate.Store
	ttl    time.Duration
	logger *log.Logger

	group singleflight.Group

	mu        sync.RWMutex
	data      []candidate.Candidate
	fetchedAt time.Time

	// notify is invoked after a successful refresh with the pool size.
	notify func(count int)

	now func() time.Time
}

func NewPoolCache(store candidate.Store, ttl time.Duration, logger *log.Logger) *PoolCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &PoolCache{
		store:  store,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func (p *PoolCache) SetNotify(fn func(count int)) {
	if p == nil {
		return
	}
	p.notify = fn
}

// Candidates returns a pool no older than the TTL. It never returns an error;
// the worst case is an empty pool.
func (p *PoolCache) Candidates(ctx context.Context) []candidate.Candidate {
	p.mu.RLock()
	data, fetchedAt := p.data, p.fetchedAt
	p.mu.RUnlock()

	if !fetchedAt.IsZero() && p.now().Sub(fetchedAt) <= p.ttl {
		return data
	}

	refreshed, _, _ := p.group.Do("refresh", func() (any, error) {
		return p.refresh(ctx), nil
	})
	if pool, ok := refreshed.([]candidate.Candidate); ok {
		return pool
	}
	return data
}

func (p *PoolCache) refresh(ctx context.Context) []candidate.Candidate {
	// Re-check under the flight: another caller may have refreshed while we
	// waited for the singleflight slot.
	p.mu.RLock()
	data, fetchedAt := p.data, p.fetchedAt
	p.mu.RUnlock()
	if !fetchedAt.IsZero() && p.now().Sub(fetchedAt) <= p.ttl {
		return data
	}

	fetched, err := p.store.FetchAll(ctx)
	stamp := p.now()

	if err != nil {
		if p.logger != nil {
			p.logger.Printf("[Pool] refresh failed, serving empty pool | error=%v", err)
		}
		fetched = []candidate.Candidate{}
	}

	p.mu.Lock()
	p.data = fetched
	p.fetchedAt = stamp
	p.mu.Unlock()

	if err == nil {
		if p.logger != nil {
			p.logger.Printf("[Pool] refreshed | candidates=%d", len(fetched))
		}
		if p.notify != nil {
			p.notify(len(fetched))
		}
	}
	return fetched
}
