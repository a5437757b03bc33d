package usecase

import (
	"context"
	"time"
)

// SearchCache is the short-lived scored-result cache. Implementations must
// treat unavailability as a miss, never as an error the caller has to handle.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
