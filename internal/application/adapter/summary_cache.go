// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SummaryCache caches computed financial summaries keyed by the query that
// produced them. Implementations must treat cache failure as a miss: the
// engine can always recompute, but must never serve a stale total after a
// write has invalidated the cache.
type SummaryCache interface {
	// Get retrieves a cached payload. A nil payload with a nil error is a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a payload under the key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// InvalidateAll removes every cached summary. Called before a record
	// write is reported successful.
	InvalidateAll(ctx context.Context) error
}
