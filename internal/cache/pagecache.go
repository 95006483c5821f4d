package cache

import (
	"context"
	"time"

	"github.com/quillhub/backend/internal/logger"
	"go.uber.org/zap"
)

// IndexPageKey is the single cache key: the serialized first page of the
// global feed. The entry is deliberately not keyed per viewer.
const IndexPageKey = "feed:index:page:1"

// PageCache holds the rendered first page of the global feed for a fixed
// wall-clock duration. Invalidation is time-based only: post mutations do
// NOT clear it, expiry and the explicit administrative Clear do. Racing
// cold reads may each compute and store; last write wins, and since the
// stored value is a pure function of store state at read time that race is
// documented and harmless.
type PageCache struct {
	store Store
	ttl   time.Duration
}

// NewPageCache creates a page cache over the given store with a fixed TTL.
func NewPageCache(store Store, ttl time.Duration) *PageCache {
	return &PageCache{store: store, ttl: ttl}
}

// TTL returns the configured cache window.
func (pc *PageCache) TTL() time.Duration {
	return pc.ttl
}

// Get returns the cached page body, or found=false on a miss. Backend
// errors degrade to a miss so a broken cache never breaks reads.
func (pc *PageCache) Get(ctx context.Context) (body []byte, found bool) {
	value, err := pc.store.Get(ctx, IndexPageKey)
	if err != nil {
		if err != ErrCacheMiss {
			logger.Log.Warn("Page cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return value, true
}

// Set stores the rendered page body for the cache window.
func (pc *PageCache) Set(ctx context.Context, body []byte) {
	if len(body) == 0 {
		return
	}
	if err := pc.store.SetEx(ctx, IndexPageKey, body, pc.ttl); err != nil {
		logger.Log.Warn("Page cache write failed", zap.Error(err))
	}
}

// Clear drops the cached page immediately. This is the only event-driven
// invalidation the design allows.
func (pc *PageCache) Clear(ctx context.Context) error {
	return pc.store.Del(ctx, IndexPageKey)
}
