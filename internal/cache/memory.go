package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store used when Redis is not configured and
// in tests. Expiry is checked lazily on Get. Concurrent writers race
// last-write-wins, which matches the page cache's documented cold-read
// behavior.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// SetClock overrides the time source; tests use it to force expiry.
func (ms *MemoryStore) SetClock(now func() time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.now = now
}

// Get retrieves a value; absent or expired keys return ErrCacheMiss.
func (ms *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, ok := ms.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if ms.now().After(entry.expiresAt) {
		delete(ms.entries, key)
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

// SetEx stores a value with an expiration.
func (ms *MemoryStore) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries[key] = memoryEntry{value: value, expiresAt: ms.now().Add(ttl)}
	return nil
}

// Del deletes the given keys.
func (ms *MemoryStore) Del(ctx context.Context, keys ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, key := range keys {
		delete(ms.entries, key)
	}
	return nil
}
