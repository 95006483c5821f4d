package cache

import (
	"context"
	"testing"
	"time"

	"github.com/quillhub/backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCacheRoundTrip(t *testing.T) {
	logger.InitializeForTests()
	ctx := context.Background()

	pages := NewPageCache(NewMemoryStore(), 20*time.Second)

	_, found := pages.Get(ctx)
	assert.False(t, found, "empty cache should miss")

	pages.Set(ctx, []byte(`{"page":1}`))

	body, found := pages.Get(ctx)
	require.True(t, found)
	assert.Equal(t, []byte(`{"page":1}`), body)
}

func TestPageCacheExpires(t *testing.T) {
	logger.InitializeForTests()
	ctx := context.Background()

	store := NewMemoryStore()
	pages := NewPageCache(store, 20*time.Second)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return now })

	pages.Set(ctx, []byte("cached body"))

	// Inside the window the entry survives.
	now = now.Add(19 * time.Second)
	_, found := pages.Get(ctx)
	assert.True(t, found)

	// Past the window it is gone.
	now = now.Add(2 * time.Second)
	_, found = pages.Get(ctx)
	assert.False(t, found)
}

func TestPageCacheClear(t *testing.T) {
	logger.InitializeForTests()
	ctx := context.Background()

	pages := NewPageCache(NewMemoryStore(), 20*time.Second)
	pages.Set(ctx, []byte("cached body"))

	require.NoError(t, pages.Clear(ctx))

	_, found := pages.Get(ctx)
	assert.False(t, found, "clear must take effect immediately")
}

func TestPageCacheSkipsEmptyBody(t *testing.T) {
	logger.InitializeForTests()
	ctx := context.Background()

	pages := NewPageCache(NewMemoryStore(), 20*time.Second)
	pages.Set(ctx, nil)

	_, found := pages.Get(ctx)
	assert.False(t, found)
}

func TestMemoryStoreMissIsErrCacheMiss(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
