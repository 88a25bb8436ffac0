package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
)

func newTestStore(rps float64, burst int) *MemoryStore {
	return NewMemoryStore(rps, burst, zerowrap.Default())
}

func TestMemoryStore_Allow_WithinLimit(t *testing.T) {
	store := newTestStore(10, 10)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		assert.True(t, store.Allow(ctx, "test"), "request %d should be allowed", i+1)
	}
}

func TestMemoryStore_Allow_ExceedsLimit(t *testing.T) {
	store := newTestStore(1, 1)
	ctx := context.Background()

	assert.True(t, store.Allow(ctx, "test"), "first request should be allowed")
	assert.False(t, store.Allow(ctx, "test"), "second request should be rate limited")
}

func TestMemoryStore_Allow_Refill(t *testing.T) {
	store := newTestStore(10, 5)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		assert.True(t, store.Allow(ctx, "test"), "burst request %d should be allowed", i+1)
	}
	assert.False(t, store.Allow(ctx, "test"), "request exceeding burst should be rate limited")

	// 10 rps refills one token every 100ms.
	now = now.Add(150 * time.Millisecond)
	assert.True(t, store.Allow(ctx, "test"), "request after refill should be allowed")
}

func TestMemoryStore_Allow_IndependentKeys(t *testing.T) {
	store := newTestStore(1, 1)
	ctx := context.Background()

	assert.True(t, store.Allow(ctx, "ip:10.0.0.1"))
	assert.False(t, store.Allow(ctx, "ip:10.0.0.1"))
	assert.True(t, store.Allow(ctx, "ip:10.0.0.2"))
	assert.False(t, store.Allow(ctx, "ip:10.0.0.2"))
}

func TestMemoryStore_Sweep(t *testing.T) {
	store := newTestStore(1, 1)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Allow(ctx, "old")
	now = now.Add(10 * time.Minute)
	store.Allow(ctx, "fresh")

	removed := store.Sweep(5 * time.Minute)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
	// A swept key starts over with a full bucket.
	assert.True(t, store.Allow(ctx, "old"))
}

func TestMemoryStore_RunSweeper_StopsOnCancel(t *testing.T) {
	store := newTestStore(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.RunSweeper(ctx, time.Millisecond, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := newTestStore(1000, 100)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Allow(ctx, "shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed, 100)
	assert.LessOrEqual(t, allowed, 200)
}
