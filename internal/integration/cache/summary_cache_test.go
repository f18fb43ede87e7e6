package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisSummaryCache, *miniredis.Miniredis) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSummaryCache(client), mini
}

func TestRedisSummaryCacheGetMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	payload, err := cache.Get(context.Background(), "summary:month::all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload on miss, got %q", payload)
	}
}

func TestRedisSummaryCacheSetAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	want := []byte(`{"period":"month"}`)
	if err := cache.Set(ctx, "summary:month::all", want, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, "summary:month::all")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRedisSummaryCacheExpiry(t *testing.T) {
	cache, mini := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "summary:week::all", []byte("x"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mini.FastForward(2 * time.Minute)

	payload, err := cache.Get(ctx, "summary:week::all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != nil {
		t.Errorf("expected expired key to miss, got %q", payload)
	}
}

func TestRedisSummaryCacheInvalidateAll(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	keys := []string{"summary:month::all", "summary:week:feed:all", "summary:year::pending"}
	for _, key := range keys {
		if err := cache.Set(ctx, key, []byte("x"), time.Minute); err != nil {
			t.Fatalf("set %s failed: %v", key, err)
		}
	}

	if err := cache.InvalidateAll(ctx); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	for _, key := range keys {
		payload, err := cache.Get(ctx, key)
		if err != nil {
			t.Fatalf("get %s failed: %v", key, err)
		}
		if payload != nil {
			t.Errorf("expected %s to be removed", key)
		}
	}
}

func TestRedisSummaryCacheInvalidateAllEmpty(t *testing.T) {
	cache, _ := newTestCache(t)

	if err := cache.InvalidateAll(context.Background()); err != nil {
		t.Fatalf("invalidate on empty cache failed: %v", err)
	}
}
