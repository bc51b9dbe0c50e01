package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipe-ideas/internal/infrastructure/config"
	"recipe-ideas/internal/pkg/common"
)

func newTestCache(t *testing.T, maxSize int, ttl time.Duration) *memoryCache {
	t.Helper()
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Backend = config.CacheBackendMemory
	cfg.Cache.MaxSize = maxSize
	cfg.Cache.TTL = ttl
	cfg.Cache.CleanupInterval = time.Hour

	c := newMemoryCache(cfg)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := newTestCache(t, 10, time.Minute)
	ctx := context.Background()

	if _, err := c.Get(ctx, "prompt-a"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("expected cache miss, got %v", err)
	}

	if err := c.Set(ctx, "prompt-a", "answer-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := c.Get(ctx, "prompt-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "answer-a" {
		t.Fatalf("got %q, want answer-a", got)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := newTestCache(t, 10, 10*time.Millisecond)
	ctx := context.Background()

	if err := c.Set(ctx, "prompt-a", "answer-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := c.Get(ctx, "prompt-a"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("expected cache miss after expiry, got %v", err)
	}
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	c := newTestCache(t, 2, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Set(ctx, "b", "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// b 變成較常用
	if _, err := c.Get(ctx, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 容量已滿，寫入第三筆會淘汰最少使用的 a
	if err := c.Set(ctx, "c", "3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Get(ctx, "a"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("expected a to be evicted, got %v", err)
	}
	if _, err := c.Get(ctx, "b"); err != nil {
		t.Fatalf("b should survive eviction: %v", err)
	}
}

func TestMemoryCacheStats(t *testing.T) {
	c := newTestCache(t, 10, time.Minute)
	ctx := context.Background()

	_, _ = c.Get(ctx, "prompt-a") // 未命中
	if err := c.Set(ctx, "prompt-a", "answer-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Get(ctx, "prompt-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := c.Stats()
	if stats["hits"] != int64(1) {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"] != int64(1) {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
	if stats["size"] != 1 {
		t.Errorf("size = %v, want 1", stats["size"])
	}
	if stats["hit_ratio"] != 0.5 {
		t.Errorf("hit_ratio = %v, want 0.5", stats["hit_ratio"])
	}
}

func TestNewManagerDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	c, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Fatal("expected nil cache when disabled")
	}
}

func TestNewManagerUnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Backend = "etcd"

	if _, err := NewManager(cfg); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
