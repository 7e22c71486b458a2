package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"gist-search-api/pkg/config"
)

// Integration tests run only when REDIS_TEST_ADDR points at a Redis instance.
func testConfig(t *testing.T) config.RedisConfig {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST_ADDR to run")
	}
	return config.RedisConfig{
		Address:   addr,
		KeyPrefix: "gistsearch-test:",
	}
}

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	cache, err := NewRedisCache(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: ""})

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: "127.0.0.1:1"})

	if err == nil {
		t.Error("NewRedisCache should fail when Redis is unreachable")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache when unreachable")
	}
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "httpcache:GET https://api.github.com/users/octocat/gists"
	value := []byte(`[{"id":"aa5a315d61ae9438b18d"}]`)

	if err := cache.Set(ctx, key, value, time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", got, value)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestRedisCache_Get_NonExistentKey(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.Get(context.Background(), "missing")

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	if got != nil {
		t.Error("Get should return nil value for missing key")
	}
}

func TestRedisCache_Set_AppliesTTL(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "ttl-key", []byte("v"), time.Second); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	ttl, err := cache.client.TTL(ctx, cache.key("ttl-key")).Result()
	if err != nil {
		t.Fatalf("TTL returned error: %v", err)
	}
	if ttl <= 0 || ttl > time.Second {
		t.Errorf("TTL = %v, want within (0, 1s]", ttl)
	}
}

func TestRedisCache_Delete_NonExistentKey(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete should return nil for missing key, got %v", err)
	}
}
