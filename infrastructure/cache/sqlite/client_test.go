package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Client {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSQLiteCache_SetGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "httpcache:GET https://api.github.com/users/octocat/gists"
	value := []byte(`{"status":200,"body":"W10="}`)

	if err := cache.Set(ctx, key, value, time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get returned %s, want %s", got, value)
	}
}

func TestSQLiteCache_Get_Missing(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "missing")

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteCache_Get_Expired(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "short", []byte("v"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound for expired key", err)
	}

	removed, err := cache.cleanup()
	if err != nil {
		t.Fatalf("cleanup returned error: %v", err)
	}
	if removed != 1 {
		t.Errorf("cleanup removed %d rows, want 1", removed)
	}
}

func TestSQLiteCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "forever", []byte("v"), 0)

	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("Get returned error for zero-TTL key: %v", err)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("v"), time.Minute)

	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail after Delete")
	}
	if err := cache.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestSQLiteCache_KeyValidation(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
	}{
		{"empty key", ""},
		{"too long", strings.Repeat("k", maxKeyLength+1)},
		{"null byte", "key\x00suffix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cache.Set(ctx, tt.key, []byte("v"), time.Minute); err == nil {
				t.Error("Set should reject invalid key")
			}
			if _, err := cache.Get(ctx, tt.key); err == nil {
				t.Error("Get should reject invalid key")
			}
		})
	}
}

func TestSQLiteCache_InjectionLikeKeysAreStoredLiterally(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	keys := []string{
		"key'; DROP TABLE cache; --",
		"key' OR '1'='1",
		"httpcache:GET https://gist.githubusercontent.com/u/1/raw/a'b.txt",
	}

	for _, key := range keys {
		if err := cache.Set(ctx, key, []byte(key), time.Minute); err != nil {
			t.Fatalf("Set(%q) returned error: %v", key, err)
		}
	}
	for _, key := range keys {
		got, err := cache.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%q) returned error: %v", key, err)
		}
		if string(got) != key {
			t.Errorf("Get(%q) = %q", key, got)
		}
	}

	stats, err := cache.Stats()
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats["total_entries"] != len(keys) {
		t.Errorf("total_entries = %v, want %d", stats["total_entries"], len(keys))
	}
}

func TestSQLiteCache_BinaryValues(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	cache.Set(ctx, "binary", data, time.Minute)

	got, err := cache.Get(ctx, "binary")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("binary value not preserved")
	}
}

func TestSQLiteCache_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	first.Set(ctx, "key", []byte("value"), time.Hour)
	first.Close()

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("Failed to reopen cache: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "key")
	if err != nil || string(got) != "value" {
		t.Errorf("Get after reopen = %q, %v", got, err)
	}
}

func TestSQLiteCache_Clear(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"), time.Minute)
	cache.Set(ctx, "b", []byte("2"), time.Minute)

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "a"); err == nil {
		t.Error("entries should be gone after Clear")
	}
}
