// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is wrapped by every backend's not-found error so callers can
// tell a miss apart from a failing backend
var ErrCacheMiss = errors.New("cache miss")

// Cache is the key/value store behind the outbound response cache.
// Implementations can be Redis, in-memory, SQLite, or any other store that
// is safe for concurrent use.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a response for five minutes
//	err := cache.Set(ctx, "httpcache:GET https://api.github.com/users/octocat/gists", payload, 5*time.Minute)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "httpcache:GET https://api.github.com/users/octocat/gists")
//	if err != nil {
//		// cache miss
//	}
//
//	// Invalidate it
//	err = cache.Delete(ctx, "httpcache:GET https://api.github.com/users/octocat/gists")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns an error if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
