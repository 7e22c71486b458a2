// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-process cache on go-cache
// - cache/redis: Redis-backed cache shared between instances
// - cache/sqlite: file-backed cache that survives restarts
// - http/standard: net/http client with a per-call timeout and no retries
// - http/cached: RoundTripper that serves repeated GETs from a cache
// - http/logging: RoundTripper that logs real upstream calls
// - logger/logrus: structured logger with optional rotating file output
// - metrics: Prometheus collectors and the /metrics handler
//
// # Cache Implementations
//
// Every backend implements interfaces.Cache and wraps interfaces.ErrCacheMiss
// in its not-found error:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), time.Minute)
//	value, err := cache.Get(ctx, "key")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//	    // not cached
//	}
//
// # HTTP Stack
//
// Outbound calls flow through three layers:
//
//	standard.StandardHTTPClient   timeout, headers
//	  cached.Transport            response cache, concurrent miss collapsing
//	    logging.RoundTripper      upstream request logging
//
//	transport := cached.NewTransport(cache, cached.Options{
//	    Next:         &logging.RoundTripper{Logger: logger},
//	    FetchTimeout: 10 * time.Second,
//	    MaxBodyBytes: 10 << 20,
//	})
//	client := standard.NewStandardHTTPClientWithTransport(10*time.Second, transport)
package infrastructure
