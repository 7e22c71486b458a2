// ABOUTME: Configuration options for the gist search library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package gistsearch

import (
	"time"

	"gist-search-api/core/gists"
	"gist-search-api/core/interfaces"
	"gist-search-api/core/search"
	"gist-search-api/core/workers"
	"gist-search-api/infrastructure/http/cached"
	"gist-search-api/infrastructure/http/standard"
	"gist-search-api/infrastructure/logger/logrus"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom response cache. The caller keeps ownership and
// closes it after the client.
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		c.DisableCache = false
		return nil
	}
}

// WithoutCache sends every request upstream
func WithoutCache() Option {
	return func(c *Config) error {
		c.Cache = nil
		c.DisableCache = true
		return nil
	}
}

// WithCacheTTL sets how long successful upstream responses are reused
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return NewError(ErrorTypeConfiguration, "cache TTL must be positive").
				WithContext("ttl", ttl.String())
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client. A custom client bypasses the
// response cache and the timeout option.
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics records searches, upstream calls and cache lookups
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithTimeout bounds each outbound call
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithConcurrency sets how many gists are fetched in parallel.
// 1 fetches gists one after another.
func WithConcurrency(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "concurrency must be at least 1").
				WithContext("concurrency", n)
		}
		c.Concurrency = n
		return nil
	}
}

// WithMaxContentBytes caps how much of a single raw file is read
func WithMaxContentBytes(n int64) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewError(ErrorTypeConfiguration, "max content bytes must be positive").
				WithContext("max_content_bytes", n)
		}
		c.MaxContentBytes = n
		return nil
	}
}

// WithAPIBaseURL points the client at another gist API, such as a
// GitHub Enterprise host or a test server
func WithAPIBaseURL(url string) Option {
	return func(c *Config) error {
		c.APIBaseURL = url
		return nil
	}
}

// WithGistBaseURL sets the root used to build public gist URLs
func WithGistBaseURL(url string) Option {
	return func(c *Config) error {
		c.GistBaseURL = url
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Logger:          logrus.NewLogger("info", "text"),
		APIBaseURL:      gists.DefaultAPIBaseURL,
		GistBaseURL:     search.DefaultGistBaseURL,
		Timeout:         standard.DefaultTimeout,
		CacheTTL:        cached.DefaultTTL,
		Concurrency:     workers.DefaultWorkerConfig().MaxWorkers,
		MaxContentBytes: gists.DefaultMaxContentBytes,
	}
}
