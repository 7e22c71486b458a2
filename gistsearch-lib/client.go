// ABOUTME: Main client for the gist search library
// ABOUTME: Offers the search pipeline without the HTTP server, with caching and logging wired in

package gistsearch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"gist-search-api/core/domain"
	"gist-search-api/core/gists"
	"gist-search-api/core/interfaces"
	"gist-search-api/core/search"
	"gist-search-api/infrastructure/cache/memory"
	"gist-search-api/infrastructure/http/cached"
	"gist-search-api/infrastructure/http/logging"
	"gist-search-api/infrastructure/http/standard"
)

// Client is the main entry point for the gist search library
type Client struct {
	searchService *search.SearchService
	transport     *cached.Transport
	deps          interfaces.Dependencies
	config        Config

	mu     sync.RWMutex
	closed bool
}

// Config holds the configuration for the client
type Config struct {
	// Cache stores successful upstream responses
	Cache interfaces.Cache

	// DisableCache sends every request upstream
	DisableCache bool

	// CacheTTL is how long a cached response is reused
	CacheTTL time.Duration

	// HTTPClient replaces the built-in cached client
	HTTPClient interfaces.HTTPClient

	// Logger configuration
	Logger interfaces.Logger

	// Metrics is optional
	Metrics interfaces.Metrics

	// APIBaseURL is the gist API root
	APIBaseURL string

	// GistBaseURL is the root of public gist URLs in results
	GistBaseURL string

	// Timeout bounds each outbound call
	Timeout time.Duration

	// Concurrency is the number of gists fetched in parallel
	Concurrency int

	// MaxContentBytes caps how much of one raw file is read
	MaxContentBytes int64

	// closers are resources created by options and released by Close
	closers []io.Closer
}

// NewClient creates a new gist search client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			closeAll(config.closers)
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		closeAll(config.closers)
		return nil, err
	}

	client := &Client{config: config}

	httpClient := config.HTTPClient
	if httpClient == nil {
		var rt http.RoundTripper = &logging.RoundTripper{Logger: config.Logger}
		if !config.DisableCache {
			if config.Cache == nil {
				config.Cache = memory.NewMemoryCache()
				client.config.Cache = config.Cache
			}
			client.transport = cached.NewTransport(config.Cache, cached.Options{
				Next:         rt,
				TTL:          config.CacheTTL,
				FetchTimeout: config.Timeout,
				MaxBodyBytes: bodyLimit(config.MaxContentBytes),
				Logger:       config.Logger,
				Metrics:      config.Metrics,
			})
			rt = client.transport
		}
		httpClient = standard.NewStandardHTTPClientWithTransport(config.Timeout, rt)
	}

	client.deps = interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	}

	gistService := gists.NewService(client.deps, gists.Options{
		APIBaseURL:      config.APIBaseURL,
		MaxContentBytes: config.MaxContentBytes,
	})
	client.searchService = search.NewSearchService(client.deps, gistService, search.Options{
		GistBaseURL: config.GistBaseURL,
		Concurrency: config.Concurrency,
	})

	return client, nil
}

// Search returns the public URLs of username's gists whose content matches
// pattern. Gists whose files could not be fetched are listed in Skipped.
func (c *Client) Search(ctx context.Context, username, pattern string) (*Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrClientClosed
	}

	result := c.searchService.Search(ctx, domain.SearchRequest{
		Username: username,
		Pattern:  pattern,
	})
	if result.Failed() {
		return nil, NewError(classify(result.Err), result.Message).
			WithCause(result.Err).
			WithContext("username", username).
			WithContext("pattern", pattern)
	}

	return domainResultToPublic(result), nil
}

// SearchService exposes the underlying service for the HTTP layer
func (c *Client) SearchService() interfaces.SearchService {
	return c.searchService
}

// Invalidate drops the cached response for url so the next search refetches it
func (c *Client) Invalidate(ctx context.Context, url string) error {
	if c.transport == nil {
		return nil
	}
	return c.transport.Invalidate(ctx, http.MethodGet, url)
}

// Close releases caches the client opened. It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return closeAll(c.config.closers)
}

// bodyLimit is the most the response cache buffers per response. It follows
// the raw file cap but never drops below the default, which keeps gist
// listings intact when the file cap is small.
func bodyLimit(maxContentBytes int64) int64 {
	if maxContentBytes < cached.DefaultMaxBodyBytes {
		return cached.DefaultMaxBodyBytes
	}
	return maxContentBytes
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if config.HTTPClient == nil && config.Timeout <= 0 {
		return NewError(ErrorTypeConfiguration, "timeout must be positive")
	}

	if config.Concurrency < 1 {
		return NewError(ErrorTypeConfiguration, "concurrency must be at least 1")
	}

	return nil
}
