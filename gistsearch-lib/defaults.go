// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides cache factories and the mapping from service configuration to client options

package gistsearch

import (
	"io"
	"time"

	"gist-search-api/core/interfaces"
	"gist-search-api/infrastructure/cache/memory"
	"gist-search-api/infrastructure/cache/redis"
	"gist-search-api/infrastructure/cache/sqlite"
	"gist-search-api/infrastructure/logger/logrus"
	"gist-search-api/pkg/config"
)

// DefaultSQLitePath is used when a SQLite cache is requested without a path
const DefaultSQLitePath = "gist_app_cache.db"

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
	CacheTypeRedis  CacheType = "redis"
)

// CacheOption represents cache configuration options
type CacheOption struct {
	Type CacheType

	// FilePath is the SQLite database file
	FilePath string

	// Redis is used for CacheTypeRedis
	Redis config.RedisConfig

	// CleanupInterval is how often the memory cache purges expired entries
	CleanupInterval time.Duration
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return logrus.NewQuietLogger()
}

// newCache builds the cache an option describes. The returned closer is
// nil for backends that hold no resources.
func newCache(opt CacheOption, logger interfaces.Logger) (interfaces.Cache, io.Closer, error) {
	switch opt.Type {
	case CacheTypeMemory, "":
		if opt.CleanupInterval > 0 {
			return memory.NewMemoryCacheWithCleanup(opt.CleanupInterval), nil, nil
		}
		return memory.NewMemoryCache(), nil, nil
	case CacheTypeSQLite:
		if opt.FilePath == "" {
			opt.FilePath = DefaultSQLitePath
		}
		var cache *sqlite.Client
		var err error
		if logger != nil {
			cache, err = sqlite.NewSQLiteCacheWithLogger(opt.FilePath, logger)
		} else {
			cache, err = sqlite.NewSQLiteCache(opt.FilePath)
		}
		if err != nil {
			return nil, nil, NewError(ErrorTypeConfiguration, "failed to open sqlite cache").
				WithCause(err).
				WithContext("path", opt.FilePath)
		}
		return cache, cache, nil
	case CacheTypeRedis:
		cache, err := redis.NewRedisCache(opt.Redis)
		if err != nil {
			return nil, nil, NewError(ErrorTypeConfiguration, "failed to connect to redis").
				WithCause(err).
				WithContext("address", opt.Redis.Address)
		}
		return cache, cache, nil
	default:
		return nil, nil, NewError(ErrorTypeConfiguration, "invalid cache type").
			WithContext("type", string(opt.Type))
	}
}

// WithCacheOption creates a cache based on the provided options. The client
// owns that cache and closes it on Close.
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		cache, closer, err := newCache(opt, c.Logger)
		if err != nil {
			return err
		}
		c.Cache = cache
		c.DisableCache = false
		if closer != nil {
			c.closers = append(c.closers, closer)
		}
		return nil
	}
}

// withFallbackCache behaves like WithCacheOption but degrades to the memory
// cache when the configured backend cannot be opened
func withFallbackCache(opt CacheOption) Option {
	return func(c *Config) error {
		err := WithCacheOption(opt)(c)
		if err == nil {
			return nil
		}
		if c.Logger != nil {
			c.Logger.Error("Failed to create cache, falling back to memory", map[string]interface{}{
				"cache_type": string(opt.Type),
				"error":      err.Error(),
			})
		}
		return WithCacheOption(CacheOption{Type: CacheTypeMemory, CleanupInterval: opt.CleanupInterval})(c)
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// OptionsFromConfig maps service configuration onto client options. logger
// is applied first so cache fallbacks are reported through it.
func OptionsFromConfig(cfg *config.Config, logger interfaces.Logger) []Option {
	opts := []Option{
		WithLogger(logger),
		withFallbackCache(CacheOption{
			Type:            CacheType(cfg.Cache.Type),
			FilePath:        cfg.Cache.SQLite.Path,
			Redis:           cfg.Cache.Redis,
			CleanupInterval: cfg.Cache.Memory.CleanupInterval,
		}),
		WithAPIBaseURL(cfg.GitHub.APIBaseURL),
		WithGistBaseURL(cfg.GitHub.GistBaseURL),
	}
	if cfg.Cache.TTL > 0 {
		opts = append(opts, WithCacheTTL(cfg.Cache.TTL))
	}
	if cfg.HTTP.Timeout > 0 {
		opts = append(opts, WithTimeout(cfg.HTTP.Timeout))
	}
	if cfg.Search.Concurrency > 0 {
		opts = append(opts, WithConcurrency(cfg.Search.Concurrency))
	}
	if cfg.Search.MaxContentBytes > 0 {
		opts = append(opts, WithMaxContentBytes(cfg.Search.MaxContentBytes))
	}
	return opts
}
