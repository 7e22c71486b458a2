// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads server, cache, upstream, search and logging settings through viper

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains response cache configuration
	Cache CacheConfig

	// GitHub contains upstream API locations
	GitHub GitHubConfig

	// HTTP contains outbound client settings
	HTTP HTTPConfig

	// Search contains orchestrator tuning
	Search SearchConfig

	// Log contains logger settings
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client IP per minute
	RateLimit int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// TTL is how long a successful upstream response stays cached
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key this service writes
	KeyPrefix string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// GitHubConfig holds upstream locations
type GitHubConfig struct {
	// APIBaseURL is the REST API root used to list gists
	APIBaseURL string

	// GistBaseURL is the root of public gist page URLs
	GistBaseURL string
}

// HTTPConfig holds outbound HTTP client settings
type HTTPConfig struct {
	// Timeout bounds each outbound call
	Timeout time.Duration
}

// SearchConfig holds search orchestration settings
type SearchConfig struct {
	// Concurrency is the number of gists fetched in parallel; 1 is sequential
	Concurrency int

	// MaxContentBytes caps how much of one raw file is read
	MaxContentBytes int64
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
	// File, when set, enables a rotating log file instead of stderr
	File string
}

var defaults = map[string]interface{}{
	"port":                 "9876",
	"rate_limit":           100,
	"cache_type":           "memory",
	"cache_ttl":            300,
	"redis_address":        "localhost:6379",
	"redis_password":       "",
	"redis_db":             0,
	"redis_key_prefix":     "gistsearch:",
	"memory_cache_cleanup": 60,
	"sqlite_path":          "gist_app_cache.db",
	"github_api_url":       "https://api.github.com",
	"gist_base_url":        "https://gist.github.com",
	"http_timeout":         "10s",
	"search_concurrency":   4,
	"max_content_bytes":    10 << 20,
	"log_level":            "info",
	"log_format":           "text",
	"log_file":             "",
}

// Keys returns every configuration key; each is read from the upper-cased
// environment variable of the same name
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	return keys
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// Load reads an optional config file (yaml, json or toml) and overlays
// environment variables on top of it
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	timeout, err := parseSeconds(v.GetString("http_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      v.GetString("port"),
			RateLimit: v.GetInt("rate_limit"),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(v.GetString("cache_type")),
			TTL:  time.Duration(v.GetInt("cache_ttl")) * time.Second,
			Redis: RedisConfig{
				Address:   v.GetString("redis_address"),
				Password:  v.GetString("redis_password"),
				DB:        v.GetInt("redis_db"),
				KeyPrefix: v.GetString("redis_key_prefix"),
			},
			Memory: MemoryConfig{
				CleanupInterval: time.Duration(v.GetInt("memory_cache_cleanup")) * time.Second,
			},
			SQLite: SQLiteConfig{
				Path: v.GetString("sqlite_path"),
			},
		},
		GitHub: GitHubConfig{
			APIBaseURL:  v.GetString("github_api_url"),
			GistBaseURL: v.GetString("gist_base_url"),
		},
		HTTP: HTTPConfig{
			Timeout: timeout,
		},
		Search: SearchConfig{
			Concurrency:     v.GetInt("search_concurrency"),
			MaxContentBytes: v.GetInt64("max_content_bytes"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
			File:   v.GetString("log_file"),
		},
	}

	return cfg, nil
}

// parseSeconds accepts a Go duration ("10s", "1m") or a bare number of seconds
func parseSeconds(value string) (time.Duration, error) {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return time.Duration(n * float64(time.Second)), nil
	}
	return time.ParseDuration(value)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1 request per minute")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.TTL <= 0 {
		return errors.New("cache TTL must be positive")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.HTTP.Timeout <= 0 {
		return errors.New("HTTP timeout must be positive")
	}

	if c.Search.Concurrency < 1 {
		return errors.New("search concurrency must be at least 1")
	}

	if c.Search.MaxContentBytes < 1 {
		return errors.New("max content bytes must be positive")
	}

	return nil
}
