// ABOUTME: Response-caching http.RoundTripper layered under the outbound HTTP client
// ABOUTME: Stores successful GET responses in a pluggable Cache and collapses concurrent misses

package cached

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"gist-search-api/core/interfaces"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is how long a cached response stays fresh
	DefaultTTL = 300 * time.Second

	// DefaultFetchTimeout bounds a shared upstream call
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxBodyBytes caps how much of one response is buffered
	DefaultMaxBodyBytes int64 = 10 << 20

	// HeaderFromCache is set to "1" on responses served from the cache
	HeaderFromCache = "X-From-Cache"

	keyPrefix = "httpcache:"
)

// Options configures a Transport
type Options struct {
	// Next performs requests on a miss; nil uses http.DefaultTransport
	Next http.RoundTripper
	TTL  time.Duration

	// FetchTimeout bounds an upstream call made on a miss. The call is
	// detached from the caller that started it, so it needs its own limit.
	FetchTimeout time.Duration

	// MaxBodyBytes caps the buffered body. Longer responses are truncated
	// to the cap and never cached.
	MaxBodyBytes int64

	Logger  interfaces.Logger
	Metrics interfaces.Metrics
}

// Transport is an http.RoundTripper that answers repeated GETs from a cache
type Transport struct {
	next         http.RoundTripper
	cache        interfaces.Cache
	ttl          time.Duration
	fetchTimeout time.Duration
	maxBodyBytes int64
	logger       interfaces.Logger
	metrics      interfaces.Metrics
	group        singleflight.Group
}

// entry is the JSON form of a cached response
type entry struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// NewTransport creates a caching transport over cache
func NewTransport(cache interfaces.Cache, opts Options) *Transport {
	if opts.Next == nil {
		opts.Next = http.DefaultTransport
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Transport{
		next:         opts.Next,
		cache:        cache,
		ttl:          opts.TTL,
		fetchTimeout: opts.FetchTimeout,
		maxBodyBytes: opts.MaxBodyBytes,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
	}
}

// Key returns the cache key for a request
func Key(method, url string) string {
	return keyPrefix + method + " " + url
}

// RoundTrip implements http.RoundTripper. Concurrent misses for the same
// key share one upstream call; each caller still waits on its own context.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || t.cache == nil {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := Key(req.Method, req.URL.String())

	if e, ok := t.lookup(ctx, key); ok {
		resp := e.response(req)
		resp.Header.Set(HeaderFromCache, "1")
		return resp, nil
	}

	ch := t.group.DoChan(key, func() (interface{}, error) {
		return t.fetch(req, key)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*entry).response(req), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetch performs the shared upstream call. It keeps the starting request's
// values but not its cancellation, so one caller leaving cannot fail the
// others waiting on the same key.
func (t *Transport) fetch(req *http.Request, key string) (*entry, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), t.fetchTimeout)
	defer cancel()

	resp, err := t.next.RoundTrip(req.Clone(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBodyBytes+1))
	if err != nil {
		return nil, err
	}

	e := &entry{Status: resp.StatusCode, Header: resp.Header.Clone(), Body: body}
	if int64(len(body)) > t.maxBodyBytes {
		e.Body = body[:t.maxBodyBytes]
		e.Header.Del("Content-Length")
		if t.logger != nil {
			t.logger.Warn("Response exceeds body limit, not caching", map[string]interface{}{
				"key":   key,
				"limit": t.maxBodyBytes,
			})
		}
		return e, nil
	}

	if resp.StatusCode == http.StatusOK {
		t.store(ctx, key, e)
	}
	return e, nil
}

// Invalidate removes the cached response for method and url
func (t *Transport) Invalidate(ctx context.Context, method, url string) error {
	if t.cache == nil {
		return nil
	}
	return t.cache.Delete(ctx, Key(method, url))
}

func (t *Transport) lookup(ctx context.Context, key string) (*entry, bool) {
	data, err := t.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrCacheMiss) {
			t.observe("miss")
		} else {
			t.observe("error")
			t.warn("Response cache read failed", key, err)
		}
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		t.observe("error")
		t.warn("Discarding undecodable cache entry", key, err)
		return nil, false
	}

	t.observe("hit")
	return &e, true
}

func (t *Transport) store(ctx context.Context, key string, e *entry) {
	data, err := json.Marshal(e)
	if err != nil {
		t.warn("Failed to encode response for cache", key, err)
		return
	}
	if err := t.cache.Set(ctx, key, data, t.ttl); err != nil {
		t.warn("Response cache write failed", key, err)
	}
}

func (t *Transport) observe(result string) {
	if t.metrics != nil {
		t.metrics.ObserveCache(result)
	}
}

func (t *Transport) warn(msg, key string, err error) {
	if t.logger == nil {
		return
	}
	t.logger.Warn(msg, map[string]interface{}{
		"key":   key,
		"error": err.Error(),
	})
}

// response builds a fresh *http.Response for each caller so bodies are
// never shared between readers
func (e *entry) response(req *http.Request) *http.Response {
	header := e.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Set("Content-Length", strconv.Itoa(len(e.Body)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status)),
		StatusCode:    e.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}
