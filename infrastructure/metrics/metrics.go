// ABOUTME: Prometheus collectors for searches, upstream calls, cache lookups and HTTP traffic
// ABOUTME: Implements interfaces.Metrics and exposes the /metrics handler and HTTP middleware

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gistsearch"

// Collector holds every metric the service records
type Collector struct {
	registry *prometheus.Registry

	searches       *prometheus.CounterVec
	searchDuration prometheus.Histogram
	upstream       *prometheus.CounterVec
	cache          *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
}

// New creates a Collector registered on its own registry
func New() *Collector {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry creates a Collector registered on registry
func NewWithRegistry(registry *prometheus.Registry) *Collector {
	c := &Collector{
		registry: registry,
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches handled, by result status.",
		}, []string{"status"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent running one search.",
			Buckets:   prometheus.DefBuckets,
		}),
		upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound calls to the gist API, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Response cache lookups, by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Inbound HTTP requests, by method and status code.",
		}, []string{"method", "status"}),
	}

	registry.MustRegister(c.searches, c.searchDuration, c.upstream, c.cache, c.httpRequests)
	return c
}

// ObserveSearch records a finished search
func (c *Collector) ObserveSearch(status string, duration time.Duration) {
	c.searches.WithLabelValues(status).Inc()
	c.searchDuration.Observe(duration.Seconds())
}

// ObserveUpstream records one outbound call
func (c *Collector) ObserveUpstream(kind, outcome string) {
	c.upstream.WithLabelValues(kind, outcome).Inc()
}

// ObserveCache records one response cache lookup
func (c *Collector) ObserveCache(result string) {
	c.cache.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware counts every request by method and final status
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.httpRequests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}
