package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CacheHitsTotal      *prometheus.CounterVec
	CacheMissesTotal    *prometheus.CounterVec
	PostsCreatedTotal   prometheus.Counter
	FollowEdgesTotal    prometheus.Gauge
}

var (
	instance *Metrics
	once     sync.Once
)

// Get returns the process-wide metrics registry, creating it on first use.
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "quillhub_http_requests_total",
				Help: "Total HTTP requests by method, path and status",
			}, []string{"method", "path", "status"}),
			HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "quillhub_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "path", "status"}),
			CacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "quillhub_cache_hits_total",
				Help: "Page cache hits by cache name",
			}, []string{"cache"}),
			CacheMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "quillhub_cache_misses_total",
				Help: "Page cache misses by cache name",
			}, []string{"cache"}),
			PostsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "quillhub_posts_created_total",
				Help: "Posts created since process start",
			}),
			FollowEdgesTotal: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "quillhub_follow_edges",
				Help: "Follow edges created minus removed since process start",
			}),
		}
	})
	return instance
}
