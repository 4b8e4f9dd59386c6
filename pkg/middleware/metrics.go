package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "veneer").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "veneer",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for Veneer.
type metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	rebuildsTotal    *prometheus.CounterVec
	rebuildDuration  prometheus.Histogram
	reloadClients    prometheus.Gauge
	pagesPublished   prometheus.Counter
}

// globalMetrics is the singleton metrics instance.
// Created on first call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "method", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		requestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: config.ConstLabels,
		}),

		rebuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rebuilds_total",
			Help:        "Total number of site rebuilds by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		rebuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rebuild_duration_seconds",
			Help:        "Site rebuild duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}, // 100ms to 30s
		}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reload_clients",
			Help:        "Number of connected live reload clients",
			ConstLabels: config.ConstLabels,
		}),

		pagesPublished: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pages_published_total",
			Help:        "Total number of pages written to the output directory",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus creates middleware that collects Prometheus metrics for HTTP
// requests served by the dev server.
//
// Metrics collected:
//   - veneer_requests_total: Counter of requests by path, method, and status
//   - veneer_request_duration_seconds: Histogram of request duration by path
//   - veneer_requests_in_flight: Gauge of requests currently being served
//   - veneer_rebuilds_total: Counter of site rebuilds by status (when RecordRebuild is called)
//   - veneer_rebuild_duration_seconds: Histogram of rebuild duration
//   - veneer_reload_clients: Gauge of connected live reload clients
//   - veneer_pages_published_total: Counter of pages written to the output directory
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("mysite"),
//	))
//
//	// Expose metrics endpoint
//	r.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "" {
				path = "/"
			}

			m.requestsInFlight.Inc()
			defer m.requestsInFlight.Dec()

			// Wrap the writer to capture the response status
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			// Time the request
			start := time.Now()

			next.ServeHTTP(ww, r)

			// Record duration
			duration := time.Since(start).Seconds()
			m.requestDuration.WithLabelValues(path).Observe(duration)

			// Record request count
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requestsTotal.WithLabelValues(path, r.Method, strconv.Itoa(status)).Inc()
		})
	}
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordRebuild records a completed site rebuild.
// Call this from the dev server after each rebuild attempt.
func RecordRebuild(success bool, duration time.Duration) {
	if globalMetrics != nil {
		status := "success"
		if !success {
			status = "error"
		}
		globalMetrics.rebuildsTotal.WithLabelValues(status).Inc()
		globalMetrics.rebuildDuration.Observe(duration.Seconds())
	}
}

// SetReloadClients records the number of connected live reload clients.
func SetReloadClients(count int) {
	if globalMetrics != nil {
		globalMetrics.reloadClients.Set(float64(count))
	}
}

// RecordPagesPublished records the number of pages written during a publish.
func RecordPagesPublished(count int) {
	if globalMetrics != nil {
		globalMetrics.pagesPublished.Add(float64(count))
	}
}

// =============================================================================
// Metrics Collector
// =============================================================================

// Collector returns the metrics for use in custom registrations.
// This allows collecting Veneer metrics alongside other application metrics.
type Collector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	rebuildsTotal    *prometheus.CounterVec
	rebuildDuration  prometheus.Histogram
	reloadClients    prometheus.Gauge
	pagesPublished   prometheus.Counter
}

// GetMetrics returns the global metrics collector.
// Returns nil if Prometheus middleware has not been initialized.
func GetMetrics() *Collector {
	if globalMetrics == nil {
		return nil
	}
	return &Collector{
		requestsTotal:    globalMetrics.requestsTotal,
		requestDuration:  globalMetrics.requestDuration,
		requestsInFlight: globalMetrics.requestsInFlight,
		rebuildsTotal:    globalMetrics.rebuildsTotal,
		rebuildDuration:  globalMetrics.rebuildDuration,
		reloadClients:    globalMetrics.reloadClients,
		pagesPublished:   globalMetrics.pagesPublished,
	}
}
