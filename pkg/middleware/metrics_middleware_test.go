package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		config := defaultMetricsConfig()
		if config.Namespace != "veneer" {
			t.Errorf("Namespace = %q, want %q", config.Namespace, "veneer")
		}
		if config.Subsystem != "" {
			t.Errorf("Subsystem = %q, want empty", config.Subsystem)
		}
		if config.Registry != prometheus.DefaultRegisterer {
			t.Error("Registry should be DefaultRegisterer")
		}
	})

	t.Run("with options", func(t *testing.T) {
		config := defaultMetricsConfig()
		WithNamespace("mysite")(&config)
		WithSubsystem("dev")(&config)
		WithBuckets([]float64{0.1, 0.5, 1.0})(&config)

		if config.Namespace != "mysite" {
			t.Errorf("Namespace = %q, want %q", config.Namespace, "mysite")
		}
		if config.Subsystem != "dev" {
			t.Errorf("Subsystem = %q, want %q", config.Subsystem, "dev")
		}
		if len(config.Buckets) != 3 {
			t.Errorf("len(Buckets) = %d, want 3", len(config.Buckets))
		}
	})
}

func TestPrometheusMiddleware_RecordsRequests(t *testing.T) {
	t.Run("success increments status 200 counter and duration", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		handler := Prometheus(WithRegistry(reg))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

		c := GetMetrics()
		if c == nil {
			t.Fatal("expected GetMetrics to return collector after initialization")
		}

		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/test", "GET", "200")); got != 1 {
			t.Fatalf("requests_total(200)=%v, want 1", got)
		}
		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/test", "GET", "500")); got != 0 {
			t.Fatalf("requests_total(500)=%v, want 0", got)
		}
		if got := metricHistogramCount(t, c.requestDuration.WithLabelValues("/test")); got == 0 {
			t.Fatal("expected request_duration_seconds histogram to have sample count > 0")
		}
	})

	t.Run("server error increments status 500 counter", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		handler := Prometheus(WithRegistry(reg))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

		c := GetMetrics()
		if c == nil {
			t.Fatal("expected GetMetrics to return collector after initialization")
		}

		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/test", "GET", "500")); got != 1 {
			t.Fatalf("requests_total(500)=%v, want 1", got)
		}
	})
}

func TestPrometheusMiddleware_TracksInFlightRequests(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	mw := Prometheus(WithRegistry(reg))
	c := GetMetrics()
	if c == nil {
		t.Fatal("expected GetMetrics to return collector after initialization")
	}

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := metricGaugeValue(t, c.requestsInFlight); got != 1 {
			t.Errorf("requests_in_flight during request = %v, want 1", got)
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := metricGaugeValue(t, c.requestsInFlight); got != 0 {
		t.Errorf("requests_in_flight after request = %v, want 0", got)
	}
}

func TestPrometheusMiddleware_EmptyPathNormalizesToSlash(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	handler := Prometheus(WithRegistry(reg))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := &http.Request{Method: http.MethodGet, URL: &url.URL{}, Proto: "HTTP/1.1", ProtoMajor: 1, ProtoMinor: 1}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	c := GetMetrics()
	if c == nil {
		t.Fatal("expected GetMetrics to return collector after initialization")
	}
	if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/", "GET", "200")); got != 1 {
		t.Fatalf("requests_total(/,GET,200)=%v, want 1", got)
	}
}

func TestMetricsRecordFunctions_WithInitializedMetrics(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	_ = Prometheus(WithRegistry(reg)) // initialize global metrics
	c := GetMetrics()
	if c == nil {
		t.Fatal("expected GetMetrics to return collector after initialization")
	}

	RecordRebuild(true, 150*time.Millisecond)
	RecordRebuild(false, 50*time.Millisecond)
	SetReloadClients(3)
	RecordPagesPublished(7)

	if got := metricCounterValue(t, c.rebuildsTotal.WithLabelValues("success")); got != 1 {
		t.Fatalf("rebuilds_total(success)=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.rebuildsTotal.WithLabelValues("error")); got != 1 {
		t.Fatalf("rebuilds_total(error)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, c.rebuildDuration); got != 2 {
		t.Fatalf("rebuild_duration_seconds sample count=%v, want 2", got)
	}
	if got := metricGaugeValue(t, c.reloadClients); got != 3 {
		t.Fatalf("reload_clients=%v, want 3", got)
	}
	if got := metricCounterValue(t, c.pagesPublished); got != 7 {
		t.Fatalf("pages_published_total=%v, want 7", got)
	}
}

func TestMetricsRecordFunctions_NilMetricsDoNotPanic(t *testing.T) {
	resetGlobalMetricsForTest()

	// These should not panic
	RecordRebuild(true, time.Second)
	SetReloadClients(1)
	RecordPagesPublished(10)
}

func TestGetMetrics_NilBeforeInitialization(t *testing.T) {
	resetGlobalMetricsForTest()

	if GetMetrics() != nil {
		t.Error("GetMetrics() should return nil when not initialized")
	}
}
