package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
)

func TestOpenTelemetryConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		config := defaultOTelConfig()
		if config.TracerName != defaultTracerName {
			t.Errorf("TracerName = %q, want %q", config.TracerName, defaultTracerName)
		}
		if config.IncludeQuery {
			t.Error("IncludeQuery should be false by default")
		}
		if config.Filter != nil {
			t.Error("Filter should be nil by default")
		}
	})

	t.Run("with options", func(t *testing.T) {
		config := defaultOTelConfig()
		WithTracerName("mysite")(&config)
		WithIncludeQuery(true)(&config)

		if config.TracerName != "mysite" {
			t.Errorf("TracerName = %q, want %q", config.TracerName, "mysite")
		}
		if !config.IncludeQuery {
			t.Error("IncludeQuery should be true")
		}
	})

	t.Run("with filter", func(t *testing.T) {
		filter := func(r *http.Request) bool {
			return r.URL.Path != "/health"
		}
		config := defaultOTelConfig()
		WithRequestFilter(filter)(&config)

		if config.Filter == nil {
			t.Error("Filter should be set")
		}
	})
}

func TestFormatSpanName(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/users", "GET /users"},
		{http.MethodGet, "/", "GET /"},
		{http.MethodPost, "/api/v1/products", "POST /api/v1/products"},
		{http.MethodGet, "", "GET /"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			req := &http.Request{Method: tt.method, URL: &url.URL{Path: tt.path}}
			got := formatSpanName(req)
			if got != tt.want {
				t.Errorf("formatSpanName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenTelemetryMiddleware_PropagatesRequestContext(t *testing.T) {
	type ctxKey struct{}

	var gotValue any
	var wrapped bool
	handler := OpenTelemetry(
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotValue = r.Context().Value(ctxKey{})
		_, wrapped = w.(chimiddleware.WrapResponseWriter)
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "base"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if gotValue != "base" {
		t.Errorf("request context value = %v, want %q", gotValue, "base")
	}
	if !wrapped {
		t.Error("expected response writer to be wrapped for status capture")
	}
	if rr.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
}

func TestOpenTelemetryMiddleware_FilterSkipsTracing(t *testing.T) {
	nextCalled := false
	var wrapped bool
	handler := OpenTelemetry(
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		_, wrapped = w.(chimiddleware.WrapResponseWriter)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !nextCalled {
		t.Fatal("expected next to be called")
	}
	if wrapped {
		t.Error("expected unwrapped response writer when filter skips tracing")
	}
}

func TestOpenTelemetryMiddleware_ServerErrorPassesThrough(t *testing.T) {
	handler := OpenTelemetry()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/projects", nil))

	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
}

func TestSpanFromRequest_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	span := SpanFromRequest(req)
	if span == nil {
		t.Fatal("expected SpanFromRequest to return a span")
	}
	if span.SpanContext().IsValid() {
		t.Error("expected non-recording span outside traced requests")
	}
}
