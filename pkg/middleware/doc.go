// Package middleware provides observability middleware for Veneer servers.
//
// This package includes:
//   - OpenTelemetry distributed tracing middleware
//   - Prometheus metrics middleware
//
// Both middlewares use the standard func(http.Handler) http.Handler shape
// and compose with any net/http router.
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware traces every HTTP request served by the dev
// server. Spans are named "METHOD /path" and carry the method, target, and
// response status code.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry())
//
// Configure with options:
//
//	middleware.OpenTelemetry(
//	    middleware.WithTracerName("mysite"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	)
//
// # Prometheus Metrics
//
// The Prometheus middleware collects metrics about requests and rebuilds:
//   - veneer_requests_total: Total requests by path, method, and status
//   - veneer_request_duration_seconds: Request duration histogram
//   - veneer_requests_in_flight: Requests currently being served
//   - veneer_rebuilds_total: Site rebuilds by status
//   - veneer_reload_clients: Connected live reload clients
//
//	r.Use(middleware.Prometheus())
//
// Then expose metrics on the same router:
//
//	r.Handle("/metrics", promhttp.Handler())
//
// # Context Propagation
//
// The OpenTelemetry middleware injects the span context into the request
// context, allowing database drivers and HTTP clients to inherit the trace:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    // HTTP call inherits trace context
//	    req, _ := http.NewRequestWithContext(r.Context(), "GET", url, nil)
//	    // ...
//	}
package middleware
