package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP records request duration and count per route pattern.
type HTTP struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewHTTP creates the HTTP collectors and registers them with reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	h := &HTTP{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   DefaultBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}

	for _, c := range []prometheus.Collector{h.duration, h.requests} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register http metrics: %w", err)
		}
	}

	return h, nil
}

// Middleware records the duration and status of every request. The path label
// is the chi route pattern so that IDs in URLs do not explode cardinality.
func (h *HTTP) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		status := strconv.Itoa(ww.status)
		path := routePattern(r)

		h.duration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		h.requests.WithLabelValues(r.Method, path, status).Inc()
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.RoutePattern() == "" {
		return "unknown"
	}

	return rctx.RoutePattern()
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true

	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}
