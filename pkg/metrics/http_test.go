package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"brewery/pkg/metrics"
)

func TestHTTP_RecordsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(h.Middleware)
	r.Get("/api/breweries/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/breweries/1", "/api/breweries/2", "/ok"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	expected := `
# HELP brewery_http_requests_total Total number of HTTP requests
# TYPE brewery_http_requests_total counter
brewery_http_requests_total{method="GET",path="/api/breweries/{id}",status="404"} 2
brewery_http_requests_total{method="GET",path="/ok",status="200"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "brewery_http_requests_total"))

	n, err := testutil.GatherAndCount(reg, "brewery_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestNewHTTP_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	_, err = metrics.NewHTTP(reg)
	require.Error(t, err)
}

func TestNewMeterProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	require.NotNil(t, mp.Meter("test"))
}
