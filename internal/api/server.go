// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the brewery directory.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.uber.org/zap"

	"brewery/internal/api/handler/v1handler"
	"brewery/internal/config"
	"brewery/pkg/cache"
	"brewery/pkg/controller"
	"brewery/pkg/logger"
	"brewery/pkg/metrics"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// HandlerOptions configures request defaults of the API handlers.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins restricts CORS. Empty allows any origin.
	AllowedOrigins []string

	// RegionOverrideParam is the query parameter passed to the region resolver.
	RegionOverrideParam string

	// CacheTTL is how long API responses are cached.
	CacheTTL time.Duration
	// CacheKeyPrefix namespaces cache keys.
	CacheKeyPrefix string
	// CacheCoalesce collapses concurrent identical misses.
	CacheCoalesce bool
	// CacheKeyByHost adds the request host to cache keys.
	CacheKeyByHost bool
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HandlerOptions: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,

		RegionOverrideParam: cfg.Region.OverrideParam,

		CacheTTL:       cfg.Cache.TTL,
		CacheKeyPrefix: cfg.Cache.KeyPrefix,
		CacheCoalesce:  cfg.Cache.Coalesce,
		CacheKeyByHost: cfg.Cache.KeyByHost,
	}
}

type Deps struct {
	v1handler.Deps

	// Resolver derives the region scope of API requests.
	Resolver controller.RegionResolver
	// Cache stores API responses.
	Cache cache.Store
	// Registerer and Gatherer back the metrics endpoint. They default to
	// the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI
// - /api routes behind the region scope and response cache middlewares
// - health and pprof endpoints
// It also wraps the router with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	reg, gatherer := deps.Registerer, deps.Gatherer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// otel
	mp, err := metrics.NewMeterProvider(reg)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	httpMetrics, err := metrics.NewHTTP(reg)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	withCache, err := controller.WithCache(controller.CacheOptions{
		Store:      deps.Cache,
		TTL:        opts.CacheTTL,
		KeyPrefix:  opts.CacheKeyPrefix,
		PathPrefix: "/api/",
		KeyByHost:  opts.CacheKeyByHost,
		Coalesce:   opts.CacheCoalesce,
		Meter:      mp.Meter("brewery/pkg/controller"),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create cache middleware: %w", err)
	}

	h := v1handler.New(deps.Deps, opts.HandlerOptions)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer, httpMetrics.Middleware)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/docs/*", v5emb.New(
		"Brewery Directory",
		"/specs/v1.yaml",
		"/docs/",
	))

	r.Get("/health", h.Health)

	// api
	r.Route("/api", func(r chi.Router) {
		r.Use(controller.WithRegionScope(deps.Resolver, opts.RegionOverrideParam), withCache)
		h.Routes(r)
	})

	// pprof
	r.Mount("/debug", middleware.Profiler())

	// cors
	handler := controller.WithCORS(opts.AllowedOrigins)(r)

	// logger
	handler = controller.WithLogger(handler)

	server := &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          logger.StdLog(ctx, slog.LevelError),
	}
	server.RegisterOnShutdown(func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
		}
	})

	return server, nil
}
