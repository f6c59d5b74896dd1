package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"brewery/pkg/cache"
	"brewery/pkg/logger"
)

const (
	// CacheHeader reports whether a response was served from the cache.
	CacheHeader = "X-Cache"
	// CacheHit marks a response served from the cache.
	CacheHit = "HIT"
	// CacheMiss marks a response computed by the downstream handler.
	CacheMiss = "MISS"
)

// CacheOptions configure WithCache.
type CacheOptions struct {
	// Store holds the cached response bodies.
	Store cache.Store
	// TTL is how long a stored response is served. It must be positive.
	TTL time.Duration
	// KeyPrefix namespaces the keys in Store.
	KeyPrefix string
	// PathPrefix selects the cached requests, e.g. "/api/".
	PathPrefix string
	// KeyByHost adds the request host to the key so that region subdomains
	// do not share entries. The default keys by request URI only.
	KeyByHost bool
	// Coalesce collapses concurrent misses for the same key into a single
	// downstream call.
	Coalesce bool
	// Meter records lookup and store counters. A nil Meter disables them.
	Meter metric.Meter
}

type responseCache struct {
	opts    CacheOptions
	group   singleflight.Group
	lookups metric.Int64Counter
	stores  metric.Int64Counter
}

// WithCache returns a middleware that memoizes GET responses under
// opts.PathPrefix. The key is the request URI verbatim, so query parameter
// order matters. Only complete 200 responses with a JSON content type are
// stored. Entries are never invalidated; they expire after opts.TTL.
//
// A cache read failure other than a miss fails the request with a 500. A
// failure to store a computed response is only logged.
func WithCache(opts CacheOptions) (func(http.Handler) http.Handler, error) {
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", opts.TTL)
	}

	meter := opts.Meter
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	lookups, err := meter.Int64Counter("http.cache.lookups",
		metric.WithDescription("Response cache lookups by result"))
	if err != nil {
		return nil, fmt.Errorf("could not create cache lookups counter: %w", err)
	}
	stores, err := meter.Int64Counter("http.cache.stores",
		metric.WithDescription("Response cache writes by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create cache stores counter: %w", err)
	}

	c := &responseCache{opts: opts, lookups: lookups, stores: stores}

	return c.middleware, nil
}

func (c *responseCache) key(r *http.Request) string {
	if c.opts.KeyByHost {
		return c.opts.KeyPrefix + strings.ToLower(r.Host) + r.URL.RequestURI()
	}

	return c.opts.KeyPrefix + r.URL.RequestURI()
}

func (c *responseCache) countLookup(ctx context.Context, result string) {
	c.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (c *responseCache) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, c.opts.PathPrefix) {
			next.ServeHTTP(w, r)

			return
		}

		ctx := r.Context()
		key := c.key(r)

		body, err := c.opts.Store.Get(ctx, key)
		switch {
		case err == nil && jx.Valid(body):
			c.countLookup(ctx, "hit")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(CacheHeader, CacheHit)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(body)

			return
		case err == nil:
			c.countLookup(ctx, "corrupt")
			logger.Warn(ctx, "ignoring malformed cache entry", zap.String("key", key), zap.Int("size", len(body)))
		case errors.Is(err, cache.ErrMiss):
			c.countLookup(ctx, "miss")
		default:
			c.countLookup(ctx, "error")
			logger.Error(ctx, "could not read response cache", zap.String("key", key), zap.Error(err))
			writeInternalError(w)

			return
		}

		if c.opts.Coalesce {
			c.serveShared(w, r, next, key)

			return
		}

		w.Header().Set(CacheHeader, CacheMiss)
		rec := &cacheRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.cacheable() {
			c.put(ctx, key, rec.body.Bytes())
		}
	})
}

// serveShared runs next once per key for all concurrent callers and replays
// the buffered response to each of them. The shared call is detached from the
// cancellation of the request that started it.
func (c *responseCache) serveShared(w http.ResponseWriter, r *http.Request, next http.Handler, key string) {
	v, _, _ := c.group.Do(key, func() (any, error) {
		ctx := context.WithoutCancel(r.Context())
		buf := &bufferedResponse{header: http.Header{}, status: http.StatusOK}
		next.ServeHTTP(buf, r.WithContext(ctx))

		if buf.cacheable() {
			c.put(ctx, key, buf.body.Bytes())
		}

		return buf, nil
	})
	buf := v.(*bufferedResponse) //nolint:forcetypeassert

	maps.Copy(w.Header(), buf.header)
	w.Header().Set(CacheHeader, CacheMiss)
	w.WriteHeader(buf.status)
	_, _ = w.Write(buf.body.Bytes())
}

func (c *responseCache) put(ctx context.Context, key string, body []byte) {
	outcome := "ok"
	if err := c.opts.Store.Put(ctx, key, body, c.opts.TTL); err != nil {
		outcome = "error"
		logger.Warn(ctx, "could not store response in cache", zap.String("key", key), zap.Error(err))
	}
	c.stores.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)

	return err == nil && mediaType == "application/json"
}

// cacheRecorder forwards the response to the client and keeps a copy of the
// body. A failed write to the client marks the copy as incomplete.
type cacheRecorder struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	failed      bool
	body        bytes.Buffer
}

func (rec *cacheRecorder) WriteHeader(code int) {
	if !rec.wroteHeader {
		rec.status = code
		rec.wroteHeader = true
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *cacheRecorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.body.Write(b[:n])
	if err != nil {
		rec.failed = true
	}

	return n, err //nolint:wrapcheck
}

func (rec *cacheRecorder) cacheable() bool {
	return !rec.failed && rec.status == http.StatusOK && isJSON(rec.Header().Get("Content-Type"))
}

// bufferedResponse is an in-memory http.ResponseWriter shared by coalesced requests.
type bufferedResponse struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(code int) {
	if !b.wroteHeader {
		b.status = code
		b.wroteHeader = true
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.wroteHeader = true

	return b.body.Write(p) //nolint:wrapcheck
}

func (b *bufferedResponse) cacheable() bool {
	return b.status == http.StatusOK && isJSON(b.header.Get("Content-Type"))
}

func writeInternalError(w http.ResponseWriter) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("code")
	e.Str("INTERNAL")
	e.FieldStart("message")
	e.Str("internal error")
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(e.Bytes())
}
