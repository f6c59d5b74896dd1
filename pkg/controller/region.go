package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"brewery/pkg/domain"
	"brewery/pkg/logger"
)

// RegionResolver maps a request host and an optional override token to a
// region scope.
type RegionResolver interface {
	Resolve(host, override string) domain.RegionScope
}

type regionKey struct{}

// WithRegionScope returns a middleware that resolves the region scope of every
// request from its Host header and stores it in the request context. When
// overrideParam is non-empty its query value is passed to the resolver, which
// decides whether overrides are honored.
func WithRegionScope(resolver RegionResolver, overrideParam string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var override string
			if overrideParam != "" {
				override = r.URL.Query().Get(overrideParam)
			}

			scope := resolver.Resolve(r.Host, override)

			ctx := context.WithValue(r.Context(), regionKey{}, scope)
			if scope.Scoped() {
				ctx = logger.WithFields(ctx, zap.String("region", scope.Abbrev()))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RegionScopeFromContext returns the scope stored by WithRegionScope. Requests
// that did not pass through the middleware are unscoped.
func RegionScopeFromContext(ctx context.Context) domain.RegionScope {
	if scope, ok := ctx.Value(regionKey{}).(domain.RegionScope); ok {
		return scope
	}

	return domain.UnscopedRegion("")
}
