package v1handler

import (
	"net/http"
	"slices"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"brewery/pkg/logger"
)

// Health serves GET /health. It pings every configured check and answers 503
// when any of them fails.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names := make([]string, 0, len(h.deps.Checks))
	for name := range h.deps.Checks {
		names = append(names, name)
	}
	slices.Sort(names)

	status := http.StatusOK
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.deps.Checks[name].Ping(ctx); err != nil {
			logger.Warn(ctx, "health check failed", zap.String("check", name), zap.Error(err))
			status = http.StatusServiceUnavailable
			results[name] = "unavailable"

			continue
		}
		results[name] = "ok"
	}

	writeJSON(w, status, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("status", func(e *jx.Encoder) {
				if status == http.StatusOK {
					e.Str("ok")
				} else {
					e.Str("unavailable")
				}
			})
			e.Field("checks", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					for _, name := range names {
						e.Field(name, func(e *jx.Encoder) { e.Str(results[name]) })
					}
				})
			})
		})
	})
}
