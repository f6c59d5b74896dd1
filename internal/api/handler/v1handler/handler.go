// Package v1handler implements the read-only directory API served under /api.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"brewery/internal/config"
	"brewery/internal/directory"
	"brewery/pkg/domain"
	"brewery/pkg/logger"
	"brewery/pkg/serrors"
)

// Pinger is a backing service checked by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of the handlers.
type Deps struct {
	Directory directory.Directory
	// Checks are pinged by the health endpoint, keyed by a display name.
	Checks map[string]Pinger
}

// Options configure request defaults.
type Options struct {
	// DefaultRadiusMiles is used when a nearby request omits the radius.
	DefaultRadiusMiles float64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{DefaultRadiusMiles: cfg.Search.DefaultRadiusMiles}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.DefaultRadiusMiles == 0 {
		options.DefaultRadiusMiles = domain.DefaultRadiusMiles
	}

	return &Handler{deps: deps, options: options}
}

// Routes registers the API endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/breweries", h.ListBreweries)
	r.Get("/breweries/nearby", h.NearbyBreweries)
	r.Get("/breweries/search", h.SearchBreweries)
	r.Get("/breweries/{id}", h.GetBrewery)
	r.Get("/region", h.Region)
}

// ErrorResponse is the status and JSON body sent for a failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

var errorStatuses = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrBadRequest:  {http.StatusBadRequest, "bad request"},
	serrors.ErrNotFound:    {http.StatusNotFound, "resource not found"},
	serrors.ErrTimeout:     {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable: {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrInternal:    {http.StatusInternalServerError, "internal error"},
}

// NewError maps err to a response. Semantic errors keep their message unless
// they are internal; anything else becomes a 500 whose cause is only logged.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	if kind == nil && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}
	st, ok := errorStatuses[kind]
	if !ok {
		kind = serrors.ErrInternal
		st = errorStatuses[kind]
	}

	res := &ErrorResponse{StatusCode: st.status, Code: kind.Error(), Message: st.message}

	var semantic *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &semantic) && semantic.Message() != "" {
		res.Message = semantic.Message()
	}

	if res.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return res
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
			e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
