package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"

	"brewery/pkg/controller"
	"brewery/pkg/domain"
	"brewery/pkg/serrors"
)

// floatParam parses a numeric query parameter. Absent parameters yield def,
// or a bad request when def is nil.
func floatParam(r *http.Request, name string, def *float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if def == nil {
			return 0, serrors.With(serrors.ErrBadRequest, "missing %s parameter", name)
		}

		return *def, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s parameter", name)
	}

	return v, nil
}

// NearbyBreweries serves GET /api/breweries/nearby?lat=&lng=&radius=.
func (h *Handler) NearbyBreweries(w http.ResponseWriter, r *http.Request) {
	lat, err := floatParam(r, "lat", nil)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	lng, err := floatParam(r, "lng", nil)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	radius, err := floatParam(r, "radius", &h.options.DefaultRadiusMiles)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	ctx := r.Context()
	res, err := h.deps.Directory.Nearby(ctx, controller.RegionScopeFromContext(ctx), domain.GeoQuery{
		Lat:         lat,
		Lng:         lng,
		RadiusMiles: radius,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeRankedBreweries(e, res) })
}

// SearchBreweries serves GET /api/breweries/search?q=.
func (h *Handler) SearchBreweries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.deps.Directory.Search(ctx, controller.RegionScopeFromContext(ctx), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeBreweries(e, res) })
}

// ListBreweries serves GET /api/breweries.
func (h *Handler) ListBreweries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.deps.Directory.List(ctx, controller.RegionScopeFromContext(ctx))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeBreweries(e, res) })
}

// GetBrewery serves GET /api/breweries/{id}.
func (h *Handler) GetBrewery(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseBreweryID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid brewery id"))

		return
	}

	res, err := h.deps.Directory.Brewery(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeBrewery(e, res) })
}

// Region serves GET /api/region with the scope of the request.
func (h *Handler) Region(w http.ResponseWriter, r *http.Request) {
	scope := controller.RegionScopeFromContext(r.Context())

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeRegionScope(e, scope) })
}
