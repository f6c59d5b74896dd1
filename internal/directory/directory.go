package directory

import (
	"context"
	"fmt"
	"math"
	"strings"

	"brewery/internal/config"
	"brewery/pkg/domain"
	"brewery/pkg/geo"
	"brewery/pkg/serrors"
	"brewery/pkg/storage"
)

// Options configure the limits applied by the directory read operations.
// These settings are typically derived from application configuration.
type Options struct {
	// CandidateLimit caps the number of rows the bounding-box prefilter may
	// return before the exact radius is applied.
	CandidateLimit uint
	// ResultLimit caps the number of ranked breweries returned by Nearby. It
	// is independent of and smaller than CandidateLimit.
	ResultLimit int
	// SearchLimit caps the results of Search and List.
	SearchLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CandidateLimit: cfg.Search.CandidateLimit,
		ResultLimit:    cfg.Search.ResultLimit,
		SearchLimit:    cfg.Search.SearchLimit,
	}
}

// directory is the concrete implementation of the Directory interface.
type directory struct {
	options Options
	storage storage.Storage
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Nearby returns the breweries strictly within q.RadiusMiles of (q.Lat, q.Lng),
// nearest first. Candidates come from the storage's bounding-box prefilter and
// are re-checked against the exact radius here. A scoped request only sees
// breweries of its own state.
//
// Latitude is not range checked; out of domain values flow into the math and
// typically produce an empty result.
func (d directory) Nearby(ctx context.Context,
	scope domain.RegionScope,
	q domain.GeoQuery) ([]domain.RankedBrewery, error) {
	if !finite(q.Lat) || !finite(q.Lng) || !finite(q.RadiusMiles) {
		return nil, serrors.With(serrors.ErrBadRequest, "lat, lng and radius must be finite numbers")
	}

	candidates, err := d.storage.NearbyBreweries(ctx, storage.NearbyQuery{
		GeoQuery:    q,
		StateAbbrev: scope.Abbrev(),
		Limit:       d.options.CandidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get nearby candidates: %w", err)
	}

	return geo.Rank(candidates, q.RadiusMiles, d.options.ResultLimit), nil
}

// Search matches text against brewery names and locations. Blank text is
// rejected.
func (d directory) Search(ctx context.Context, scope domain.RegionScope, text string) ([]domain.Brewery, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "search query must not be empty")
	}

	res, err := d.storage.SearchBreweries(ctx, storage.SearchQuery{
		Text:        text,
		StateAbbrev: scope.Abbrev(),
		Limit:       d.options.SearchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("could not search breweries: %w", err)
	}

	return res, nil
}

// List returns the breweries of the scope ordered by name.
func (d directory) List(ctx context.Context, scope domain.RegionScope) ([]domain.Brewery, error) {
	res, err := d.storage.ListBreweries(ctx, scope.Abbrev(), d.options.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("could not list breweries: %w", err)
	}

	return res, nil
}

// Brewery fetches a single brewery by ID. It returns a not-found error when
// no matching brewery exists.
func (d directory) Brewery(ctx context.Context, ID domain.BreweryID) (*domain.Brewery, error) {
	res, err := d.storage.BreweryByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get brewery: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "brewery not found")
	}

	return res, nil
}

// New creates a new Directory backed by the provided storage and configured
// with the given options.
func New(storage storage.Storage, options Options) Directory {
	return &directory{
		options: options,
		storage: storage,
	}
}
