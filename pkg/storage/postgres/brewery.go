package postgres

import (
	"context"
	"fmt"
	"strings"

	"brewery/pkg/domain"
	"brewery/pkg/geo"
	"brewery/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	breweriesTable = "breweries"
)

// distanceExpr evaluates the spherical law of cosines for every row. The
// cosine is clamped to [-1, 1] because rounding pushes it slightly above 1
// for a row at the query center, which acos would reject.
func distanceExpr(lat, lng float64) exp.AliasedExpression {
	return goqu.L(`?::float8 * acos(LEAST(1, GREATEST(-1,
		cos(radians(?::float8)) * cos(radians("latitude")) * cos(radians("longitude") - radians(?::float8))
		+ sin(radians(?::float8)) * sin(radians("latitude")))))`,
		geo.EarthRadiusMiles, lat, lng, lat,
	).As("distance")
}

func nearbyColumns(lat, lng float64) []any {
	cols := make([]any, 0, len(breweryColumns)+1)
	cols = append(cols, breweryColumns...)

	return append(cols, distanceExpr(lat, lng))
}

// NearbyBreweries runs the bounding-box prefilter. Rows outside the box or
// without coordinates are skipped by the WHERE clause; the remaining rows are
// ordered by their computed distance and capped at q.Limit.
func (p *PgSQL) NearbyBreweries(ctx context.Context, q storage.NearbyQuery) ([]domain.RankedBrewery, error) {
	box := geo.BoundingBox(q.Lat, q.Lng, q.RadiusMiles)

	w := []goqu.Expression{
		goqu.C("latitude").IsNotNull(),
		goqu.C("longitude").IsNotNull(),
		goqu.C("latitude").Between(goqu.Range(box.MinLat, box.MaxLat)),
		goqu.C("longitude").Between(goqu.Range(box.MinLng, box.MaxLng)),
	}
	if q.StateAbbrev != "" {
		w = append(w, goqu.C("state_abbrev").Eq(q.StateAbbrev))
	}

	ds := p.Builder.From(breweriesTable).
		Prepared(true).
		Select(nearbyColumns(q.Lat, q.Lng)...).
		Where(w...).
		Order(goqu.C("distance").Asc(), goqu.C("id").Asc()).
		Limit(q.Limit)

	var rows []PgNearbyBrewery
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch nearby breweries from pg: %w", err)
	}

	out := make([]domain.RankedBrewery, 0, len(rows))
	for i := range rows {
		out = append(out, domain.RankedBrewery{
			Brewery:       rows[i].ToDomain(),
			DistanceMiles: rows[i].Distance,
		})
	}

	return out, nil
}

// escapeLike escapes the LIKE wildcards of s so it matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// SearchBreweries matches the query text as a case-insensitive substring of
// the name, city or state and returns the matches ordered by name.
func (p *PgSQL) SearchBreweries(ctx context.Context, q storage.SearchQuery) ([]domain.Brewery, error) {
	pattern := "%" + escapeLike(q.Text) + "%"

	w := []goqu.Expression{
		goqu.Or(
			goqu.C("name").ILike(pattern),
			goqu.C("city").ILike(pattern),
			goqu.C("state").ILike(pattern),
		),
	}
	if q.StateAbbrev != "" {
		w = append(w, goqu.C("state_abbrev").Eq(q.StateAbbrev))
	}

	ds := p.Builder.From(breweriesTable).
		Prepared(true).
		Select(breweryColumns...).
		Where(w...).
		Order(goqu.C("name").Asc(), goqu.C("id").Asc()).
		Limit(q.Limit)

	var rows []PgBrewery
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search breweries in pg: %w", err)
	}

	return pgBreweriesToDomain(rows), nil
}

// ListBreweries returns breweries ordered by name, optionally restricted to a state.
func (p *PgSQL) ListBreweries(ctx context.Context, stateAbbrev string, limit uint) ([]domain.Brewery, error) {
	ds := p.Builder.From(breweriesTable).
		Prepared(true).
		Select(breweryColumns...).
		Order(goqu.C("name").Asc(), goqu.C("id").Asc()).
		Limit(limit)
	if stateAbbrev != "" {
		ds = ds.Where(goqu.C("state_abbrev").Eq(stateAbbrev))
	}

	var rows []PgBrewery
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list breweries from pg: %w", err)
	}

	return pgBreweriesToDomain(rows), nil
}

// BreweryByID returns a brewery by its ID, or nil when it does not exist.
func (p *PgSQL) BreweryByID(ctx context.Context, id domain.BreweryID) (*domain.Brewery, error) {
	var row PgBrewery
	found, err := p.Builder.From(breweriesTable).
		Prepared(true).
		Select(breweryColumns...).
		Where(goqu.C("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch brewery by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	b := row.ToDomain()

	return &b, nil
}

// StoreBreweries inserts the given breweries and returns the stored rows.
func (p *PgSQL) StoreBreweries(ctx context.Context, breweries ...domain.Brewery) ([]domain.Brewery, error) {
	if len(breweries) == 0 {
		return nil, nil
	}

	var result []PgBrewery
	if err := p.Builder.Insert(breweriesTable).
		Prepared(true).
		Rows(domainBreweriesToPg(breweries)).
		Returning(breweryColumns...).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store breweries into pg: %w", err)
	}

	return pgBreweriesToDomain(result), nil
}
