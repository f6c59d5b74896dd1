package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"brewery/pkg/domain"
	"brewery/pkg/geo"
	"brewery/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	columbusLat = 39.9612
	columbusLng = -82.9988
)

func ptr(f float64) *float64 { return &f }

func located(name, abbrev string, lat, lng float64) domain.Brewery {
	return domain.Brewery{
		Name:        name,
		City:        "Columbus",
		State:       "Ohio",
		StateAbbrev: abbrev,
		Latitude:    ptr(lat),
		Longitude:   ptr(lng),
	}
}

func TestPgSQL_StoreBreweries(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("store with and without coordinates", func(t *testing.T) {
		res, err := pg.StoreBreweries(ctx,
			located("Land-Grant Brewing", "OH", columbusLat, columbusLng),
			domain.Brewery{Name: "Nowhere Brewing", BreweryType: "planning"},
		)
		require.NoError(t, err)
		require.Len(t, res, 2)

		require.NotEqual(t, uuid.Nil, uuid.UUID(res[0].ID))
		require.False(t, res[0].CreatedAt.IsZero())
		require.True(t, res[0].HasCoordinates())
		require.InDelta(t, columbusLat, *res[0].Latitude, 1e-9)

		require.False(t, res[1].HasCoordinates())
		require.Equal(t, "planning", res[1].BreweryType)
	})

	t.Run("store empty", func(t *testing.T) {
		res, err := pg.StoreBreweries(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_BreweryByID(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	stored, err := pg.StoreBreweries(ctx, located("Wolf's Ridge", "OH", columbusLat, columbusLng))
	require.NoError(t, err)

	got, err := pg.BreweryByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Wolf's Ridge", got.Name)
	require.Equal(t, "OH", got.StateAbbrev)

	missing, err := pg.BreweryByID(ctx, domain.BreweryID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_NearbyBreweries(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	const radius = 50.0
	box := geo.BoundingBox(columbusLat, columbusLng, radius)
	latDelta := box.MaxLat - columbusLat
	lngDelta := box.MaxLng - columbusLng

	_, err := pg.StoreBreweries(ctx,
		located("center", "OH", columbusLat, columbusLng),
		located("ten north", "OH", columbusLat+10/geo.MilesPerDegreeLat, columbusLng),
		located("thirty north", "OH", columbusLat+30/geo.MilesPerDegreeLat, columbusLng),
		located("sixty north", "OH", columbusLat+60/geo.MilesPerDegreeLat, columbusLng),
		// inside the box but outside the circle
		located("corner", "OH", columbusLat+0.9*latDelta, columbusLng+0.9*lngDelta),
		located("twenty east", "MI", columbusLat, columbusLng+20/(geo.MilesPerDegreeLat*0.766)),
		domain.Brewery{Name: "no coordinates", StateAbbrev: "OH"},
		domain.Brewery{Name: "latitude only", StateAbbrev: "OH", Latitude: ptr(columbusLat)},
	)
	require.NoError(t, err)

	t.Run("box candidates ordered by distance", func(t *testing.T) {
		res, err := pg.NearbyBreweries(ctx, storage.NearbyQuery{
			GeoQuery: domain.GeoQuery{Lat: columbusLat, Lng: columbusLng, RadiusMiles: radius},
			Limit:    100,
		})
		require.NoError(t, err)

		names := make([]string, 0, len(res))
		for _, r := range res {
			names = append(names, r.Name)
			require.True(t, r.HasCoordinates())
			require.InDelta(t,
				geo.Distance(columbusLat, columbusLng, *r.Latitude, *r.Longitude),
				r.DistanceMiles, 1e-6)
		}
		require.Equal(t, []string{"center", "ten north", "twenty east", "thirty north", "corner"}, names)

		for i := 1; i < len(res); i++ {
			require.LessOrEqual(t, res[i-1].DistanceMiles, res[i].DistanceMiles)
		}
		require.InDelta(t, 0, res[0].DistanceMiles, 1e-6)
		// the prefilter over-approximates; the corner row lies outside the radius
		require.Greater(t, res[len(res)-1].DistanceMiles, radius)
	})

	t.Run("state filter", func(t *testing.T) {
		res, err := pg.NearbyBreweries(ctx, storage.NearbyQuery{
			GeoQuery:    domain.GeoQuery{Lat: columbusLat, Lng: columbusLng, RadiusMiles: radius},
			StateAbbrev: "MI",
			Limit:       100,
		})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "twenty east", res[0].Name)
	})

	t.Run("limit", func(t *testing.T) {
		res, err := pg.NearbyBreweries(ctx, storage.NearbyQuery{
			GeoQuery: domain.GeoQuery{Lat: columbusLat, Lng: columbusLng, RadiusMiles: radius},
			Limit:    2,
		})
		require.NoError(t, err)
		require.Len(t, res, 2)
		require.Equal(t, "center", res[0].Name)
	})

	t.Run("non-positive radius yields nothing", func(t *testing.T) {
		for _, r := range []float64{0, -25} {
			res, err := pg.NearbyBreweries(ctx, storage.NearbyQuery{
				GeoQuery: domain.GeoQuery{Lat: columbusLat + 1, Lng: columbusLng + 1, RadiusMiles: r},
				Limit:    100,
			})
			require.NoError(t, err)
			require.Empty(t, res)
		}
	})

	t.Run("polar query does not fail", func(t *testing.T) {
		res, err := pg.NearbyBreweries(ctx, storage.NearbyQuery{
			GeoQuery: domain.GeoQuery{Lat: 90, Lng: 0, RadiusMiles: radius},
			Limit:    100,
		})
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_NearbyBreweries_CandidateCap(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	breweries := make([]domain.Brewery, 0, 120)
	for i := 0; i < 120; i++ {
		breweries = append(breweries,
			located(fmt.Sprintf("brewery %03d", i), "OH", columbusLat+float64(i)*0.001, columbusLng))
	}
	_, err := pg.StoreBreweries(ctx, breweries...)
	require.NoError(t, err)

	res, err := pg.NearbyBreweries(ctx, storage.NearbyQuery{
		GeoQuery: domain.GeoQuery{Lat: columbusLat, Lng: columbusLng, RadiusMiles: 50},
		Limit:    100,
	})
	require.NoError(t, err)
	require.Len(t, res, 100)
	require.Equal(t, "brewery 000", res[0].Name)
	require.Equal(t, "brewery 099", res[99].Name)
}

func TestPgSQL_SearchBreweries(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pg.StoreBreweries(ctx,
		domain.Brewery{Name: "Zauber Brewing", City: "Columbus", State: "Ohio", StateAbbrev: "OH"},
		domain.Brewery{Name: "Bell's Brewery", City: "Kalamazoo", State: "Michigan", StateAbbrev: "MI"},
		domain.Brewery{Name: "Athens Brewing", City: "Athens", State: "Ohio", StateAbbrev: "OH"},
		domain.Brewery{Name: "100% Hops", City: "Dayton", State: "Ohio", StateAbbrev: "OH"},
	)
	require.NoError(t, err)

	names := func(bs []domain.Brewery) []string {
		out := make([]string, 0, len(bs))
		for _, b := range bs {
			out = append(out, b.Name)
		}

		return out
	}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		res, err := pg.SearchBreweries(ctx, storage.SearchQuery{Text: "BREWING", Limit: 100})
		require.NoError(t, err)
		require.Equal(t, []string{"Athens Brewing", "Zauber Brewing"}, names(res))
	})

	t.Run("matches city and state", func(t *testing.T) {
		res, err := pg.SearchBreweries(ctx, storage.SearchQuery{Text: "kalamazoo", Limit: 100})
		require.NoError(t, err)
		require.Equal(t, []string{"Bell's Brewery"}, names(res))

		res, err = pg.SearchBreweries(ctx, storage.SearchQuery{Text: "ohio", Limit: 100})
		require.NoError(t, err)
		require.Equal(t, []string{"100% Hops", "Athens Brewing", "Zauber Brewing"}, names(res))
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		res, err := pg.SearchBreweries(ctx, storage.SearchQuery{Text: "0%", Limit: 100})
		require.NoError(t, err)
		require.Equal(t, []string{"100% Hops"}, names(res))

		res, err = pg.SearchBreweries(ctx, storage.SearchQuery{Text: "_", Limit: 100})
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("state filter and limit", func(t *testing.T) {
		res, err := pg.SearchBreweries(ctx, storage.SearchQuery{Text: "b", StateAbbrev: "MI", Limit: 100})
		require.NoError(t, err)
		require.Equal(t, []string{"Bell's Brewery"}, names(res))

		res, err = pg.SearchBreweries(ctx, storage.SearchQuery{Text: "ohio", Limit: 1})
		require.NoError(t, err)
		require.Len(t, res, 1)
	})

	t.Run("quotes are bound, not spliced", func(t *testing.T) {
		res, err := pg.SearchBreweries(ctx, storage.SearchQuery{Text: "'; DROP TABLE breweries; --", Limit: 100})
		require.NoError(t, err)
		require.Empty(t, res)

		res, err = pg.SearchBreweries(ctx, storage.SearchQuery{Text: "bell's", Limit: 100})
		require.NoError(t, err)
		require.Len(t, res, 1)
	})
}

func TestPgSQL_ListBreweries(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pg.StoreBreweries(ctx,
		domain.Brewery{Name: "b", StateAbbrev: "OH"},
		domain.Brewery{Name: "a", StateAbbrev: "OH"},
		domain.Brewery{Name: "c", StateAbbrev: "TX"},
	)
	require.NoError(t, err)

	all, err := pg.ListBreweries(ctx, "", 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "a", all[0].Name)

	ohio, err := pg.ListBreweries(ctx, "OH", 100)
	require.NoError(t, err)
	require.Len(t, ohio, 2)
	require.Equal(t, "a", ohio[0].Name)
	require.Equal(t, "b", ohio[1].Name)

	limited, err := pg.ListBreweries(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestPgSQL_NearbyBreweries_WrapsLongitude(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pg.StoreBreweries(ctx,
		located("across the pole", "", 89.995, -150),
		located("across the antimeridian", "", 0, -179.8),
	)
	require.NoError(t, err)

	t.Run("near the pole", func(t *testing.T) {
		res, err := pg.NearbyBreweries(ctx, storage.NearbyQuery{
			GeoQuery: domain.GeoQuery{Lat: 89.99, Lng: 100, RadiusMiles: 50},
			Limit:    100,
		})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "across the pole", res[0].Name)
		require.Less(t, res[0].DistanceMiles, 1.0)
	})

	t.Run("near the antimeridian", func(t *testing.T) {
		res, err := pg.NearbyBreweries(ctx, storage.NearbyQuery{
			GeoQuery: domain.GeoQuery{Lat: 0, Lng: 179.9, RadiusMiles: 50},
			Limit:    100,
		})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "across the antimeridian", res[0].Name)
		require.InDelta(t, 20.7, res[0].DistanceMiles, 0.2)
	})
}
