package directory_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"brewery/internal/directory"
	"brewery/pkg/domain"
	"brewery/pkg/serrors"
	"brewery/pkg/storage"

	mockstorage "brewery/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ohio = domain.ScopedRegion("ohio", domain.State{Name: "Ohio", Abbrev: "OH"}, "https://ohio.example.com")

func newTestDirectory(t *testing.T) (*mockstorage.MockStorage, directory.Directory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	d := directory.New(st, directory.Options{CandidateLimit: 100, ResultLimit: 3, SearchLimit: 100})

	return st, d
}

func ranked(name string, distance float64) domain.RankedBrewery {
	return domain.RankedBrewery{Brewery: domain.Brewery{Name: name}, DistanceMiles: distance}
}

func TestDirectory_Nearby_RanksCandidates(t *testing.T) {
	st, d := newTestDirectory(t)

	q := domain.GeoQuery{Lat: 39.96, Lng: -82.99, RadiusMiles: 10}
	st.EXPECT().NearbyBreweries(gomock.Any(), storage.NearbyQuery{GeoQuery: q, Limit: 100}).
		Return([]domain.RankedBrewery{
			ranked("a", 0),
			ranked("b", 4),
			ranked("c", 9.999),
			ranked("boundary", 10),
			ranked("corner", 12),
		}, nil)

	res, err := d.Nearby(context.Background(), domain.UnscopedRegion("https://example.com"), q)
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, "a", res[0].Name)
	require.Equal(t, "c", res[2].Name)
	for _, r := range res {
		require.Less(t, r.DistanceMiles, q.RadiusMiles)
	}
}

func TestDirectory_Nearby_CapsResults(t *testing.T) {
	st, d := newTestDirectory(t)

	q := domain.GeoQuery{Lat: 39.96, Lng: -82.99, RadiusMiles: 50}
	st.EXPECT().NearbyBreweries(gomock.Any(), gomock.Any()).
		Return([]domain.RankedBrewery{ranked("a", 1), ranked("b", 2), ranked("c", 3), ranked("d", 4)}, nil)

	res, err := d.Nearby(context.Background(), domain.UnscopedRegion(""), q)
	require.NoError(t, err)
	require.Len(t, res, 3)
}

func TestDirectory_Nearby_ScopeFiltersState(t *testing.T) {
	st, d := newTestDirectory(t)

	q := domain.GeoQuery{Lat: 39.96, Lng: -82.99, RadiusMiles: 50}
	st.EXPECT().NearbyBreweries(gomock.Any(), storage.NearbyQuery{GeoQuery: q, StateAbbrev: "OH", Limit: 100}).
		Return(nil, nil)

	res, err := d.Nearby(context.Background(), ohio, q)
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestDirectory_Nearby_RejectsNonFinite(t *testing.T) {
	_, d := newTestDirectory(t)

	for _, q := range []domain.GeoQuery{
		{Lat: math.NaN(), Lng: 0, RadiusMiles: 50},
		{Lat: 0, Lng: math.Inf(1), RadiusMiles: 50},
		{Lat: 0, Lng: 0, RadiusMiles: math.Inf(-1)},
	} {
		_, err := d.Nearby(context.Background(), domain.UnscopedRegion(""), q)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
}

func TestDirectory_Nearby_StorageError(t *testing.T) {
	st, d := newTestDirectory(t)

	dbErr := errors.New("connection refused")
	st.EXPECT().NearbyBreweries(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := d.Nearby(context.Background(), domain.UnscopedRegion(""), domain.GeoQuery{RadiusMiles: 1})
	require.ErrorIs(t, err, dbErr)
}

func TestDirectory_Search(t *testing.T) {
	st, d := newTestDirectory(t)

	st.EXPECT().SearchBreweries(gomock.Any(), storage.SearchQuery{Text: "hops", StateAbbrev: "OH", Limit: 100}).
		Return([]domain.Brewery{{Name: "Hopsmith"}}, nil)

	res, err := d.Search(context.Background(), ohio, "  hops ")
	require.NoError(t, err)
	require.Len(t, res, 1)

	_, err = d.Search(context.Background(), ohio, "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestDirectory_List(t *testing.T) {
	st, d := newTestDirectory(t)

	st.EXPECT().ListBreweries(gomock.Any(), "", uint(100)).Return([]domain.Brewery{{Name: "a"}, {Name: "b"}}, nil)
	st.EXPECT().ListBreweries(gomock.Any(), "OH", uint(100)).Return([]domain.Brewery{{Name: "a"}}, nil)

	all, err := d.List(context.Background(), domain.UnscopedRegion(""))
	require.NoError(t, err)
	require.Len(t, all, 2)

	scoped, err := d.List(context.Background(), ohio)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
}

func TestDirectory_Brewery(t *testing.T) {
	st, d := newTestDirectory(t)

	id := domain.BreweryID(uuid.New())
	st.EXPECT().BreweryByID(gomock.Any(), id).Return(&domain.Brewery{ID: id, Name: "a"}, nil)

	b, err := d.Brewery(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "a", b.Name)

	missing := domain.BreweryID(uuid.New())
	st.EXPECT().BreweryByID(gomock.Any(), missing).Return(nil, nil)

	_, err = d.Brewery(context.Background(), missing)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
