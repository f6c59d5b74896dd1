package geo_test

import (
	"math"
	"testing"

	"brewery/pkg/domain"
	"brewery/pkg/geo"

	"github.com/stretchr/testify/require"
)

func candidates(distances ...float64) []domain.RankedBrewery {
	out := make([]domain.RankedBrewery, len(distances))
	for i, d := range distances {
		out[i] = domain.RankedBrewery{
			Brewery:       domain.Brewery{Name: "b"},
			DistanceMiles: d,
		}
	}

	return out
}

func TestRank_StrictRadius(t *testing.T) {
	const radius = 10.0
	eps := 1e-9

	got := geo.Rank(candidates(1, radius-eps, radius, radius+eps), radius, 50)

	require.Len(t, got, 2)
	require.InDelta(t, 1, got[0].DistanceMiles, 0)
	require.InDelta(t, radius-eps, got[1].DistanceMiles, 0)
	for _, r := range got {
		require.Less(t, r.DistanceMiles, radius)
	}
}

func TestRank_Cap(t *testing.T) {
	distances := make([]float64, 100)
	for i := range distances {
		distances[i] = float64(i) * 0.1
	}

	got := geo.Rank(candidates(distances...), 50, 50)

	require.Len(t, got, 50)
	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, got[i-1].DistanceMiles, got[i].DistanceMiles)
	}
}

func TestRank_FewerSurvivorsThanCap(t *testing.T) {
	// the prefilter returned a full page of candidates, most outside the circle
	distances := make([]float64, 100)
	for i := range distances {
		distances[i] = float64(i)
	}

	got := geo.Rank(candidates(distances...), 5, 50)

	require.Len(t, got, 5)
	require.InDelta(t, 4, got[len(got)-1].DistanceMiles, 0)
}

func TestRank_NonPositiveRadius(t *testing.T) {
	require.Empty(t, geo.Rank(candidates(0, 1, 2), 0, 50))
	require.Empty(t, geo.Rank(candidates(0, 1, 2), -5, 50))
}

func TestRank_NaNDistanceExcluded(t *testing.T) {
	got := geo.Rank(candidates(math.NaN(), 1), 10, 50)

	require.Len(t, got, 1)
	require.InDelta(t, 1, got[0].DistanceMiles, 0)
}

func TestRank_Empty(t *testing.T) {
	require.Empty(t, geo.Rank(nil, 10, 50))
	require.Empty(t, geo.Rank(candidates(1, 2), 10, 0))
}
