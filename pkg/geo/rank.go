package geo

import "brewery/pkg/domain"

// Rank keeps the candidates strictly closer than radiusMiles and returns at
// most limit of them. Candidates must already be sorted by ascending
// distance; their order is preserved. A candidate exactly on the radius is
// excluded.
func Rank(candidates []domain.RankedBrewery, radiusMiles float64, limit int) []domain.RankedBrewery {
	out := make([]domain.RankedBrewery, 0, min(len(candidates), max(limit, 0)))
	for _, c := range candidates {
		if len(out) >= limit {
			break
		}
		if !(c.DistanceMiles < radiusMiles) {
			continue
		}

		out = append(out, c)
	}

	return out
}
