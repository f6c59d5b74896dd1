package domain

// DefaultRadiusMiles is used when a proximity query does not specify a radius.
const DefaultRadiusMiles = 50.0

// GeoQuery describes a proximity search around a coordinate.
type GeoQuery struct {
	// Lat is the latitude of the search center in degrees.
	Lat float64
	// Lng is the longitude of the search center in degrees.
	Lng float64
	// RadiusMiles is the search radius. Results are strictly closer than this.
	RadiusMiles float64
}

// RankedBrewery is a brewery together with its distance from the query
// center. It only exists while a response is being built.
type RankedBrewery struct {
	Brewery
	// DistanceMiles is the great-circle distance from the query center.
	DistanceMiles float64 `json:"distance"`
}
