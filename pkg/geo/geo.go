// Package geo implements the flat-earth bounding box used to prefilter
// proximity candidates and the exact radius ranking applied afterwards.
package geo

import (
	"math"
)

const (
	// MilesPerDegreeLat is the approximate length of one degree of latitude.
	MilesPerDegreeLat = 69.0
	// EarthRadiusMiles is the mean Earth radius used by the law of cosines.
	EarthRadiusMiles = 3959.0

	// maxLng bounds the longitude range a box is widened to near the poles,
	// where cos(lat) approaches zero and the longitude delta would diverge.
	maxLng    = 180.0
	minCosLat = 1e-9
)

// Box is an axis-aligned latitude/longitude rectangle.
type Box struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoundingBox returns the rectangle that encloses the circle of the given
// radius around (lat, lng). The rectangle over-approximates the circle: its
// corners lie roughly 41% farther than the radius, which Rank corrects.
//
// Near the poles, or when the circle crosses the antimeridian, the box spans
// every longitude in [-180, 180].
//
// Radius <= 0 is not special-cased; it yields a collapsed or inverted box
// that matches nothing.
func BoundingBox(lat, lng, radiusMiles float64) Box {
	latDelta := radiusMiles / MilesPerDegreeLat
	box := Box{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
	}

	cosLat := math.Abs(math.Cos(Radians(lat)))
	if radiusMiles > 0 && cosLat <= minCosLat {
		box.MinLng, box.MaxLng = -maxLng, maxLng

		return box
	}

	lngDelta := radiusMiles / (MilesPerDegreeLat * math.Max(cosLat, minCosLat))
	if radiusMiles > 0 && (lngDelta >= maxLng || lng-lngDelta < -maxLng || lng+lngDelta > maxLng) {
		box.MinLng, box.MaxLng = -maxLng, maxLng

		return box
	}

	box.MinLng = lng - lngDelta
	box.MaxLng = lng + lngDelta

	return box
}

// Contains reports whether the point lies inside the box, edges included.
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance in miles between two points
// using the spherical law of cosines. It mirrors the expression evaluated by
// the entity store so in-process checks agree with server-side ordering.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	cosAngle := math.Cos(Radians(lat1))*math.Cos(Radians(lat2))*math.Cos(Radians(lng2)-Radians(lng1)) +
		math.Sin(Radians(lat1))*math.Sin(Radians(lat2))

	// rounding can push identical points slightly above 1
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	return EarthRadiusMiles * math.Acos(cosAngle)
}
