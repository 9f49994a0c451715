package geo

import (
	"github.com/golang/geo/s2"

	"github.com/kindmap/kindmap-api/schema"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle math.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two points in meters.
func Distance(a, b schema.Location) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// WithinRadius reports whether p lies within radiusMeters of center. Points
// with non-finite coordinates are never within any radius.
func WithinRadius(p, center schema.Location, radiusMeters float64) bool {
	if !p.Valid() || !center.Valid() {
		return false
	}
	return Distance(p, center) <= radiusMeters
}
