package schema

import "math"

// Location is a lat/lng pair in degrees.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Valid reports whether both coordinates are finite numbers. Posts coming
// from older clients may carry no coordinates at all; distance comparisons
// against NaN are always false, so callers must check this before filtering
// by radius.
func (l Location) Valid() bool {
	return !math.IsNaN(l.Latitude) && !math.IsInf(l.Latitude, 0) &&
		!math.IsNaN(l.Longitude) && !math.IsInf(l.Longitude, 0)
}

// GeoJSON is the mongodb geospatial point representation. Coordinates are
// in [longitude, latitude] order.
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoJSON returns a GeoJSON point for the given location.
func NewGeoJSON(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// ToLocation converts a GeoJSON point back to a Location. Returns nil for a
// malformed point.
func (g *GeoJSON) ToLocation() *Location {
	if g == nil || len(g.Coordinates) < 2 {
		return nil
	}
	return &Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}
