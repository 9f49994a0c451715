package schema

const (
	LandmarkCollection = "landmark"
)

// Landmark is a static named reference point used to produce human-readable
// location labels. Landmarks are loaded once by the importer and never
// mutated at runtime.
type Landmark struct {
	Name     string   `bson:"name" json:"name"`
	Location *GeoJSON `bson:"location" json:"-"`
	Priority int      `bson:"priority" json:"priority"`
}

// Coordinates returns the landmark position, or nil for a malformed record.
func (l Landmark) Coordinates() *Location {
	return l.Location.ToLocation()
}
