package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kindmap/kindmap-api/schema"
)

func landmarkAt(name string, loc schema.Location, priority int) schema.Landmark {
	return schema.Landmark{
		Name:     name,
		Location: schema.NewGeoJSON(loc),
		Priority: priority,
	}
}

func TestFindNearestLandmarkEmpty(t *testing.T) {
	assert.Nil(t, FindNearestLandmark(downtown, nil), "no landmarks should yield no label")
}

func TestFindNearestLandmarkByDistance(t *testing.T) {
	landmarks := []schema.Landmark{
		landmarkAt("far", metersNorth(downtown, 150), 1),
		landmarkAt("near", metersNorth(downtown, 50), 1),
	}

	best := FindNearestLandmark(downtown, landmarks)
	assert.NotNil(t, best)
	assert.Equal(t, "near", best.Name, "equal priority should fall back to distance")
}

func TestFindNearestLandmarkPriorityDominates(t *testing.T) {
	// A higher-priority landmark within the search radius beats a closer
	// lower-priority one.
	landmarks := []schema.Landmark{
		landmarkAt("corner store", metersNorth(downtown, 50), 1),
		landmarkAt("city hall", metersNorth(downtown, 150), 5),
	}

	best := FindNearestLandmark(downtown, landmarks)
	assert.NotNil(t, best)
	assert.Equal(t, "city hall", best.Name, "priority should dominate distance inside the search radius")
}

func TestFindNearestLandmarkPriorityBounded(t *testing.T) {
	// Outside the search radius priority no longer overrides distance.
	landmarks := []schema.Landmark{
		landmarkAt("corner store", metersNorth(downtown, 50), 1),
		landmarkAt("stadium", metersNorth(downtown, 500), 9),
	}

	best := FindNearestLandmark(downtown, landmarks)
	assert.NotNil(t, best)
	assert.Equal(t, "corner store", best.Name, "distant landmark should not win on priority alone")
}

func TestFindNearestLandmarkSkipsMalformed(t *testing.T) {
	landmarks := []schema.Landmark{
		{Name: "broken", Location: nil, Priority: 9},
		landmarkAt("park", metersNorth(downtown, 50), 1),
	}

	best := FindNearestLandmark(downtown, landmarks)
	assert.NotNil(t, best)
	assert.Equal(t, "park", best.Name, "records without coordinates should be skipped")
}
