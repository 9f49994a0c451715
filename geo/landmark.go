package geo

import (
	"github.com/kindmap/kindmap-api/schema"
)

// PrioritySearchRadiusMeters bounds the area in which a landmark's priority
// can override plain distance when picking a label.
const PrioritySearchRadiusMeters = 200.0

// FindNearestLandmark scans landmarks for the best label for point. Within
// the priority-search radius a strictly higher priority wins outright; among
// equal priorities the smaller distance wins. The first landmark seen seeds
// the result, so ties resolve deterministically given stable input order.
// Returns nil when no landmarks are loaded.
func FindNearestLandmark(point schema.Location, landmarks []schema.Landmark) *schema.Landmark {
	var best *schema.Landmark
	var bestDistance float64

	for i := range landmarks {
		l := landmarks[i]
		coords := l.Coordinates()
		if coords == nil {
			continue
		}
		d := Distance(point, *coords)

		if best == nil {
			best = &landmarks[i]
			bestDistance = d
			continue
		}

		if d <= PrioritySearchRadiusMeters && l.Priority > best.Priority {
			best = &landmarks[i]
			bestDistance = d
			continue
		}

		if l.Priority == best.Priority && d < bestDistance {
			best = &landmarks[i]
			bestDistance = d
		}
	}

	return best
}
