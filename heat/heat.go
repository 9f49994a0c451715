// Package heat classifies post density into discrete levels used by clients
// to color annotations.
package heat

import (
	"github.com/kindmap/kindmap-api/geo"
	"github.com/kindmap/kindmap-api/schema"
)

// RadiusMeters is the neighborhood radius a post's density is measured over.
const RadiusMeters = 250.0

// levelThresholds are ascending neighbor-count cutoffs for levels 0..2;
// counts above the last threshold map to level 3.
var levelThresholds = [...]int{1, 3, 7}

// MaxLevel is the hottest density level.
const MaxLevel = len(levelThresholds)

// Level buckets a neighbor count (self included) into a density level 0..3.
func Level(count int) int {
	for level, threshold := range levelThresholds {
		if count <= threshold {
			return level
		}
	}
	return MaxLevel
}

// CountNeighbors returns how many candidates lie within RadiusMeters of the
// post, the post itself included. Candidates without usable coordinates are
// skipped.
func CountNeighbors(post schema.Post, candidates []schema.Post) int {
	center := post.Coordinates()
	if center == nil || !center.Valid() {
		return 0
	}

	count := 0
	for _, c := range candidates {
		coords := c.Coordinates()
		if coords == nil {
			continue
		}
		if geo.WithinRadius(*coords, *center, RadiusMeters) {
			count++
		}
	}
	return count
}

// LevelFor computes the density level of a post against the candidate set.
// Stickers and doodles never carry heat.
func LevelFor(post schema.Post, candidates []schema.Post) int {
	if !post.Type.HasHeat() {
		return 0
	}
	return Level(CountNeighbors(post, candidates))
}
