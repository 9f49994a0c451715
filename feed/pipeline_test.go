package feed

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/schema"
)

var mapCenter = schema.Location{Latitude: 49.2827, Longitude: -123.1207}

func metersNorth(loc schema.Location, meters float64) schema.Location {
	return schema.Location{
		Latitude:  loc.Latitude + meters/(6371000.0*math.Pi/180),
		Longitude: loc.Longitude,
	}
}

func notePost(loc schema.Location, created, expires time.Time) schema.Post {
	return schema.Post{
		ID:        primitive.NewObjectID(),
		Type:      schema.PostTypeNote,
		Location:  schema.NewGeoJSON(loc),
		CreatedAt: created,
		ExpiresAt: expires,
	}
}

func openPolicy() Policy {
	return Policy{
		VisibilityRadiusMeters: 0,
		BookmarksBypassRadius:  true,
		DefaultCenter:          mapCenter,
	}
}

func TestEvaluateExpiredPostDropped(t *testing.T) {
	now := time.Now().UTC()
	live := notePost(mapCenter, now.Add(-48*time.Hour), now.Add(-time.Hour))
	fresh := notePost(mapCenter, now.Add(-time.Hour), now.Add(time.Hour))

	result := openPolicy().Evaluate(Input{
		Posts: []schema.Post{live, fresh},
		Now:   now,
	})

	assert.Len(t, result.Visible, 1)
	assert.Equal(t, fresh.ID.Hex(), result.Visible[0].ID)
	assert.Equal(t, []primitive.ObjectID{live.ID}, result.Expired, "the dropped post should be flagged for deletion")
}

func TestEvaluateDeterministicRerun(t *testing.T) {
	// The pass is a pure function: re-running the same input yields the
	// same expired set every time. At-most-once deletion lives in the
	// controller, not here.
	now := time.Now().UTC()
	expired := notePost(mapCenter, now.Add(-48*time.Hour), now.Add(-time.Hour))
	in := Input{Posts: []schema.Post{expired}, Now: now}

	first := openPolicy().Evaluate(in)
	second := openPolicy().Evaluate(in)
	assert.Equal(t, first.Expired, second.Expired)
}

func TestEvaluateBookmarkKeepsExpired(t *testing.T) {
	now := time.Now().UTC()
	expired := notePost(mapCenter, now.Add(-48*time.Hour), now.Add(-time.Hour))

	result := openPolicy().Evaluate(Input{
		Posts:     []schema.Post{expired},
		Bookmarks: []schema.Bookmark{schema.SnapshotOf(expired, now)},
		Now:       now,
	})

	assert.Empty(t, result.Expired, "a bookmarked post is never flagged for deletion")
	assert.Len(t, result.Visible, 1)
	assert.True(t, result.Visible[0].Bookmarked)
}

func TestEvaluateBookmarkSnapshotFillsGap(t *testing.T) {
	// The live record is already gone; the bookmark snapshot alone keeps
	// the post on the map.
	now := time.Now().UTC()
	gone := notePost(mapCenter, now.Add(-48*time.Hour), now.Add(-time.Hour))
	gone.Message = "thanks for the umbrella"

	result := openPolicy().Evaluate(Input{
		Bookmarks: []schema.Bookmark{schema.SnapshotOf(gone, now)},
		Now:       now,
	})

	assert.Len(t, result.Visible, 1)
	assert.Equal(t, "thanks for the umbrella", result.Visible[0].Message)
}

func TestEvaluateLiveBeatsBookmark(t *testing.T) {
	now := time.Now().UTC()
	post := notePost(mapCenter, now.Add(-time.Hour), now.Add(time.Hour))
	stale := post
	stale.Message = "old snapshot"
	post.Message = "current"

	result := openPolicy().Evaluate(Input{
		Posts:     []schema.Post{post},
		Bookmarks: []schema.Bookmark{schema.SnapshotOf(stale, now)},
		Now:       now,
	})

	assert.Len(t, result.Visible, 1)
	assert.Equal(t, "current", result.Visible[0].Message, "live data should win over the snapshot")
	assert.True(t, result.Visible[0].Bookmarked)
}

func TestEvaluateVisibilityRadius(t *testing.T) {
	now := time.Now().UTC()
	near := notePost(metersNorth(mapCenter, 80), now, now.Add(time.Hour))
	far := notePost(metersNorth(mapCenter, 400), now, now.Add(time.Hour))

	policy := openPolicy()
	policy.VisibilityRadiusMeters = 100

	result := policy.Evaluate(Input{
		Posts:     []schema.Post{near, far},
		Reference: &mapCenter,
		Now:       now,
	})

	assert.Len(t, result.Visible, 1)
	assert.Equal(t, near.ID.Hex(), result.Visible[0].ID)
	assert.Empty(t, result.Expired, "out-of-range posts are hidden, not deleted")
}

func TestEvaluateBookmarkBypassesRadius(t *testing.T) {
	now := time.Now().UTC()
	far := notePost(metersNorth(mapCenter, 400), now, now.Add(time.Hour))

	policy := openPolicy()
	policy.VisibilityRadiusMeters = 100

	result := policy.Evaluate(Input{
		Posts:     []schema.Post{far},
		Bookmarks: []schema.Bookmark{schema.SnapshotOf(far, now)},
		Reference: &mapCenter,
		Now:       now,
	})

	assert.Len(t, result.Visible, 1, "bookmarked posts should ignore the visibility radius")
}

func TestEvaluateZeroRadiusUnrestricted(t *testing.T) {
	now := time.Now().UTC()
	far := notePost(metersNorth(mapCenter, 50000), now, now.Add(time.Hour))

	result := openPolicy().Evaluate(Input{
		Posts:     []schema.Post{far},
		Reference: &mapCenter,
		Now:       now,
	})

	assert.Len(t, result.Visible, 1, "a zero radius disables the distance filter")
}

func TestEvaluateInvalidCoordinatesExcluded(t *testing.T) {
	now := time.Now().UTC()
	bad := notePost(schema.Location{Latitude: math.NaN(), Longitude: -123.1}, now, now.Add(time.Hour))
	missing := schema.Post{ID: primitive.NewObjectID(), Type: schema.PostTypeNote, ExpiresAt: now.Add(time.Hour)}

	result := openPolicy().Evaluate(Input{
		Posts: []schema.Post{bad, missing},
		Now:   now,
	})

	assert.Empty(t, result.Visible, "unplaceable posts never reach the map")
}

func TestEvaluateHeatAnnotated(t *testing.T) {
	now := time.Now().UTC()
	posts := []schema.Post{
		notePost(mapCenter, now, now.Add(time.Hour)),
		notePost(metersNorth(mapCenter, 50), now, now.Add(time.Hour)),
		notePost(metersNorth(mapCenter, 100), now, now.Add(time.Hour)),
	}

	result := openPolicy().Evaluate(Input{Posts: posts, Now: now})

	assert.Len(t, result.Visible, 3)
	for _, v := range result.Visible {
		assert.Equal(t, 1, v.Heat, "three posts in one cluster should all be level 1")
	}
}

func TestEvaluateExpiredExcludedFromHeat(t *testing.T) {
	now := time.Now().UTC()
	posts := []schema.Post{
		notePost(mapCenter, now, now.Add(time.Hour)),
		notePost(metersNorth(mapCenter, 50), now.Add(-48*time.Hour), now.Add(-time.Hour)),
	}

	result := openPolicy().Evaluate(Input{Posts: posts, Now: now})

	assert.Len(t, result.Visible, 1)
	assert.Equal(t, 0, result.Visible[0].Heat, "the expired neighbor must not contribute density")
}

func TestEvaluateSortedByCreation(t *testing.T) {
	now := time.Now().UTC()
	newer := notePost(mapCenter, now.Add(-time.Minute), now.Add(time.Hour))
	older := notePost(mapCenter, now.Add(-time.Hour), now.Add(time.Hour))

	result := openPolicy().Evaluate(Input{
		Posts: []schema.Post{newer, older},
		Now:   now,
	})

	assert.Len(t, result.Visible, 2)
	assert.Equal(t, older.ID.Hex(), result.Visible[0].ID, "oldest post should come first")
}
