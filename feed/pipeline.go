package feed

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/geo"
	"github.com/kindmap/kindmap-api/heat"
	"github.com/kindmap/kindmap-api/schema"
)

// Policy holds the product-tunable visibility knobs. The creation radius has
// changed between releases (100 m, 300 m, unrestricted), so it is
// configuration rather than a constant; a radius of zero disables the
// distance filter entirely.
type Policy struct {
	VisibilityRadiusMeters float64
	BookmarksBypassRadius  bool
	DefaultCenter          schema.Location
}

// Input is the canonical state a single pipeline pass evaluates: a snapshot
// of live posts, the caller's bookmarks, the reference point (the device
// location, nil to fall back to the configured map center), and the clock.
type Input struct {
	Posts     []schema.Post
	Bookmarks []schema.Bookmark
	Reference *schema.Location
	Now       time.Time
}

// VisiblePost is a post the client should draw, annotated with its density
// level for the current pass.
type VisiblePost struct {
	schema.PostDetail
	Heat       int  `json:"heat"`
	Bookmarked bool `json:"bookmarked"`
}

// Result of one pipeline pass. Expired lists live posts that were dropped
// from view and should be deleted upstream; the caller is responsible for
// requesting each deletion at most once.
type Result struct {
	Visible []VisiblePost
	Expired []primitive.ObjectID
}

// Evaluate runs one pipeline pass. It is a pure function of its input: no
// I/O, no shared state, safe to re-run at any time.
func (p Policy) Evaluate(in Input) Result {
	bookmarked := make(map[primitive.ObjectID]struct{}, len(in.Bookmarks))
	for _, b := range in.Bookmarks {
		bookmarked[b.PostID] = struct{}{}
	}

	// Candidate set is live posts plus bookmark snapshots, de-duplicated by
	// id. Live data always wins; bookmarks only fill gaps left by expiry.
	seen := make(map[primitive.ObjectID]struct{}, len(in.Posts))
	candidates := make([]schema.Post, 0, len(in.Posts)+len(in.Bookmarks))
	for _, post := range in.Posts {
		if _, dup := seen[post.ID]; dup {
			continue
		}
		seen[post.ID] = struct{}{}
		candidates = append(candidates, post)
	}
	for _, b := range in.Bookmarks {
		if _, dup := seen[b.PostID]; dup {
			continue
		}
		seen[b.PostID] = struct{}{}
		candidates = append(candidates, b.AsPost())
	}

	var result Result
	survivors := make([]schema.Post, 0, len(candidates))
	for _, post := range candidates {
		_, isBookmarked := bookmarked[post.ID]
		if post.IsExpired(in.Now) && !isBookmarked {
			result.Expired = append(result.Expired, post.ID)
			continue
		}
		survivors = append(survivors, post)
	}

	reference := p.DefaultCenter
	if in.Reference != nil {
		reference = *in.Reference
	}

	for _, post := range survivors {
		coords := post.Coordinates()
		if coords == nil || !coords.Valid() {
			// Legacy records without coordinates cannot be placed on the
			// map; they are excluded here rather than letting NaN leak
			// into distance comparisons.
			continue
		}

		_, isBookmarked := bookmarked[post.ID]
		switch {
		case isBookmarked && p.BookmarksBypassRadius:
		case p.VisibilityRadiusMeters <= 0:
		case geo.WithinRadius(*coords, reference, p.VisibilityRadiusMeters):
		default:
			continue
		}

		result.Visible = append(result.Visible, VisiblePost{
			PostDetail: post.Detail(),
			Heat:       heat.LevelFor(post, survivors),
			Bookmarked: isBookmarked,
		})
	}

	sort.SliceStable(result.Visible, func(i, j int) bool {
		return result.Visible[i].CreatedAt.Before(result.Visible[j].CreatedAt)
	})

	return result
}
