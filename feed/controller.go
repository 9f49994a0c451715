package feed

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "feed")
}

// BookmarkSource supplies the caller's bookmark list for a pipeline pass.
type BookmarkSource interface {
	ListBookmarks(accountNumber string) ([]schema.Bookmark, error)
}

// Deleter requests upstream removal of an expired post. Requests are
// fire-and-forget from the pipeline's point of view; any retry policy lives
// behind this interface.
type Deleter interface {
	RequestDeletion(postID primitive.ObjectID) error
}

// Controller glues the cache, bookmark store and deletion queue into
// pipeline passes. It guards upstream deletions with a per-id set so each
// expired post triggers exactly one request, even across repeated passes.
type Controller struct {
	cache     *Cache
	bookmarks BookmarkSource
	deleter   Deleter
	policy    Policy

	passes    tally.Counter
	visible   tally.Gauge
	deletions tally.Counter

	mu      sync.Mutex
	deleted map[primitive.ObjectID]struct{}
}

func NewController(cache *Cache, bookmarks BookmarkSource, deleter Deleter, policy Policy, scope tally.Scope) *Controller {
	return &Controller{
		cache:     cache,
		bookmarks: bookmarks,
		deleter:   deleter,
		policy:    policy,
		passes:    scope.Counter("pipeline_passes"),
		visible:   scope.Gauge("visible_posts"),
		deletions: scope.Counter("deletion_requests"),
		deleted:   map[primitive.ObjectID]struct{}{},
	}
}

// Run executes one pipeline pass for the given client at the given reference
// point. A failing bookmark load degrades to an empty list so a corrupted
// profile never takes the whole map down.
func (c *Controller) Run(accountNumber string, reference *schema.Location, now time.Time) []VisiblePost {
	c.passes.Inc(1)

	var bookmarks []schema.Bookmark
	if accountNumber != "" {
		var err error
		bookmarks, err = c.bookmarks.ListBookmarks(accountNumber)
		if err != nil {
			log.WithError(err).WithField("account_number", accountNumber).
				Warn("load bookmarks, proceeding with none")
			bookmarks = nil
		}
	}

	result := c.policy.Evaluate(Input{
		Posts:     c.cache.Snapshot(),
		Bookmarks: bookmarks,
		Reference: reference,
		Now:       now,
	})

	for _, id := range result.Expired {
		c.requestDeletion(id)
	}

	c.visible.Update(float64(len(result.Visible)))
	return result.Visible
}

// requestDeletion asks the deleter to remove an expired post at most once
// per id. Enqueue failures are logged and never retried here; the post will
// simply stay upstream until the next sweep.
func (c *Controller) requestDeletion(id primitive.ObjectID) {
	c.mu.Lock()
	if _, done := c.deleted[id]; done {
		c.mu.Unlock()
		return
	}
	c.deleted[id] = struct{}{}
	c.mu.Unlock()

	c.cache.Remove(id)
	c.deletions.Inc(1)

	if err := c.deleter.RequestDeletion(id); err != nil {
		log.WithError(err).WithField("post_id", id.Hex()).Error("request post deletion")
	}
}
