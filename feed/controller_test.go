package feed

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/schema"
)

type stubBookmarks struct {
	bookmarks []schema.Bookmark
	err       error
}

func (s *stubBookmarks) ListBookmarks(string) ([]schema.Bookmark, error) {
	return s.bookmarks, s.err
}

type stubDeleter struct {
	mu       sync.Mutex
	requests []primitive.ObjectID
	err      error
}

func (s *stubDeleter) RequestDeletion(id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, id)
	return s.err
}

func TestControllerDeletesExpiredOnce(t *testing.T) {
	now := time.Now().UTC()
	cache := NewCache()
	expired := notePost(mapCenter, now.Add(-48*time.Hour), now.Add(-time.Hour))
	cache.Upsert(expired)

	deleter := &stubDeleter{}
	c := NewController(cache, &stubBookmarks{}, deleter, openPolicy(), tally.NoopScope)

	c.Run("account-a", nil, now)
	c.Run("account-b", nil, now)

	assert.Equal(t, []primitive.ObjectID{expired.ID}, deleter.requests,
		"each expired post should trigger exactly one deletion request")
	_, ok := cache.Get(expired.ID)
	assert.False(t, ok, "the expired post should leave the cache")
}

func TestControllerDeletionGuardSurvivesEnqueueError(t *testing.T) {
	now := time.Now().UTC()
	cache := NewCache()
	expired := notePost(mapCenter, now.Add(-48*time.Hour), now.Add(-time.Hour))
	cache.Upsert(expired)

	deleter := &stubDeleter{err: fmt.Errorf("broker down")}
	c := NewController(cache, &stubBookmarks{}, deleter, openPolicy(), tally.NoopScope)

	c.Run("account-a", nil, now)
	c.Run("account-a", nil, now)

	assert.Len(t, deleter.requests, 1, "a failed enqueue is not retried by the pipeline")
}

func TestControllerPostLifecycle(t *testing.T) {
	// A one-day post is visible right away, drops out once its lifetime
	// passes, and produces a single deletion request.
	created := time.Now().UTC()
	cache := NewCache()
	post := notePost(mapCenter, created, created.Add(24*time.Hour))
	cache.Upsert(post)

	deleter := &stubDeleter{}
	c := NewController(cache, &stubBookmarks{}, deleter, openPolicy(), tally.NoopScope)

	visible := c.Run("account-a", nil, created.Add(time.Minute))
	assert.Len(t, visible, 1, "a fresh post should be visible immediately")
	assert.Empty(t, deleter.requests)

	later := created.Add(25 * time.Hour)
	visible = c.Run("account-a", nil, later)
	assert.Empty(t, visible)
	assert.Equal(t, []primitive.ObjectID{post.ID}, deleter.requests)

	c.Run("account-a", nil, later)
	assert.Len(t, deleter.requests, 1)
}

func TestControllerBookmarkLoadFailureDegrades(t *testing.T) {
	now := time.Now().UTC()
	cache := NewCache()
	fresh := notePost(mapCenter, now.Add(-time.Hour), now.Add(time.Hour))
	cache.Upsert(fresh)

	c := NewController(cache, &stubBookmarks{err: fmt.Errorf("corrupted profile")},
		&stubDeleter{}, openPolicy(), tally.NoopScope)

	visible := c.Run("account-a", nil, now)

	assert.Len(t, visible, 1, "a failing bookmark load should not hide live posts")
	assert.False(t, visible[0].Bookmarked)
}

func TestControllerAnonymousPassSkipsBookmarks(t *testing.T) {
	now := time.Now().UTC()
	cache := NewCache()
	fresh := notePost(mapCenter, now.Add(-time.Hour), now.Add(time.Hour))
	cache.Upsert(fresh)

	bookmarks := &stubBookmarks{bookmarks: []schema.Bookmark{schema.SnapshotOf(fresh, now)}}
	c := NewController(cache, bookmarks, &stubDeleter{}, openPolicy(), tally.NoopScope)

	visible := c.Run("", nil, now)

	assert.Len(t, visible, 1)
	assert.False(t, visible[0].Bookmarked, "an anonymous pass never loads bookmarks")
}
