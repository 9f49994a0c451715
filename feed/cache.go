// Package feed owns the live post set: the in-memory cache fed by saves,
// the visibility/heat pipeline deciding what clients should draw, and the
// websocket hub fanning post updates out to listeners.
package feed

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/schema"
)

// Cache maps post id to the latest known post record. Repeat deliveries of
// the same id overwrite, so the cache holds at most one record per post.
type Cache struct {
	mu    sync.RWMutex
	posts map[primitive.ObjectID]schema.Post
}

func NewCache() *Cache {
	return &Cache{
		posts: map[primitive.ObjectID]schema.Post{},
	}
}

// Upsert stores or replaces the record for the post's id.
func (c *Cache) Upsert(p schema.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts[p.ID] = p
}

// Remove drops the record for the given id. No-op when absent.
func (c *Cache) Remove(id primitive.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.posts, id)
}

// Get returns the cached record for id.
func (c *Cache) Get(id primitive.ObjectID) (schema.Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.posts[id]
	return p, ok
}

// Snapshot returns a copy of all cached posts. Each pipeline pass works on
// its own snapshot, so a pass is never affected by concurrent updates.
func (c *Cache) Snapshot() []schema.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()

	posts := make([]schema.Post, 0, len(c.posts))
	for _, p := range c.posts {
		posts = append(posts, p)
	}
	return posts
}

// Len returns the number of cached posts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.posts)
}
