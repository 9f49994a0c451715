package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/schema"
)

func TestCacheUpsertReplaces(t *testing.T) {
	cache := NewCache()
	id := primitive.NewObjectID()

	cache.Upsert(schema.Post{ID: id, Message: "first"})
	cache.Upsert(schema.Post{ID: id, Message: "second"})

	assert.Equal(t, 1, cache.Len(), "repeat delivery of the same id should overwrite")

	p, ok := cache.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "second", p.Message)
}

func TestCacheRemove(t *testing.T) {
	cache := NewCache()
	id := primitive.NewObjectID()
	cache.Upsert(schema.Post{ID: id})

	cache.Remove(id)
	_, ok := cache.Get(id)
	assert.False(t, ok)

	// Removing again is a no-op.
	cache.Remove(id)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheSnapshotIsolated(t *testing.T) {
	cache := NewCache()
	cache.Upsert(schema.Post{ID: primitive.NewObjectID()})

	snapshot := cache.Snapshot()
	cache.Upsert(schema.Post{ID: primitive.NewObjectID()})

	assert.Len(t, snapshot, 1, "snapshot should not see later writes")
	assert.Equal(t, 2, cache.Len())
}
