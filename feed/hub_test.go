package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/schema"
)

func TestHubBroadcastPost(t *testing.T) {
	cache := NewCache()
	hub := NewHub(cache, tally.NoopScope)

	s := hub.subscribe()
	defer hub.unsubscribe(s)

	post := schema.Post{ID: primitive.NewObjectID(), Type: schema.PostTypeNote, Message: "hello"}
	hub.BroadcastPost(post)

	_, ok := cache.Get(post.ID)
	assert.True(t, ok, "broadcast should refresh the cache")

	select {
	case e := <-s.events:
		assert.Equal(t, "post", e.Kind)
		assert.Equal(t, "hello", e.Post.Message)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHubBroadcastDelete(t *testing.T) {
	hub := NewHub(NewCache(), tally.NoopScope)

	s := hub.subscribe()
	defer hub.unsubscribe(s)

	id := primitive.NewObjectID()
	hub.BroadcastDelete(id.Hex())

	select {
	case e := <-s.events:
		assert.Equal(t, "delete", e.Kind)
		assert.Equal(t, id.Hex(), e.PostID)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	hub := NewHub(NewCache(), tally.NoopScope)

	hub.subscribe()
	assert.Equal(t, 1, hub.Listeners())

	// Never drain; overflowing the send buffer drops the listener.
	post := schema.Post{ID: primitive.NewObjectID(), Type: schema.PostTypeNote}
	for i := 0; i < sendBuffer+1; i++ {
		hub.BroadcastPost(post)
	}

	assert.Eventually(t, func() bool {
		return hub.Listeners() == 0
	}, time.Second, 10*time.Millisecond, "a listener that cannot keep up should be dropped")
}

func TestHubUnsubscribeIdempotent(t *testing.T) {
	hub := NewHub(NewCache(), tally.NoopScope)

	s := hub.subscribe()
	hub.unsubscribe(s)
	hub.unsubscribe(s)

	assert.Equal(t, 0, hub.Listeners())
}
