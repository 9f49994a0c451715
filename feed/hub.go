package feed

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/uber-go/tally"

	"github.com/kindmap/kindmap-api/schema"
)

const sendBuffer = 64

// Event is one message on the live feed. Every saved or updated post is
// fanned out to all listeners; a listener also receives the full cached set
// once on connect, so late subscribers see every live post exactly as the
// subscription contract promises.
type Event struct {
	Kind   string             `json:"kind"` // "post" or "delete"
	Post   *schema.PostDetail `json:"post,omitempty"`
	PostID string             `json:"post_id,omitempty"`
}

type subscriber struct {
	events chan Event
}

// Hub fans post events out to connected websocket clients.
type Hub struct {
	cache      *Cache
	broadcasts tally.Counter
	dropped    tally.Counter

	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
}

func NewHub(cache *Cache, scope tally.Scope) *Hub {
	return &Hub{
		cache:       cache,
		broadcasts:  scope.Counter("feed_broadcasts"),
		dropped:     scope.Counter("feed_dropped_clients"),
		subscribers: map[*subscriber]struct{}{},
	}
}

// BroadcastPost publishes a saved or updated post to every listener and
// refreshes the cache.
func (h *Hub) BroadcastPost(p schema.Post) {
	h.cache.Upsert(p)
	detail := p.Detail()
	h.broadcast(Event{Kind: "post", Post: &detail})
}

// BroadcastDelete publishes a post removal to every listener.
func (h *Hub) BroadcastDelete(id string) {
	h.broadcast(Event{Kind: "delete", PostID: id})
}

func (h *Hub) broadcast(e Event) {
	h.broadcasts.Inc(1)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subscribers {
		select {
		case s.events <- e:
		default:
			// A listener that cannot keep up is dropped rather than
			// blocking the fan-out; closing its channel ends the pump.
			// Removal happens outside the read lock.
			h.dropped.Inc(1)
			go h.unsubscribe(s)
		}
	}
}

func (h *Hub) subscribe() *subscriber {
	s := &subscriber{events: make(chan Event, sendBuffer)}

	h.mu.Lock()
	h.subscribers[s] = struct{}{}
	h.mu.Unlock()

	return s
}

func (h *Hub) unsubscribe(s *subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[s]; ok {
		delete(h.subscribers, s)
		close(s.events)
	}
	h.mu.Unlock()
}

// Listeners returns the number of connected feed clients.
func (h *Hub) Listeners() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Serve replays the current cache to the connection and then streams events
// until the client goes away or falls behind.
func (h *Hub) Serve(conn *websocket.Conn) {
	s := h.subscribe()
	defer h.unsubscribe(s)
	defer conn.Close()

	// The subscription fires once per existing post before any updates.
	for _, p := range h.cache.Snapshot() {
		detail := p.Detail()
		if err := conn.WriteJSON(Event{Kind: "post", Post: &detail}); err != nil {
			return
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Discard inbound frames; the read loop only detects disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case e, ok := <-s.events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				return
			}
		}
	}
}
