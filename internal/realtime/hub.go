package realtime

import (
	"log/slog"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// Metrics receives hub and notifier counters.
type Metrics interface {
	SubscriberAdded()
	SubscriberRemoved()
	Published(eventType string)
	PublishFailed()
	Delivered(n int)
	Dropped(n int)
}

// NopMetrics discards all counters.
type NopMetrics struct{}

func (NopMetrics) SubscriberAdded()   {}
func (NopMetrics) SubscriberRemoved() {}
func (NopMetrics) Published(string)   {}
func (NopMetrics) PublishFailed()     {}
func (NopMetrics) Delivered(int)      {}
func (NopMetrics) Dropped(int)        {}

// Hub holds in-process rooms. A Subscriber may be in any number of rooms
// and receives only events broadcast while it is a member.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Subscriber]struct{}
	subs    map[*Subscriber]struct{}
	buffer  int
	metrics Metrics
	log     *slog.Logger
}

// NewHub creates a hub whose subscribers buffer up to buffer messages.
func NewHub(log *slog.Logger, buffer int, metrics Metrics) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Hub{
		rooms:   make(map[string]map[*Subscriber]struct{}),
		subs:    make(map[*Subscriber]struct{}),
		buffer:  buffer,
		metrics: metrics,
		log:     log.With("component", "hub"),
	}
}

// Subscriber is one receiving connection.
type Subscriber struct {
	id     string
	hub    *Hub
	send   chan Envelope
	rooms  map[string]struct{} // guarded by hub.mu
	closed bool                // guarded by hub.mu
}

// NewSubscriber registers a subscriber that is in no room yet.
func (h *Hub) NewSubscriber() *Subscriber {
	s := &Subscriber{
		id:    domain.NewID(),
		hub:   h,
		send:  make(chan Envelope, h.buffer),
		rooms: make(map[string]struct{}),
	}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	h.metrics.SubscriberAdded()
	return s
}

// Subscribe registers a subscriber already joined to room.
func (h *Hub) Subscribe(room string) *Subscriber {
	s := h.NewSubscriber()
	s.Join(room)
	return s
}

// Broadcast delivers env to every member of its room without blocking. A
// member whose buffer is full misses this event.
func (h *Hub) Broadcast(env Envelope) (delivered, dropped int) {
	h.mu.RLock()
	for s := range h.rooms[env.Room] {
		select {
		case s.send <- env:
			delivered++
		default:
			dropped++
		}
	}
	h.mu.RUnlock()

	h.metrics.Delivered(delivered)
	h.metrics.Dropped(dropped)
	if dropped > 0 {
		h.log.Warn("subscriber buffer full, event dropped",
			slog.String("room", env.Room),
			slog.String("type", env.Type),
			slog.Int("dropped", dropped),
		)
	}
	return delivered, dropped
}

// RoomSize returns the number of members in room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Subscribers returns the number of open subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// CloseAll closes every open subscriber. Transports see their channel
// closed and end the connection.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	open := make([]*Subscriber, 0, len(h.subs))
	for s := range h.subs {
		open = append(open, s)
	}
	h.mu.RUnlock()

	for _, s := range open {
		s.Close()
	}
}

// ID identifies the subscriber in logs.
func (s *Subscriber) ID() string { return s.id }

// C returns the delivery channel. It is closed by Close.
func (s *Subscriber) C() <-chan Envelope { return s.send }

// Join adds the subscriber to room. Joining twice is a no-op.
func (s *Subscriber) Join(room string) {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Subscriber]struct{})
		h.rooms[room] = members
	}
	members[s] = struct{}{}
	s.rooms[room] = struct{}{}
}

// Leave removes the subscriber from room.
func (s *Subscriber) Leave(room string) {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(s, room)
}

// Rooms returns the rooms the subscriber is in.
func (s *Subscriber) Rooms() []string {
	h := s.hub
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(s.rooms))
	for r := range s.rooms {
		out = append(out, r)
	}
	return out
}

// Offer queues a message for this subscriber only, without blocking.
// It reports false when the buffer is full or the subscriber is closed.
func (s *Subscriber) Offer(env Envelope) bool {
	h := s.hub
	h.mu.RLock()
	defer h.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.send <- env:
		return true
	default:
		return false
	}
}

// Close leaves every room and closes the delivery channel. Safe to call
// more than once.
func (s *Subscriber) Close() {
	h := s.hub
	h.mu.Lock()
	if s.closed {
		h.mu.Unlock()
		return
	}
	for room := range s.rooms {
		h.removeLocked(s, room)
	}
	s.closed = true
	delete(h.subs, s)
	close(s.send)
	h.mu.Unlock()

	h.metrics.SubscriberRemoved()
}

func (h *Hub) removeLocked(s *Subscriber, room string) {
	delete(s.rooms, room)
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, s)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}
