// Package notify implements the in-process broadcast hub used to push order
// lifecycle events to connected office dashboards. Delivery is fire and
// forget: a slow or disconnected subscriber never blocks or fails the
// operation that triggered the event.
package notify

import "sync"

// DashboardGroup is the broadcast group office dashboards join.
const DashboardGroup = "office-dashboard"

// Event kinds published to the dashboard group.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
	EventStats   = "stats"
)

// subscriberBuffer is how many undelivered events a subscriber may lag
// behind before further events to it are dropped.
const subscriberBuffer = 16

// Event is one broadcast frame.
type Event struct {
	Kind string `json:"event"`
	Data any    `json:"data"`
}

// Subscriber receives events published to the group it joined. Events
// arrive on C in publication order.
type Subscriber struct {
	group string
	ch    chan Event
}

// C returns the subscriber's event channel. The channel is closed when the
// subscriber leaves the hub.
func (s *Subscriber) C() <-chan Event {
	return s.ch
}

// Hub fans events out to named groups of subscribers.
type Hub struct {
	mu     sync.Mutex
	groups map[string]map[*Subscriber]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{groups: make(map[string]map[*Subscriber]struct{})}
}

// Join registers a new subscriber in the named group.
func (h *Hub) Join(group string) *Subscriber {
	sub := &Subscriber{
		group: group,
		ch:    make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[group]
	if !ok {
		members = make(map[*Subscriber]struct{})
		h.groups[group] = members
	}
	members[sub] = struct{}{}

	return sub
}

// Leave removes the subscriber from its group and closes its channel.
// Leaving twice is safe.
func (h *Hub) Leave(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[sub.group]
	if !ok {
		return
	}
	if _, member := members[sub]; !member {
		return
	}

	delete(members, sub)
	if len(members) == 0 {
		delete(h.groups, sub.group)
	}
	close(sub.ch)
}

// Publish delivers the event to every current subscriber of the group.
// Subscribers whose buffers are full miss the event rather than block the
// publisher.
func (h *Hub) Publish(group string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.groups[group] {
		select {
		case sub.ch <- event:
		default:
		}
	}
}
