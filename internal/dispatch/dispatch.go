package dispatch

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Event is a decoded window-manager notification delivered to subscribers.
// Timestamp is the capture time on this side of the connection, not the
// server's time.
type Event struct {
	// Kind is the event-kind tag from the wire, e.g. "focus_changed".
	Kind string

	// Timestamp records when the notification was dispatched.
	Timestamp time.Time

	// Data is the kind-specific payload, undecoded.
	Data json.RawMessage
}

// DecodeData unmarshals the event payload into v.
func (e Event) DecodeData(v any) error {
	return json.Unmarshal(e.Data, v)
}

// Handler receives dispatched events.
type Handler func(Event)

// Subscription is a handle for one (kind, handler) registration. Go
// functions are not comparable, so unsubscription works through the
// handle rather than by handler identity.
type Subscription struct {
	// ID uniquely identifies this registration.
	ID string

	// Kind is the event kind the handler was registered under.
	Kind string

	handler Handler
}

// Registry maintains subscriber lists keyed by event kind and fans out
// events to them. All methods are safe for concurrent use.
type Registry struct {
	log *slog.Logger

	mu   sync.Mutex
	subs map[string][]*Subscription
}

// NewRegistry creates an empty dispatch registry.
func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:  log.With("component", "dispatch"),
		subs: make(map[string][]*Subscription, 8),
	}
}

// Subscribe appends handler to the ordered list for kind and returns the
// subscription handle. Registration order is preserved for delivery order.
func (r *Registry) Subscribe(kind string, handler Handler) *Subscription {
	sub := &Subscription{
		ID:      ulid.Make().String(),
		Kind:    kind,
		handler: handler,
	}

	r.mu.Lock()
	r.subs[kind] = append(r.subs[kind], sub)
	r.mu.Unlock()

	r.log.Debug("Subscribed", "kind", kind, "subscription_id", sub.ID)

	return sub
}

// SubscribeMany registers the same handler under each kind in order.
// Equivalent to repeated Subscribe calls.
func (r *Registry) SubscribeMany(kinds []string, handler Handler) []*Subscription {
	subs := make([]*Subscription, 0, len(kinds))
	for _, kind := range kinds {
		subs = append(subs, r.Subscribe(kind, handler))
	}

	return subs
}

// Unsubscribe removes the given registration. No-op if the subscription
// is nil or was already removed.
func (r *Registry) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.subs[sub.Kind]
	for i, s := range list {
		if s.ID == sub.ID {
			r.subs[sub.Kind] = append(list[:i:i], list[i+1:]...)

			r.log.Debug("Unsubscribed", "kind", sub.Kind, "subscription_id", sub.ID)

			return
		}
	}
}

// UnsubscribeAll clears every kind's subscriber list.
func (r *Registry) UnsubscribeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = make(map[string][]*Subscription, 8)

	r.log.Debug("Cleared all subscriptions")
}

// SubscriberCount returns the number of registrations for kind.
func (r *Registry) SubscriberCount(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.subs[kind])
}

// Dispatch tags data with kind and the current timestamp, then invokes
// every subscriber for kind in registration order. A panic in one
// subscriber is recovered and logged and does not prevent the remaining
// subscribers from running.
func (r *Registry) Dispatch(kind string, data json.RawMessage) {
	r.mu.Lock()
	list := make([]*Subscription, len(r.subs[kind]))
	copy(list, r.subs[kind])
	r.mu.Unlock()

	if len(list) == 0 {
		return
	}

	ev := Event{
		Kind:      kind,
		Timestamp: time.Now(),
		Data:      data,
	}

	for _, sub := range list {
		r.invoke(sub, ev)
	}
}

// invoke runs a single handler with panic isolation.
func (r *Registry) invoke(sub *Subscription, ev Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Warn("Event handler panicked",
				"kind", ev.Kind,
				"subscription_id", sub.ID,
				"panic", rec,
			)
		}
	}()

	sub.handler(ev)
}
