// Package track fans measured object positions out to attached
// subscribers and records the trajectory they form across a run.
package track

import (
	"fmt"
	"sync"

	"github.com/banshee-data/motion.report/internal/geom"
)

// Subscriber receives every position published to a Registry.
type Subscriber interface {
	// Update is invoked synchronously with each new position.
	Update(p geom.Point)
}

// Registry is a named set of subscribers notified in attachment order.
// A registry with no subscribers is valid; Publish then does nothing.
type Registry struct {
	mu    sync.Mutex
	order []string
	subs  map[string]Subscriber
}

// NewRegistry returns an empty subscriber registry.
func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[string]Subscriber),
	}
}

// Attach registers sub under id. Each id may be attached once; a second
// Attach with the same id is rejected so callers cannot silently replace
// a live subscriber.
func (r *Registry) Attach(id string, sub Subscriber) error {
	if sub == nil {
		return fmt.Errorf("attach %q: nil subscriber", id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[id]; ok {
		return fmt.Errorf("attach %q: already attached", id)
	}
	r.subs[id] = sub
	r.order = append(r.order, id)
	return nil
}

// Detach removes the subscriber registered under id. Detaching an
// unknown id is a no-op.
func (r *Registry) Detach(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[id]; !ok {
		return
	}
	delete(r.subs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Publish delivers p to every subscriber in attachment order.
func (r *Registry) Publish(p geom.Point) {
	r.mu.Lock()
	notify := make([]Subscriber, 0, len(r.order))
	for _, id := range r.order {
		notify = append(notify, r.subs[id])
	}
	r.mu.Unlock()

	for _, sub := range notify {
		sub.Update(p)
	}
}

// Len reports the number of attached subscribers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
