package eventqueue

import (
	"reflect"
)

// Bus owns one Queue per event type. It replaces a process-wide queue per
// type with a value the integrator creates once and hands to every producer
// and consumer, so independent buses never see each other's events.
//
// A Bus is not safe for concurrent use.
type Bus struct {
	queues map[reflect.Type]queue
	order  []queue
	opts   []Option
}

type queue interface {
	DispatchEvents() int
	Pending() int
	Reset()
}

// NewBus creates an empty bus. The options are applied to every queue the
// bus creates.
func NewBus(opts ...Option) *Bus {
	return &Bus{
		queues: make(map[reflect.Type]queue),
		opts:   opts,
	}
}

// For returns the bus queue for event type E, creating it on first access.
func For[E any](b *Bus) *Queue[E] {
	key := reflect.TypeFor[E]()
	if q, ok := b.queues[key]; ok {
		return q.(*Queue[E])
	}
	q := NewQueue[E](b.opts...)
	b.queues[key] = q
	b.order = append(b.order, q)
	return q
}

// Subscribe registers listener on the queue for E.
func Subscribe[E any](b *Bus, listener func(event E)) ListenerHandle {
	return For[E](b).RegisterListener(listener)
}

// Unsubscribe removes a registration from the queue for E.
func Unsubscribe[E any](b *Bus, handle ListenerHandle) {
	For[E](b).UnregisterListener(handle)
}

// Publish queues event on the queue for E.
func Publish[E any](b *Bus, event E) {
	For[E](b).QueueEvent(event)
}

// Dispatch delivers the pending events of type E.
func Dispatch[E any](b *Bus) int {
	return For[E](b).DispatchEvents()
}

// DispatchAll dispatches every queue in the order the queues were created and
// returns the total number of listener invocations.
func (b *Bus) DispatchAll() int {
	calls := 0
	for _, q := range b.order {
		calls += q.DispatchEvents()
	}
	return calls
}

// Pending returns the number of undelivered events across all queues.
func (b *Bus) Pending() int {
	n := 0
	for _, q := range b.order {
		n += q.Pending()
	}
	return n
}

// Len returns the number of queues created so far.
func (b *Bus) Len() int {
	return len(b.order)
}

// Reset drops the listeners and pending events of every queue. The queues
// themselves stay in place.
func (b *Bus) Reset() {
	for _, q := range b.order {
		q.Reset()
	}
}
