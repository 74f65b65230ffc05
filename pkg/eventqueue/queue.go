package eventqueue

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

// Listener reacts to a single event. Listeners run synchronously inside
// DispatchEvents.
type Listener[E any] func(event E)

// ListenerHandle identifies one registration within one Queue.
type ListenerHandle uint64

// InvalidHandle is never issued by RegisterListener. Unregistering it is a no-op.
const InvalidHandle ListenerHandle = 0

type entry[E any] struct {
	handle   ListenerHandle
	listener Listener[E]
	removed  bool
}

// Queue buffers events of type E until DispatchEvents delivers them to every
// registered listener. Producers and consumers only share the queue, never
// each other.
//
// A Queue is not safe for concurrent use.
type Queue[E any] struct {
	listeners   []*entry[E]
	pending     []E
	spare       []E
	lastHandle  ListenerHandle
	dispatching bool
	compact     bool
	eventType   string
	logger      *slog.Logger
}

// NewQueue creates an empty queue for events of type E.
func NewQueue[E any](opts ...Option) *Queue[E] {
	cfg := newConfig(opts...)
	eventType := typeName[E]()
	return &Queue[E]{
		pending:   make([]E, 0, cfg.capacity),
		spare:     make([]E, 0, cfg.capacity),
		eventType: eventType,
		logger: cfg.logger.With(
			logger.Component("eventqueue"),
			logger.EventType(eventType),
		),
	}
}

// RegisterListener appends listener to the queue and returns its handle.
// Handles are unique for the lifetime of the queue. A nil listener is not
// registered and yields InvalidHandle.
func (q *Queue[E]) RegisterListener(listener Listener[E]) ListenerHandle {
	if listener == nil {
		return InvalidHandle
	}
	q.lastHandle++
	q.listeners = append(q.listeners, &entry[E]{handle: q.lastHandle, listener: listener})
	q.logger.Debug("listener registered", logger.ListenerHandle(uint64(q.lastHandle)))
	return q.lastHandle
}

// UnregisterListener removes the registration identified by handle.
// Unknown, already removed and invalid handles are ignored.
func (q *Queue[E]) UnregisterListener(handle ListenerHandle) {
	if handle == InvalidHandle {
		return
	}
	i := slices.IndexFunc(q.listeners, func(e *entry[E]) bool {
		return e.handle == handle && !e.removed
	})
	if i < 0 {
		return
	}

	// Removing in place would shift the listeners the running dispatch has
	// yet to visit; mark it and compact once the dispatch is over.
	if q.dispatching {
		q.listeners[i].removed = true
		q.compact = true
	} else {
		q.listeners = slices.Delete(q.listeners, i, i+1)
	}
	q.logger.Debug("listener unregistered", logger.ListenerHandle(uint64(handle)))
}

// QueueEvent appends event to the pending buffer. Nothing is delivered until
// the next DispatchEvents call.
func (q *Queue[E]) QueueEvent(event E) {
	q.pending = append(q.pending, event)
}

// DispatchEvents delivers every pending event to every listener: listeners in
// registration order, and for each listener all events in arrival order. The
// pending buffer is empty afterwards; listeners stay registered. It returns
// the number of listener invocations.
//
// Mutating the queue from a listener is tolerated: events queued during the
// dispatch are kept for the next one, listeners registered during the
// dispatch first run on the next one, and listeners unregistered during the
// dispatch are not called again.
func (q *Queue[E]) DispatchEvents() int {
	if len(q.pending) == 0 || q.dispatching {
		return 0
	}

	events := q.pending
	q.pending = q.spare[:0]
	listeners := q.listeners[:len(q.listeners):len(q.listeners)]

	q.dispatching = true
	calls := 0
	for _, e := range listeners {
		for _, event := range events {
			if e.removed {
				break
			}
			e.listener(event)
			calls++
		}
	}
	q.dispatching = false

	clear(events)
	q.spare = events[:0]

	if q.compact {
		q.listeners = slices.DeleteFunc(q.listeners, func(e *entry[E]) bool { return e.removed })
		q.compact = false
	}

	if q.logger.Enabled(context.Background(), slog.LevelDebug) {
		q.logger.Debug("events dispatched",
			slog.Int("events", len(events)),
			slog.Int("listeners", len(listeners)),
			logger.Count(calls),
		)
	}
	return calls
}

// Pending returns the number of events waiting for the next dispatch.
func (q *Queue[E]) Pending() int {
	return len(q.pending)
}

// Listeners returns the number of registered listeners.
func (q *Queue[E]) Listeners() int {
	n := 0
	for _, e := range q.listeners {
		if !e.removed {
			n++
		}
	}
	return n
}

// EventType returns the name of the event type carried by the queue.
func (q *Queue[E]) EventType() string {
	return q.eventType
}

// Reset drops all listeners and pending events. Handle numbering continues
// so stale handles never match new registrations.
func (q *Queue[E]) Reset() {
	for _, e := range q.listeners {
		e.removed = true
	}
	clear(q.pending)
	q.pending = q.pending[:0]
	q.listeners = nil
	q.compact = false
}
