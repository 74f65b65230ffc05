// Package eventqueue decouples event producers from the states that react to
// them.
//
// A Queue[E] holds listeners for one event type and a buffer of events that
// have been queued but not yet delivered. Producers call QueueEvent, the
// integrator's loop calls DispatchEvents, and every listener sees every event
// queued since the previous dispatch:
//
//	for each listener (registration order)
//	    for each event (arrival order)
//	        listener(event)
//
// Listeners receive all events of their type; filtering by payload, such as
// reacting only to events that reference a particular owner, is up to the
// listener.
//
// A Bus keeps one lazily created queue per event type:
//
//	bus := eventqueue.NewBus()
//	h := eventqueue.Subscribe(bus, func(e SwitchOn) { e.Light.TurnOn() })
//	defer eventqueue.Unsubscribe[SwitchOn](bus, h)
//
//	eventqueue.Publish(bus, SwitchOn{Light: light})
//	bus.DispatchAll()
//
// Handles are unique for the lifetime of a queue and never reused, so a stale
// handle cannot remove a newer registration. Unregistering an unknown handle
// does nothing.
//
// Everything runs synchronously on the caller's goroutine; nothing in this
// package is safe for concurrent use.
package eventqueue
