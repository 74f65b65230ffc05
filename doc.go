// Package fsmkit is a small toolkit for driving single-threaded finite state
// machines from an integrator-owned loop.
//
// The module is split into focused packages:
//
//   - pkg/statemachine: State interface, transition guard Registry and the
//     Machine driver (enter, update, guard check, exit, replace, enter)
//   - pkg/eventqueue: per-type event queues and the Bus that owns them, used
//     to deliver external events to whichever states are listening
//   - pkg/trace: YAML recording of transitions
//   - pkg/logger, pkg/config: structured logging and environment config
//
// A typical loop publishes events, dispatches them, then steps each machine:
//
//	lightswitch.SwitchOn(bus, light)
//	bus.DispatchAll()
//	machine.Update()
//
// Nothing here starts goroutines or takes locks; every call runs to
// completion on the caller's goroutine.
package fsmkit
