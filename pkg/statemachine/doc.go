// Package statemachine provides a generic, single-threaded finite-state-machine
// driver built around polymorphic state objects and a declarative registry of
// transition guards.
//
// A state is any type implementing State[O], where O is the owner: the context
// object the states observe and mutate. The owner is usually a pointer so the
// machine, its states and any event listeners they register all share it.
//
// # Architecture
//
// Transition rules live in a Registry rather than in the states themselves.
// Guards are keyed by the concrete state type and evaluated in the order they
// were added; the first guard that passes builds the next state through its
// factory. The registry is an ordinary value owned by the integrator, so two
// machines only share rules when they are given the same registry.
//
// Machine.Update performs one step:
//  1. Update on the current state
//  2. guard evaluation against the owner
//  3. on a match: OnExit on the current state, replace, OnEnter on the new one
//
// There is never a moment where two states are entered at once.
//
// # Usage
//
//	reg := statemachine.NewRegistry[*Light]()
//
//	statemachine.MustAddTransitionGuard(reg,
//	    func(_ *OffState, l *Light) bool { return l.IsOn() },
//	    func() statemachine.State[*Light] { return &OnState{} },
//	)
//	statemachine.MustAddTransitionGuard(reg,
//	    func(_ *OnState, l *Light) bool { return l.IsOff() },
//	    func() statemachine.State[*Light] { return &OffState{} },
//	)
//
//	light := &Light{}
//	m := statemachine.MustNew[*Light](reg, &OffState{}, light)
//	light.TurnOn()
//	m.Update() // OffState -> OnState
//
// # Guard Accumulation
//
// Guards stay registered until ClearStateTransitions (one type) or
// Registry.Reset (all types) is called. Reusing one registry for unrelated
// runs without clearing it adds the same guards again; the earlier copies
// still win because they were registered first.
//
// # Concurrency
//
// Neither Machine nor Registry use locks. Drive them from one goroutine or
// synchronise access externally.
package statemachine
