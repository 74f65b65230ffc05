package statemachine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

// Machine drives exactly one active state on behalf of an owner.
// The owner is shared: states and any event listeners they register may
// hold on to it beyond a single Update call.
//
// A Machine is not safe for concurrent use.
type Machine[O any] struct {
	registry    *Registry[O]
	state       State[O]
	owner       O
	name        string
	logger      *slog.Logger
	hooks       []TransitionHook[O]
	steps       uint64
	transitions uint64
}

// New creates a machine in the initial state and immediately calls the
// state's OnEnter with owner.
func New[O any](registry *Registry[O], initial State[O], owner O, opts ...Option[O]) (*Machine[O], error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if initial == nil {
		return nil, ErrNilState
	}

	m := &Machine[O]{
		registry: registry,
		state:    initial,
		owner:    owner,
		name:     "machine",
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("statemachine"), logger.Machine(m.name))

	m.state.OnEnter(m.owner)
	m.logger.Debug("machine started", logger.State(StateName(m.state)))

	return m, nil
}

// MustNew works like New but panics if the machine cannot be created.
func MustNew[O any](registry *Registry[O], initial State[O], owner O, opts ...Option[O]) *Machine[O] {
	m, err := New(registry, initial, owner, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// Update runs the current state's Update and then checks its transition
// guards. When a guard passes, the current state's OnExit runs, the machine
// switches to the next state and calls its OnEnter, in that order.
// Update reports whether a transition happened.
func (m *Machine[O]) Update() bool {
	m.steps++
	m.state.Update(m.owner)

	next, ok := m.registry.CheckTransitionGuards(m.state, m.owner)
	if !ok {
		return false
	}

	prev := m.state
	prev.OnExit(m.owner)
	m.state = next
	m.state.OnEnter(m.owner)
	m.transitions++

	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("state transition",
			logger.FromState(StateName(prev)),
			logger.ToState(StateName(next)),
		)
	}

	for _, hook := range m.hooks {
		hook(prev, next)
	}
	return true
}

// Current returns the active state.
func (m *Machine[O]) Current() State[O] {
	return m.state
}

// Owner returns the owner shared with the states.
func (m *Machine[O]) Owner() O {
	return m.owner
}

// Name returns the machine name.
func (m *Machine[O]) Name() string {
	return m.name
}

// Steps returns how many times Update has been called.
func (m *Machine[O]) Steps() uint64 {
	return m.steps
}

// Transitions returns how many transitions the machine has taken.
func (m *Machine[O]) Transitions() uint64 {
	return m.transitions
}

// Is reports whether the machine's current state has concrete type S.
func Is[S State[O], O any](m *Machine[O]) bool {
	_, ok := m.state.(S)
	return ok
}
