package statemachine

import (
	"log/slog"
)

// Option configures a Machine during construction.
type Option[O any] func(*Machine[O])

// TransitionHook observes a completed transition. It runs after the incoming
// state's OnEnter.
type TransitionHook[O any] func(from, to State[O])

// WithLogger sets the logger used for transition diagnostics.
// Nil loggers are ignored.
func WithLogger[O any](l *slog.Logger) Option[O] {
	return func(m *Machine[O]) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithName sets the machine name reported in logs and traces.
func WithName[O any](name string) Option[O] {
	return func(m *Machine[O]) {
		if name != "" {
			m.name = name
		}
	}
}

// WithTransitionHook registers a hook invoked after every transition.
// Hooks run in the order they were added.
func WithTransitionHook[O any](hook func(from, to State[O])) Option[O] {
	return func(m *Machine[O]) {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
	}
}
