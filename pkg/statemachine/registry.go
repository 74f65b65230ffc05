package statemachine

import (
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

// Registry holds the ordered transition guards of every concrete state type
// used with an owner type O. It is owned by the integrator and handed to each
// Machine; machines that share a registry share its rules.
//
// A Registry is not safe for concurrent use.
type Registry[O any] struct {
	guards map[reflect.Type][]transitionGuard[O]
	logger *slog.Logger
}

type transitionGuard[O any] struct {
	check func(state State[O], owner O) bool
	next  Factory[O]
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	logger *slog.Logger
}

// WithRegistryLogger sets the logger used to report guard registration.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(c *registryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewRegistry creates an empty guard registry.
func NewRegistry[O any](opts ...RegistryOption) *Registry[O] {
	cfg := &registryConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Registry[O]{
		guards: make(map[reflect.Type][]transitionGuard[O]),
		logger: cfg.logger.With(logger.Component("statemachine.registry")),
	}
}

// AddTransitionGuard appends a guard to the list of state type S. When guard
// returns true for the current S instance, the machine moves to the state
// produced by next. Guards of one type are evaluated in the order they were
// added.
//
// Guards persist until ClearStateTransitions is called for S, so reusing a
// registry across independent runs without clearing it accumulates guards.
func AddTransitionGuard[S State[O], O any](r *Registry[O], guard func(state S, owner O) bool, next func() State[O]) error {
	if r == nil {
		return ErrNilRegistry
	}
	if guard == nil {
		return ErrNilGuard
	}
	if next == nil {
		return ErrNilFactory
	}

	key := reflect.TypeFor[S]()
	if key.Kind() == reflect.Interface {
		return ErrAbstractState
	}

	r.guards[key] = append(r.guards[key], transitionGuard[O]{
		check: func(state State[O], owner O) bool {
			return guard(state.(S), owner)
		},
		next: next,
	})

	r.logger.Debug("transition guard added",
		logger.State(typeName(key)),
		logger.Count(len(r.guards[key])),
	)
	return nil
}

// MustAddTransitionGuard works like AddTransitionGuard but panics on error.
func MustAddTransitionGuard[S State[O], O any](r *Registry[O], guard func(state S, owner O) bool, next func() State[O]) {
	if err := AddTransitionGuard(r, guard, next); err != nil {
		panic(err)
	}
}

// ClearStateTransitions removes every guard registered for state type S.
func ClearStateTransitions[S State[O], O any](r *Registry[O]) {
	if r == nil {
		return
	}
	delete(r.guards, reflect.TypeFor[S]())
}

// GuardCount reports how many guards are registered for state type S.
func GuardCount[S State[O], O any](r *Registry[O]) int {
	if r == nil {
		return 0
	}
	return len(r.guards[reflect.TypeFor[S]()])
}

// Reset removes the guards of every state type.
func (r *Registry[O]) Reset() {
	clear(r.guards)
}

// CheckTransitionGuards evaluates the guards registered for the concrete type
// of state against state and owner. It returns the next state built by the
// first guard that passes; later guards are not evaluated. It returns false
// when no guard passes or the winning factory returns nil.
func (r *Registry[O]) CheckTransitionGuards(state State[O], owner O) (State[O], bool) {
	if state == nil {
		return nil, false
	}
	for _, g := range r.guards[reflect.TypeOf(state)] {
		if !g.check(state, owner) {
			continue
		}
		next := g.next()
		if next == nil {
			return nil, false
		}
		return next, true
	}
	return nil, false
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
