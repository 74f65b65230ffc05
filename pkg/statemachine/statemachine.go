package statemachine

import (
	"fmt"
	"strings"
)

// State is a single behaviour unit driven by a Machine.
// Each concrete type is a distinct logical state; its transition guards are
// looked up in a Registry by that concrete type.
type State[O any] interface {
	// OnEnter runs once when the machine makes the state current.
	OnEnter(owner O)
	// Update runs on every Machine.Update call while the state is current.
	Update(owner O)
	// OnExit runs once before the machine replaces the state.
	OnExit(owner O)
}

// Named is implemented by states that want a custom name in logs and traces.
type Named interface {
	Name() string
}

// Factory produces a fresh instance of the next state.
type Factory[O any] func() State[O]

// StateName returns the name used for a state in logs and traces.
// States implementing Named report their own name, others fall back to
// the concrete type name.
func StateName(state any) string {
	if state == nil {
		return "<nil>"
	}
	if n, ok := state.(Named); ok {
		return n.Name()
	}
	return strings.TrimLeft(fmt.Sprintf("%T", state), "*")
}
