package lightswitch

import (
	"github.com/dmitrymomot/fsmkit/pkg/eventqueue"
	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
)

// RegisterTransitions adds the off->on and on->off guards to reg. States
// created by the guards listen on bus.
func RegisterTransitions(reg *statemachine.Registry[*Light], bus *eventqueue.Bus) error {
	if err := statemachine.AddTransitionGuard(reg,
		func(_ *OffState, l *Light) bool { return l.IsOn() },
		func() statemachine.State[*Light] { return NewOnState(bus) },
	); err != nil {
		return err
	}
	return statemachine.AddTransitionGuard(reg,
		func(_ *OnState, l *Light) bool { return l.IsOff() },
		func() statemachine.State[*Light] { return NewOffState(bus) },
	)
}

// ClearTransitions removes the guards added by RegisterTransitions.
func ClearTransitions(reg *statemachine.Registry[*Light]) {
	statemachine.ClearStateTransitions[*OffState](reg)
	statemachine.ClearStateTransitions[*OnState](reg)
}

// NewMachine starts a machine for light in the off state.
func NewMachine(reg *statemachine.Registry[*Light], bus *eventqueue.Bus, light *Light, opts ...statemachine.Option[*Light]) (*statemachine.Machine[*Light], error) {
	return statemachine.New[*Light](reg, NewOffState(bus), light, opts...)
}

// SwitchOn queues an OnEvent for light.
func SwitchOn(bus *eventqueue.Bus, light *Light) {
	eventqueue.Publish(bus, OnEvent{Light: light})
}

// SwitchOff queues an OffEvent for light.
func SwitchOff(bus *eventqueue.Bus, light *Light) {
	eventqueue.Publish(bus, OffEvent{Light: light})
}
