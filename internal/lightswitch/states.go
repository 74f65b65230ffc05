package lightswitch

import (
	"github.com/dmitrymomot/fsmkit/pkg/eventqueue"
	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
)

// OffState waits for an OnEvent addressed to its light.
type OffState struct {
	bus    *eventqueue.Bus
	handle eventqueue.ListenerHandle
}

// NewOffState returns an off state listening on bus.
func NewOffState(bus *eventqueue.Bus) *OffState {
	return &OffState{bus: bus}
}

func (s *OffState) Name() string { return "off" }

func (s *OffState) OnEnter(light *Light) {
	s.handle = eventqueue.Subscribe(s.bus, func(e OnEvent) {
		if e.Light == light {
			light.TurnOn()
		}
	})
}

func (s *OffState) Update(*Light) {}

func (s *OffState) OnExit(*Light) {
	eventqueue.Unsubscribe[OnEvent](s.bus, s.handle)
	s.handle = eventqueue.InvalidHandle
}

// OnState waits for an OffEvent addressed to its light.
type OnState struct {
	bus    *eventqueue.Bus
	handle eventqueue.ListenerHandle
}

// NewOnState returns an on state listening on bus.
func NewOnState(bus *eventqueue.Bus) *OnState {
	return &OnState{bus: bus}
}

func (s *OnState) Name() string { return "on" }

func (s *OnState) OnEnter(light *Light) {
	s.handle = eventqueue.Subscribe(s.bus, func(e OffEvent) {
		if e.Light == light {
			light.TurnOff()
		}
	})
}

func (s *OnState) Update(*Light) {}

func (s *OnState) OnExit(*Light) {
	eventqueue.Unsubscribe[OffEvent](s.bus, s.handle)
	s.handle = eventqueue.InvalidHandle
}

var (
	_ statemachine.State[*Light] = (*OffState)(nil)
	_ statemachine.State[*Light] = (*OnState)(nil)
)
