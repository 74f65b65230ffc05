package lightswitch

import "github.com/google/uuid"

// Light is the owner driven by the switch state machine.
type Light struct {
	ID uuid.UUID
	on bool
}

// NewLight returns a light that is off.
func NewLight() *Light {
	return &Light{ID: uuid.New()}
}

func (l *Light) TurnOn() { l.on = true }

func (l *Light) TurnOff() { l.on = false }

func (l *Light) IsOn() bool { return l.on }

func (l *Light) IsOff() bool { return !l.on }

// OnEvent asks Light to turn on.
type OnEvent struct {
	Light *Light
}

// OffEvent asks Light to turn off.
type OffEvent struct {
	Light *Light
}
