package statemachine

import "errors"

var (
	ErrNilRegistry = errors.New("statemachine: registry cannot be nil")
	ErrNilState    = errors.New("statemachine: state cannot be nil")
	ErrNilGuard    = errors.New("statemachine: transition guard cannot be nil")
	ErrNilFactory  = errors.New("statemachine: next state factory cannot be nil")

	// ErrAbstractState is returned when guards are added for an interface type
	// instead of a concrete state type.
	ErrAbstractState = errors.New("statemachine: guards must be registered for a concrete state type")
)
