package statemachine_test

import (
	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
)

// tracker is the owner used across tests. States append lifecycle calls to log.
type tracker struct {
	log   []string
	value int
}

type hooks struct {
	name string
}

func (h hooks) OnEnter(t *tracker) { t.log = append(t.log, h.name+".enter") }
func (h hooks) Update(t *tracker) { t.log = append(t.log, h.name+".update") }
func (h hooks) OnExit(t *tracker) { t.log = append(t.log, h.name+".exit") }

type idleState struct{ hooks }

type runState struct{ hooks }

type doneState struct{ hooks }

func newIdle() statemachine.State[*tracker] { return &idleState{hooks{"idle"}} }
func newRun() statemachine.State[*tracker] { return &runState{hooks{"run"}} }
func newDone() statemachine.State[*tracker] { return &doneState{hooks{"done"}} }
