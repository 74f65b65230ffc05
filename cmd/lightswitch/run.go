package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/fsmkit/internal/lightswitch"
	"github.com/dmitrymomot/fsmkit/pkg/eventqueue"
	"github.com/dmitrymomot/fsmkit/pkg/logger"
	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
	"github.com/dmitrymomot/fsmkit/pkg/trace"
)

type runIDKey struct{}

// summary describes a finished run.
type summary struct {
	Steps       int
	Transitions uint64
	LightsOn    int
	Recorder    *trace.Recorder
}

// run toggles one light per step in round-robin order, dispatches the queued
// switch events and advances every machine once.
func run(ctx context.Context, cfg Config, log *slog.Logger) (summary, error) {
	if err := cfg.validate(); err != nil {
		return summary{}, err
	}

	rec := trace.NewRecorder()
	ctx = context.WithValue(ctx, runIDKey{}, rec.RunID().String())

	reg := statemachine.NewRegistry[*lightswitch.Light](statemachine.WithRegistryLogger(log))
	bus := eventqueue.NewBus(eventqueue.WithLogger(log))
	if err := lightswitch.RegisterTransitions(reg, bus); err != nil {
		return summary{}, fmt.Errorf("register transitions: %w", err)
	}
	defer lightswitch.ClearTransitions(reg)

	lights := make([]*lightswitch.Light, cfg.Lights)
	machines := make([]*statemachine.Machine[*lightswitch.Light], cfg.Lights)
	for i := range lights {
		name := fmt.Sprintf("light-%d", i+1)
		lights[i] = lightswitch.NewLight()
		m, err := lightswitch.NewMachine(reg, bus, lights[i],
			statemachine.WithLogger[*lightswitch.Light](log),
			statemachine.WithName[*lightswitch.Light](name),
			statemachine.WithTransitionHook(trace.Hook[*lightswitch.Light](rec, name)),
		)
		if err != nil {
			return summary{}, fmt.Errorf("start %s: %w", name, err)
		}
		machines[i] = m
	}

	for step := range cfg.Steps {
		light := lights[step%len(lights)]
		if light.IsOn() {
			lightswitch.SwitchOff(bus, light)
		} else {
			lightswitch.SwitchOn(bus, light)
		}

		calls := bus.DispatchAll()
		for _, m := range machines {
			m.Update()
		}
		log.DebugContext(ctx, "step done", logger.Step(step+1), logger.Count(calls))
	}

	s := summary{Steps: cfg.Steps, Recorder: rec}
	for i, m := range machines {
		s.Transitions += m.Transitions()
		if lights[i].IsOn() {
			s.LightsOn++
		}
	}

	if cfg.TraceFile != "" {
		if err := rec.Save(cfg.TraceFile); err != nil {
			return s, fmt.Errorf("save trace: %w", err)
		}
	}

	log.InfoContext(ctx, "run finished",
		logger.Step(s.Steps),
		slog.Uint64("transitions", s.Transitions),
		slog.Int("lights_on", s.LightsOn),
	)
	return s, nil
}
