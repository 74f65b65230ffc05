// Package trace records state machine transitions and stores them as YAML.
//
// A Recorder is attached to machines through statemachine.WithTransitionHook
// using Hook. Every transition gets a run-wide sequence number so the
// interleaving of several machines is preserved.
//
//	rec := trace.NewRecorder()
//	m := statemachine.MustNew[*Light](reg, &OffState{}, light,
//	    statemachine.WithTransitionHook(trace.Hook[*Light](rec, "hall")),
//	)
//	// ... drive the machine ...
//	_ = rec.Save("out/trace.yaml")
//
// The output looks like:
//
//	run_id: 0b6f0c86-8d4e-4f5e-9d43-6d3f0f0e9a51
//	transitions:
//	  - seq: 1
//	    machine: hall
//	    from: off
//	    to: "on"
package trace
