package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
)

// Transition is one recorded state change.
type Transition struct {
	Seq     uint64 `yaml:"seq"`
	Machine string `yaml:"machine"`
	From    string `yaml:"from"`
	To      string `yaml:"to"`
}

// Trace is the serialised form of a recording.
type Trace struct {
	RunID       string       `yaml:"run_id"`
	Transitions []Transition `yaml:"transitions"`
}

// Recorder collects transitions from any number of machines in the order
// they happen. It is not safe for concurrent use.
type Recorder struct {
	runID       uuid.UUID
	transitions []Transition
	seq         uint64
}

// NewRecorder creates a recorder with a fresh run id.
func NewRecorder() *Recorder {
	return &Recorder{runID: uuid.New()}
}

// RunID identifies the recording.
func (r *Recorder) RunID() uuid.UUID {
	return r.runID
}

// Record appends a transition of the named machine.
func (r *Recorder) Record(machine, from, to string) {
	r.seq++
	r.transitions = append(r.transitions, Transition{
		Seq:     r.seq,
		Machine: machine,
		From:    from,
		To:      to,
	})
}

// Transitions returns a copy of the recorded transitions.
func (r *Recorder) Transitions() []Transition {
	out := make([]Transition, len(r.transitions))
	copy(out, r.transitions)
	return out
}

// Len returns the number of recorded transitions.
func (r *Recorder) Len() int {
	return len(r.transitions)
}

// Trace returns the recording in its serialisable form.
func (r *Recorder) Trace() Trace {
	return Trace{
		RunID:       r.runID.String(),
		Transitions: r.Transitions(),
	}
}

// WriteYAML encodes the recording as YAML.
func (r *Recorder) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Trace()); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return nil
}

// Save writes the recording to path, creating parent directories as needed.
func (r *Recorder) Save(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.WriteYAML(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Decode reads a YAML trace.
func Decode(rd io.Reader) (Trace, error) {
	var t Trace
	if err := yaml.NewDecoder(rd).Decode(&t); err != nil {
		return Trace{}, fmt.Errorf("yaml decode: %w", err)
	}
	if _, err := uuid.Parse(t.RunID); err != nil {
		return Trace{}, errors.Join(ErrInvalidRunID, err)
	}
	return t, nil
}

// Load reads a YAML trace from path.
func Load(path string) (Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return Trace{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Hook returns a transition hook that records every transition of a machine
// under the given name.
//
//	m := statemachine.MustNew[*Light](reg, &OffState{}, light,
//	    statemachine.WithTransitionHook(trace.Hook[*Light](rec, "light-1")),
//	)
func Hook[O any](r *Recorder, machine string) func(from, to statemachine.State[O]) {
	return func(from, to statemachine.State[O]) {
		r.Record(machine, statemachine.StateName(from), statemachine.StateName(to))
	}
}
