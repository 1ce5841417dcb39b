// Package macro sequences actions into a deterministic, cancelable
// playback. A macro is built fluently, runs its actions strictly in
// insertion order on one goroutine, and can be re-run; execution never
// mutates the sequence.
package macro

import (
	"fmt"
	"sync"
	"time"

	"github.com/sdpkjc/guiguigui/pkg/action"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/global"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

// State is the lifecycle of one macro. Running is enterable only from
// Idle; re-running a macro in a terminal state resets it first.
type State int32

const (
	Idle State = iota
	Running
	Completed
	Cancelled
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// StepError records one failing action and its position in the sequence.
type StepError struct {
	Index  int
	Action string
	Err    error
}

func (e StepError) Error() string {
	return fmt.Sprintf("action %d (%s): %v", e.Index, e.Action, e.Err)
}

func (e StepError) Unwrap() error { return e.Err }

// RunError aggregates every per-step failure of a continue-on-error run.
type RunError struct {
	Name  string
	Steps []StepError
}

func (e *RunError) Error() string {
	return fmt.Sprintf("macro %q: %d of its actions failed (first: %v)", e.Name, len(e.Steps), e.Steps[0])
}

func (e *RunError) Unwrap() error { return e.Steps[0].Err }

// Option configures a macro at construction.
type Option func(*Macro)

// ContinueOnError makes a run execute every remaining action after a
// failure and report all failures aggregated, instead of failing fast.
func ContinueOnError() Option {
	return func(m *Macro) { m.continueOnError = true }
}

// WithLogger attaches a logger for per-run debug output.
func WithLogger(log *logger.Logger) Option {
	return func(m *Macro) { m.log = log }
}

// Macro is a named, ordered action sequence with a run/cancel/reset
// lifecycle. Methods are safe for concurrent use; the actions themselves
// run on the single goroutine that called Run.
type Macro struct {
	name            string
	continueOnError bool
	log             *logger.Logger

	mu       sync.Mutex
	state    State
	actions  []action.Action
	buildErr error
	cancel   bool
}

// New returns an empty macro in the Idle state.
func New(name string, opts ...Option) *Macro {
	m := &Macro{name: name}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the macro's name.
func (m *Macro) Name() string { return m.name }

// State returns the current lifecycle state.
func (m *Macro) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Len returns the number of actions in the sequence.
func (m *Macro) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.actions)
}

// Estimated returns the summed duration estimate of the sequence. It is
// feedback for schedulers; actual timing comes from execution.
func (m *Macro) Estimated() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total time.Duration
	for _, a := range m.actions {
		total += a.Estimated()
	}
	return total
}

// Add appends an action to the pending sequence and returns the macro for
// chaining. An invalid action (negative duration, empty hotkey) is
// remembered as the build error and surfaced by the next Run before
// anything executes. Adds while the macro is Running are dropped: the
// sequence is immutable during execution.
func (m *Macro) Add(a action.Action) *Macro {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Running {
		return m
	}
	if err := a.Validate(); err != nil && m.buildErr == nil {
		m.buildErr = err
	}
	m.actions = append(m.actions, a)
	return m
}

// Wait appends a pure pause.
func (m *Macro) Wait(d time.Duration) *Macro {
	return m.Add(action.Wait{Duration: d})
}

// Run resolves the process-wide backend and replays the sequence on it.
func (m *Macro) Run() error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return m.RunOn(b)
}

// RunOn replays the sequence against b. Actions run strictly in insertion
// order; the cancellation flag is checked before each action and never
// mid-action. Default policy is fail-fast: the first action error moves
// the macro to Failed, skips the rest, and is returned wrapped with its
// index. With ContinueOnError every failure is collected into a RunError.
// A cancelled run returns nil with the state left at Cancelled.
func (m *Macro) RunOn(b core.Backend) error {
	m.mu.Lock()
	if m.buildErr != nil {
		err := m.buildErr
		m.mu.Unlock()
		return err
	}
	if m.state == Running {
		m.mu.Unlock()
		return core.Errorf(core.KindAlreadyRunning, "macro.run", "macro %q is already running", m.name)
	}
	m.state = Running
	m.cancel = false
	seq := m.actions
	m.mu.Unlock()

	if m.log != nil {
		m.log.Debug("Macro run starting", "macro", m.name, "actions", len(seq), "backend", b.Name())
	}

	var steps []StepError
	for i, a := range seq {
		if m.cancelled() {
			m.setState(Cancelled)
			if m.log != nil {
				m.log.Info("Macro cancelled", "macro", m.name, "completed_actions", i)
			}
			return nil
		}
		if err := a.Execute(b); err != nil {
			if !m.continueOnError {
				m.setState(Failed)
				return fmt.Errorf("macro %q: action %d (%s): %w", m.name, i, a.Name(), err)
			}
			steps = append(steps, StepError{Index: i, Action: a.Name(), Err: err})
		}
	}

	if len(steps) > 0 {
		m.setState(Failed)
		return &RunError{Name: m.name, Steps: steps}
	}
	m.setState(Completed)
	if m.log != nil {
		m.log.Debug("Macro run completed", "macro", m.name)
	}
	return nil
}

// Cancel requests a cooperative stop. The run halts before its next
// action; an action already mid-flight is never preempted. Cancelling a
// macro that is not running returns a NotRunning error.
func (m *Macro) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Running {
		return core.Errorf(core.KindNotRunning, "macro.cancel", "macro %q is not running", m.name)
	}
	m.cancel = true
	return nil
}

// Reset returns a finished macro to Idle so it can be edited before the
// next run. Run itself resets implicitly, so Reset is only needed to
// clear a terminal state early. Resetting a running macro is rejected.
func (m *Macro) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Running {
		return core.Errorf(core.KindAlreadyRunning, "macro.reset", "macro %q is running", m.name)
	}
	m.state = Idle
	m.cancel = false
	return nil
}

func (m *Macro) cancelled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel
}

func (m *Macro) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
