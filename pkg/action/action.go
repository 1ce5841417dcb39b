// Package action defines the closed set of atomic automation steps a macro
// is built from. Every action is an immutable value: executing one never
// mutates it, so the same sequence replays identically.
package action

import (
	"time"

	"github.com/rivo/uniseg"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// Per-character delay while decomposing text into key events. Some targets
// drop the first characters when synthetic typing is too fast.
const typeCharDelay = 10 * time.Millisecond

// Action is one atomic automation step. Execute issues the step against the
// backend and returns the backend's error unaltered in kind. Estimated is
// scheduling feedback only; real timing comes from wall-clock waits inside
// Execute, never from the estimate.
type Action interface {
	// Name identifies the variant ("mouse_move", "key_write", ...).
	Name() string
	// Validate reports construction-time misuse such as a negative
	// duration. It is checked by the macro builder and again by Execute
	// before anything reaches the backend.
	Validate() error
	Execute(b core.Backend) error
	Estimated() time.Duration
}

// MouseMove moves the cursor to (X, Y) in physical pixels. A positive
// Duration interpolates linearly from the current position at a fixed step
// rate; zero jumps in a single position-set call.
type MouseMove struct {
	X        int
	Y        int
	Duration time.Duration
}

func (a MouseMove) Name() string { return "mouse_move" }

func (a MouseMove) Validate() error {
	if a.Duration < 0 {
		return core.Errorf(core.KindInvalidArgument, a.Name(), "negative duration %v", a.Duration)
	}
	return nil
}

func (a MouseMove) Estimated() time.Duration { return a.Duration }

func (a MouseMove) Execute(b core.Backend) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return glideTo(b, core.Point{X: a.X, Y: a.Y}, a.Duration)
}

// MouseClick presses and releases Button. The zero value clicks left.
type MouseClick struct {
	Button core.Button
}

func (a MouseClick) Name() string             { return "mouse_click" }
func (a MouseClick) Validate() error          { return nil }
func (a MouseClick) Estimated() time.Duration { return 0 }

func (a MouseClick) Execute(b core.Backend) error {
	btn := a.Button
	if btn == "" {
		btn = core.ButtonLeft
	}
	if err := b.ButtonDown(btn); err != nil {
		return err
	}
	return b.ButtonUp(btn)
}

// MouseDrag holds the left button while moving to (X, Y), releasing at the
// target. Duration behaves as in MouseMove.
type MouseDrag struct {
	X        int
	Y        int
	Duration time.Duration
}

func (a MouseDrag) Name() string { return "mouse_drag" }

func (a MouseDrag) Validate() error {
	if a.Duration < 0 {
		return core.Errorf(core.KindInvalidArgument, a.Name(), "negative duration %v", a.Duration)
	}
	return nil
}

func (a MouseDrag) Estimated() time.Duration { return a.Duration }

func (a MouseDrag) Execute(b core.Backend) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := b.ButtonDown(core.ButtonLeft); err != nil {
		return err
	}
	moveErr := glideTo(b, core.Point{X: a.X, Y: a.Y}, a.Duration)
	upErr := b.ButtonUp(core.ButtonLeft)
	if moveErr != nil {
		return moveErr
	}
	return upErr
}

// KeyPress pushes Key down without releasing it.
type KeyPress struct {
	Key core.Key
}

func (a KeyPress) Name() string { return "key_press" }

func (a KeyPress) Validate() error {
	if a.Key == "" {
		return core.Errorf(core.KindInvalidArgument, a.Name(), "empty key")
	}
	return nil
}

func (a KeyPress) Estimated() time.Duration { return 0 }

func (a KeyPress) Execute(b core.Backend) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.KeyDown(a.Key)
}

// KeyRelease releases a previously pressed Key.
type KeyRelease struct {
	Key core.Key
}

func (a KeyRelease) Name() string { return "key_release" }

func (a KeyRelease) Validate() error {
	if a.Key == "" {
		return core.Errorf(core.KindInvalidArgument, a.Name(), "empty key")
	}
	return nil
}

func (a KeyRelease) Estimated() time.Duration { return 0 }

func (a KeyRelease) Execute(b core.Backend) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.KeyUp(a.Key)
}

// KeyWrite types Text, decomposed at execution time into one press+release
// pair per grapheme cluster. A grapheme without a mapping on the active
// layout falls back to the backend's Unicode injection path; if that also
// fails the whole call fails, leaving the remaining text untyped.
type KeyWrite struct {
	Text string
}

func (a KeyWrite) Name() string    { return "key_write" }
func (a KeyWrite) Validate() error { return nil }

func (a KeyWrite) Estimated() time.Duration {
	return time.Duration(uniseg.GraphemeClusterCount(a.Text)) * typeCharDelay
}

func (a KeyWrite) Execute(b core.Backend) error {
	g := uniseg.NewGraphemes(a.Text)
	for g.Next() {
		cluster := g.Str()
		if err := tapGrapheme(b, cluster); err != nil {
			return err
		}
		time.Sleep(typeCharDelay)
	}
	return nil
}

func tapGrapheme(b core.Backend, cluster string) error {
	key := core.Key(cluster)
	if err := b.KeyDown(key); err != nil {
		if core.IsKind(err, core.KindUnsupportedInput) {
			return b.TypeText(cluster)
		}
		return err
	}
	return b.KeyUp(key)
}

// Hotkey presses Keys in order and releases them in reverse order, so
// modifiers listed first stay held across the chord.
type Hotkey struct {
	Keys []core.Key
}

func (a Hotkey) Name() string { return "hotkey" }

func (a Hotkey) Validate() error {
	if len(a.Keys) == 0 {
		return core.Errorf(core.KindInvalidArgument, a.Name(), "empty key set")
	}
	for _, k := range a.Keys {
		if k == "" {
			return core.Errorf(core.KindInvalidArgument, a.Name(), "empty key in set")
		}
	}
	return nil
}

func (a Hotkey) Estimated() time.Duration { return 0 }

func (a Hotkey) Execute(b core.Backend) error {
	if err := a.Validate(); err != nil {
		return err
	}
	for i, k := range a.Keys {
		if err := b.KeyDown(k); err != nil {
			// Release whatever is already held before reporting.
			for j := i - 1; j >= 0; j-- {
				b.KeyUp(a.Keys[j])
			}
			return err
		}
	}
	var firstErr error
	for i := len(a.Keys) - 1; i >= 0; i-- {
		if err := b.KeyUp(a.Keys[i]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Wait suspends the executing context for Duration. It never touches the
// backend.
type Wait struct {
	Duration time.Duration
}

func (a Wait) Name() string { return "wait" }

func (a Wait) Validate() error {
	if a.Duration < 0 {
		return core.Errorf(core.KindInvalidArgument, a.Name(), "negative duration %v", a.Duration)
	}
	return nil
}

func (a Wait) Estimated() time.Duration { return a.Duration }

func (a Wait) Execute(core.Backend) error {
	if err := a.Validate(); err != nil {
		return err
	}
	time.Sleep(a.Duration)
	return nil
}
