// Package backendtest provides an in-memory Backend that records every call
// it receives. Tests assert on the ordered event trace instead of driving a
// real display server.
package backendtest

import (
	"fmt"
	"sync"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// Recorder implements core.Backend in memory. The zero value is usable;
// configure Displays/Wins and error injection before use.
type Recorder struct {
	mu     sync.Mutex
	events []string
	pos    core.Point

	Disp      []core.Display
	Wins      []core.WindowHandle
	Clip      []byte
	ActiveWin core.WindowHandle

	// Errs maps an event prefix ("key_down c", "move_to") to the error
	// every matching call returns.
	Errs map[string]error

	// UnmappedKeys simulates keys missing from the active layout:
	// KeyDown on one of these returns an UnsupportedInput error.
	UnmappedKeys map[core.Key]bool
}

// New returns a Recorder with a single 1920x1080 primary display.
func New() *Recorder {
	return &Recorder{
		Disp: []core.Display{{
			ID:      0,
			Name:    "fake-0",
			Bounds:  core.Rect{Width: 1920, Height: 1080},
			Scale:   1.0,
			Primary: true,
		}},
	}
}

func (r *Recorder) record(format string, args ...interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev := fmt.Sprintf(format, args...)
	r.events = append(r.events, ev)
	for prefix, err := range r.Errs {
		if len(ev) >= len(prefix) && ev[:len(prefix)] == prefix {
			return err
		}
	}
	return nil
}

// Events returns a copy of the recorded trace.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// Clear drops the recorded trace.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *Recorder) Name() string { return "recorder" }

func (r *Recorder) Capabilities() core.Capabilities {
	return core.Capabilities{Pointer: true, Keyboard: true, Display: true, Window: true, Clipboard: true}
}

func (r *Recorder) Position() (core.Point, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos, nil
}

func (r *Recorder) MoveTo(p core.Point) error {
	err := r.record("move_to %d,%d", p.X, p.Y)
	r.mu.Lock()
	r.pos = p
	r.mu.Unlock()
	return err
}

func (r *Recorder) ButtonDown(b core.Button) error {
	return r.record("button_down %s", b)
}

func (r *Recorder) ButtonUp(b core.Button) error {
	return r.record("button_up %s", b)
}

func (r *Recorder) Scroll(dx, dy int) error {
	return r.record("scroll %d,%d", dx, dy)
}

func (r *Recorder) KeyDown(k core.Key) error {
	if r.UnmappedKeys[k] {
		r.record("key_down_unmapped %s", k)
		return core.Errorf(core.KindUnsupportedInput, "keyboard.key_down", "no mapping for %q", k)
	}
	return r.record("key_down %s", k)
}

func (r *Recorder) KeyUp(k core.Key) error {
	return r.record("key_up %s", k)
}

func (r *Recorder) TypeText(text string) error {
	return r.record("type_text %s", text)
}

func (r *Recorder) Displays() ([]core.Display, error) {
	r.record("displays")
	return append([]core.Display(nil), r.Disp...), nil
}

func (r *Recorder) PrimaryDisplay() (core.Display, error) {
	r.record("primary_display")
	for _, d := range r.Disp {
		if d.Primary {
			return d, nil
		}
	}
	if len(r.Disp) > 0 {
		return r.Disp[0], nil
	}
	return core.Display{}, core.Errorf(core.KindPlatformError, "display.primary", "no displays")
}

func (r *Recorder) Windows() ([]core.WindowHandle, error) {
	r.record("windows")
	return append([]core.WindowHandle(nil), r.Wins...), nil
}

func (r *Recorder) ActiveWindow() (core.WindowHandle, error) {
	r.record("active_window")
	return r.ActiveWin, nil
}

func (r *Recorder) FocusWindow(w core.WindowHandle) error {
	return r.record("focus_window %s", w.ID)
}

func (r *Recorder) MoveWindow(w core.WindowHandle, p core.Point) error {
	return r.record("move_window %s %d,%d", w.ID, p.X, p.Y)
}

func (r *Recorder) ResizeWindow(w core.WindowHandle, width, height int) error {
	return r.record("resize_window %s %dx%d", w.ID, width, height)
}

func (r *Recorder) ClipboardGet() ([]byte, error) {
	r.record("clipboard_get")
	return append([]byte(nil), r.Clip...), nil
}

func (r *Recorder) ClipboardSet(b []byte) error {
	err := r.record("clipboard_set %s", b)
	r.mu.Lock()
	r.Clip = append([]byte(nil), b...)
	r.mu.Unlock()
	return err
}

func (r *Recorder) ClipboardClear() error {
	err := r.record("clipboard_clear")
	r.mu.Lock()
	r.Clip = nil
	r.mu.Unlock()
	return err
}

func (r *Recorder) ClipboardHasText() (bool, error) {
	r.record("clipboard_has_text")
	return len(r.Clip) > 0, nil
}

var _ core.Backend = (*Recorder)(nil)
