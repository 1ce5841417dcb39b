//go:build darwin || windows

// Package robot implements the backend contract for macOS and Windows on
// top of robotgo, which wraps the native CGEvent and SendInput paths.
// macOS refuses synthetic events until the process is granted
// accessibility consent; that surfaces as PermissionDenied, never as a
// silent no-op.
package robot

import (
	"runtime"
	"strconv"

	"github.com/go-vgo/robotgo"

	"github.com/sdpkjc/guiguigui/internal/backend/clip"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

// Per-character typing delay, in milliseconds. Targets drop leading
// characters when synthetic typing is too fast.
const typeCharDelayMs = 10

type Backend struct {
	log *logger.Logger

	clip.Board
}

func New(log *logger.Logger) (*Backend, error) {
	b := &Backend{log: log}
	if !accessibilityOK() {
		log.Warn("Accessibility permission not granted; input injection will fail")
	}
	return b, nil
}

func (b *Backend) Name() string { return runtime.GOOS }

// Capabilities: window geometry control has no portable robotgo path, so
// the window group supports query and focus only; MoveWindow and
// ResizeWindow report UnsupportedInput.
func (b *Backend) Capabilities() core.Capabilities {
	return core.Capabilities{Pointer: true, Keyboard: true, Display: true, Window: true, Clipboard: true}
}

func permissionOrPlatform(op string, err error) error {
	if !accessibilityOK() {
		return core.Errorf(core.KindPermissionDenied, op, "accessibility permission not granted")
	}
	return core.E(core.KindPlatformError, op, err)
}

func (b *Backend) Position() (core.Point, error) {
	x, y := robotgo.Location()
	return core.Point{X: x, Y: y}, nil
}

func (b *Backend) MoveTo(p core.Point) error {
	robotgo.Move(p.X, p.Y)
	return nil
}

func (b *Backend) ButtonDown(btn core.Button) error {
	if err := robotgo.Toggle(string(btn), "down"); err != nil {
		return permissionOrPlatform("pointer.button_down", err)
	}
	return nil
}

func (b *Backend) ButtonUp(btn core.Button) error {
	if err := robotgo.Toggle(string(btn), "up"); err != nil {
		return permissionOrPlatform("pointer.button_up", err)
	}
	return nil
}

func (b *Backend) Scroll(dx, dy int) error {
	robotgo.Scroll(dx, dy)
	return nil
}

func (b *Backend) KeyDown(k core.Key) error {
	if err := robotgo.KeyToggle(string(k), "down"); err != nil {
		return keyError("keyboard.key_down", k, err)
	}
	return nil
}

func (b *Backend) KeyUp(k core.Key) error {
	if err := robotgo.KeyToggle(string(k), "up"); err != nil {
		return keyError("keyboard.key_up", k, err)
	}
	return nil
}

// TypeText uses robotgo's Unicode injection, which works independent of
// the active keyboard layout on both platforms.
func (b *Backend) TypeText(text string) error {
	robotgo.TypeStrDelay(text, typeCharDelayMs)
	return nil
}

func keyError(op string, k core.Key, err error) error {
	if !accessibilityOK() {
		return core.Errorf(core.KindPermissionDenied, op, "accessibility permission not granted")
	}
	// robotgo rejects names missing from its keycode table.
	return core.Errorf(core.KindUnsupportedInput, op, "key %q: %v", k, err)
}

func (b *Backend) Displays() ([]core.Display, error) {
	n := robotgo.DisplaysNum()
	if n <= 0 {
		return nil, core.Errorf(core.KindPlatformError, "display.list", "no displays reported")
	}
	displays := make([]core.Display, 0, n)
	for i := 0; i < n; i++ {
		x, y, w, h := robotgo.GetDisplayBounds(i)
		displays = append(displays, core.Display{
			ID:      i,
			Name:    "display-" + strconv.Itoa(i),
			Bounds:  core.Rect{X: x, Y: y, Width: w, Height: h},
			Scale:   robotgo.ScaleF(i),
			Primary: i == 0,
		})
	}
	return displays, nil
}

func (b *Backend) PrimaryDisplay() (core.Display, error) {
	displays, err := b.Displays()
	if err != nil {
		return core.Display{}, err
	}
	return displays[0], nil
}

func (b *Backend) Windows() ([]core.WindowHandle, error) {
	procs, err := robotgo.Process()
	if err != nil {
		return nil, core.E(core.KindPlatformError, "window.list", err)
	}
	handles := make([]core.WindowHandle, 0, len(procs))
	for _, p := range procs {
		x, y, w, h := robotgo.GetBounds(int(p.Pid))
		if w == 0 && h == 0 {
			continue // no window for this process
		}
		handles = append(handles, core.WindowHandle{
			ID:     strconv.Itoa(int(p.Pid)),
			Title:  robotgo.GetTitle(int(p.Pid)),
			PID:    int(p.Pid),
			App:    p.Name,
			Bounds: core.Rect{X: x, Y: y, Width: w, Height: h},
		})
	}
	return handles, nil
}

func (b *Backend) ActiveWindow() (core.WindowHandle, error) {
	pid := robotgo.GetPid()
	x, y, w, h := robotgo.GetBounds(int(pid))
	return core.WindowHandle{
		ID:     strconv.Itoa(int(pid)),
		Title:  robotgo.GetTitle(),
		PID:    int(pid),
		Bounds: core.Rect{X: x, Y: y, Width: w, Height: h},
	}, nil
}

func (b *Backend) FocusWindow(w core.WindowHandle) error {
	pid, err := strconv.Atoi(w.ID)
	if err != nil {
		return core.Errorf(core.KindInvalidArgument, "window.focus", "malformed window id %q", w.ID)
	}
	if err := robotgo.ActivePid(pid); err != nil {
		return permissionOrPlatform("window.focus", err)
	}
	return nil
}

func (b *Backend) MoveWindow(core.WindowHandle, core.Point) error {
	return core.Errorf(core.KindUnsupportedInput, "window.move", "window geometry control is not available on %s", runtime.GOOS)
}

func (b *Backend) ResizeWindow(core.WindowHandle, int, int) error {
	return core.Errorf(core.KindUnsupportedInput, "window.resize", "window geometry control is not available on %s", runtime.GOOS)
}

var _ core.Backend = (*Backend)(nil)
