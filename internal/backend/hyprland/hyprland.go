// Package hyprland implements the backend contract for Hyprland Wayland
// sessions through hyprctl. Wayland's security model forbids arbitrary
// input injection from unprivileged clients, so button and key events are
// reported as permission failures rather than silently degraded; display,
// window, cursor, and clipboard operations go through compositor IPC.
package hyprland

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sdpkjc/guiguigui/internal/backend/clip"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

type Backend struct {
	log *logger.Logger

	clip.Board
}

// New verifies hyprctl is reachable.
func New(log *logger.Logger) (*Backend, error) {
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		return nil, core.E(core.KindPlatformError, "hyprland.detect", err)
	}
	log.Debug("Found hyprctl", "path", path)
	return &Backend{log: log}, nil
}

func (b *Backend) Name() string { return "hyprland" }

func (b *Backend) Capabilities() core.Capabilities {
	return core.Capabilities{Pointer: true, Keyboard: false, Display: true, Window: true, Clipboard: true}
}

// monitor mirrors one entry of `hyprctl monitors -j`.
type monitor struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Scale   float64 `json:"scale"`
	Focused bool    `json:"focused"`
}

// client mirrors one entry of `hyprctl clients -j`.
type client struct {
	Address string `json:"address"`
	At      [2]int `json:"at"`
	Size    [2]int `json:"size"`
	Class   string `json:"class"`
	Title   string `json:"title"`
	PID     int    `json:"pid"`
}

func (b *Backend) hyprctl(op string, args ...string) ([]byte, error) {
	out, err := exec.Command("hyprctl", args...).CombinedOutput()
	if err != nil {
		return nil, core.Errorf(core.KindPlatformError, op, "hyprctl %s: %v: %s", strings.Join(args, " "), err, out)
	}
	return out, nil
}

func (b *Backend) dispatch(op string, args ...string) error {
	out, err := b.hyprctl(op, append([]string{"dispatch"}, args...)...)
	if err != nil {
		return err
	}
	// hyprctl reports dispatcher errors on stdout with a zero exit code.
	if s := strings.TrimSpace(string(out)); s != "" && s != "ok" {
		return core.Errorf(core.KindPlatformError, op, "hyprctl dispatch: %s", s)
	}
	return nil
}

func injectionDenied(op string) error {
	return core.Errorf(core.KindPermissionDenied, op, "wayland compositors do not permit synthetic input injection")
}

// Pointer: Hyprland exposes cursor position and warping over IPC, but no
// synthetic button events.

func (b *Backend) Position() (core.Point, error) {
	out, err := b.hyprctl("pointer.position", "cursorpos")
	if err != nil {
		return core.Point{}, err
	}
	var p core.Point
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%d, %d", &p.X, &p.Y); err != nil {
		return core.Point{}, core.E(core.KindPlatformError, "pointer.position", err)
	}
	return p, nil
}

func (b *Backend) MoveTo(p core.Point) error {
	return b.dispatch("pointer.move_to", "movecursor", fmt.Sprintf("%d", p.X), fmt.Sprintf("%d", p.Y))
}

func (b *Backend) ButtonDown(core.Button) error { return injectionDenied("pointer.button_down") }
func (b *Backend) ButtonUp(core.Button) error   { return injectionDenied("pointer.button_up") }
func (b *Backend) Scroll(int, int) error        { return injectionDenied("pointer.scroll") }

func (b *Backend) KeyDown(core.Key) error { return injectionDenied("keyboard.key_down") }
func (b *Backend) KeyUp(core.Key) error   { return injectionDenied("keyboard.key_up") }
func (b *Backend) TypeText(string) error  { return injectionDenied("keyboard.type_text") }

func (b *Backend) Displays() ([]core.Display, error) {
	out, err := b.hyprctl("display.list", "monitors", "-j")
	if err != nil {
		return nil, err
	}
	var monitors []monitor
	if err := json.Unmarshal(out, &monitors); err != nil {
		return nil, core.E(core.KindPlatformError, "display.list", err)
	}
	displays := make([]core.Display, 0, len(monitors))
	for i, m := range monitors {
		displays = append(displays, core.Display{
			ID:      m.ID,
			Name:    m.Name,
			Bounds:  core.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
			Scale:   m.Scale,
			Primary: m.Focused || (i == 0 && len(monitors) == 1),
		})
	}
	return displays, nil
}

func (b *Backend) PrimaryDisplay() (core.Display, error) {
	displays, err := b.Displays()
	if err != nil {
		return core.Display{}, err
	}
	if len(displays) == 0 {
		return core.Display{}, core.Errorf(core.KindPlatformError, "display.primary", "no monitors reported")
	}
	for _, d := range displays {
		if d.Primary {
			return d, nil
		}
	}
	return displays[0], nil
}

func (b *Backend) Windows() ([]core.WindowHandle, error) {
	out, err := b.hyprctl("window.list", "clients", "-j")
	if err != nil {
		return nil, err
	}
	var clients []client
	if err := json.Unmarshal(out, &clients); err != nil {
		return nil, core.E(core.KindPlatformError, "window.list", err)
	}
	handles := make([]core.WindowHandle, 0, len(clients))
	for _, c := range clients {
		handles = append(handles, handleFor(c))
	}
	return handles, nil
}

func (b *Backend) ActiveWindow() (core.WindowHandle, error) {
	out, err := b.hyprctl("window.active", "activewindow", "-j")
	if err != nil {
		return core.WindowHandle{}, err
	}
	var c client
	if err := json.Unmarshal(out, &c); err != nil {
		return core.WindowHandle{}, core.E(core.KindPlatformError, "window.active", err)
	}
	if c.Address == "" {
		return core.WindowHandle{}, core.Errorf(core.KindPlatformError, "window.active", "no active window")
	}
	return handleFor(c), nil
}

func (b *Backend) FocusWindow(w core.WindowHandle) error {
	return b.dispatch("window.focus", "focuswindow", "address:"+w.ID)
}

func (b *Backend) MoveWindow(w core.WindowHandle, p core.Point) error {
	return b.dispatch("window.move", "movewindowpixel",
		fmt.Sprintf("exact %d %d,address:%s", p.X, p.Y, w.ID))
}

func (b *Backend) ResizeWindow(w core.WindowHandle, width, height int) error {
	return b.dispatch("window.resize", "resizewindowpixel",
		fmt.Sprintf("exact %d %d,address:%s", width, height, w.ID))
}

func handleFor(c client) core.WindowHandle {
	return core.WindowHandle{
		ID:     c.Address,
		Title:  c.Title,
		PID:    c.PID,
		App:    c.Class,
		Bounds: core.Rect{X: c.At[0], Y: c.At[1], Width: c.Size[0], Height: c.Size[1]},
	}
}

var _ core.Backend = (*Backend)(nil)
