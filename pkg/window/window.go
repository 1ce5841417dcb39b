// Package window is the high-level window management surface. Handles
// are stable identities; their Title and Bounds fields are snapshots
// taken at query time and may be stale immediately.
package window

import (
	"strings"

	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/global"
)

// Criteria filters window lookups. Zero-value fields match everything;
// string matches are case-insensitive substring matches.
type Criteria struct {
	Title string
	App   string
	PID   int
}

func (c Criteria) matches(w core.WindowHandle) bool {
	if c.Title != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(c.Title)) {
		return false
	}
	if c.App != "" && !strings.Contains(strings.ToLower(w.App), strings.ToLower(c.App)) {
		return false
	}
	if c.PID != 0 && c.PID != w.PID {
		return false
	}
	return true
}

// List returns all top-level windows.
func List() ([]core.WindowHandle, error) {
	b, err := global.Backend()
	if err != nil {
		return nil, err
	}
	return b.Windows()
}

// Active returns the focused window.
func Active() (core.WindowHandle, error) {
	b, err := global.Backend()
	if err != nil {
		return core.WindowHandle{}, err
	}
	return b.ActiveWindow()
}

// Find returns the windows matching the criteria, in enumeration order.
func Find(c Criteria) ([]core.WindowHandle, error) {
	windows, err := List()
	if err != nil {
		return nil, err
	}
	var matched []core.WindowHandle
	for _, w := range windows {
		if c.matches(w) {
			matched = append(matched, w)
		}
	}
	return matched, nil
}

// Focus raises and focuses the window.
func Focus(w core.WindowHandle) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.FocusWindow(w)
}

// Move places the window's top-left corner at (x, y) physical pixels.
func Move(w core.WindowHandle, x, y int) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.MoveWindow(w, core.Point{X: x, Y: y})
}

// Resize sets the window's outer size.
func Resize(w core.WindowHandle, width, height int) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.ResizeWindow(w, width, height)
}
