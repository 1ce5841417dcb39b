package core

import "fmt"

// Point is a position in physical-pixel screen coordinates. Logical
// (DPI-scaled) coordinates live in pkg/geometry as a separate type so the
// two spaces cannot be mixed without an explicit conversion.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is a rectangular screen region in physical pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Display describes one monitor. Displays are enumerated fresh on every
// query; bounds and scale go stale when monitors are hot-plugged, so
// nothing in this module caches them.
type Display struct {
	ID      int
	Name    string
	Bounds  Rect
	Scale   float64
	Primary bool
}

// WindowHandle identifies a top-level window. ID is the only stable key;
// Title and Bounds are snapshots taken at query time and may be stale the
// moment they are returned.
type WindowHandle struct {
	ID     string
	Title  string
	PID    int
	App    string
	Bounds Rect
}

// Button is a mouse button.
type Button string

const (
	ButtonLeft   Button = "left"
	ButtonMiddle Button = "center"
	ButtonRight  Button = "right"
)

// Key names a keyboard key in the lower-case convention shared by the
// backends ("a", "1", "enter", "ctrl", "f5"). Single printable characters
// name themselves.
type Key string

const (
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
	KeySpace     Key = "space"
	KeyBackspace Key = "backspace"
	KeyDelete    Key = "delete"
	KeyEscape    Key = "esc"
	KeyShift     Key = "shift"
	KeyCtrl      Key = "ctrl"
	KeyAlt       Key = "alt"
	KeyCmd       Key = "cmd"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeyPageUp    Key = "pageup"
	KeyPageDown  Key = "pagedown"
)
