// Package mouse is the high-level pointer surface. Every call routes to
// the process-wide backend; coordinates are physical pixels.
package mouse

import (
	"time"

	"github.com/sdpkjc/guiguigui/pkg/action"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/global"
)

// Position returns the current cursor position.
func Position() (core.Point, error) {
	b, err := global.Backend()
	if err != nil {
		return core.Point{}, err
	}
	return b.Position()
}

// Move jumps the cursor to (x, y) instantly.
func Move(x, y int) error {
	return run(action.MouseMove{X: x, Y: y})
}

// MoveSmooth glides the cursor to (x, y) over d, interpolating at a
// fixed step rate to emulate human-speed motion.
func MoveSmooth(x, y int, d time.Duration) error {
	return run(action.MouseMove{X: x, Y: y, Duration: d})
}

// Click presses and releases a button at the current position. With no
// argument it clicks left.
func Click(btn ...core.Button) error {
	a := action.MouseClick{}
	if len(btn) > 0 {
		a.Button = btn[0]
	}
	return run(a)
}

// Drag holds the left button while gliding to (x, y) over d.
func Drag(x, y int, d time.Duration) error {
	return run(action.MouseDrag{X: x, Y: y, Duration: d})
}

// Down presses a button without releasing it.
func Down(btn core.Button) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.ButtonDown(btn)
}

// Up releases a previously pressed button.
func Up(btn core.Button) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.ButtonUp(btn)
}

// Scroll scrolls dx columns right and dy lines up, in wheel detents.
func Scroll(dx, dy int) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.Scroll(dx, dy)
}

func run(a action.Action) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return a.Execute(b)
}
