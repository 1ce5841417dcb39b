// Package display is the high-level monitor query surface. Every call
// re-enumerates displays so hot-plugged monitors are always visible.
package display

import (
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/geometry"
	"github.com/sdpkjc/guiguigui/pkg/global"
)

// List returns all displays.
func List() ([]core.Display, error) {
	b, err := global.Backend()
	if err != nil {
		return nil, err
	}
	return b.Displays()
}

// Primary returns the primary display.
func Primary() (core.Display, error) {
	b, err := global.Backend()
	if err != nil {
		return core.Display{}, err
	}
	return b.PrimaryDisplay()
}

// At returns the display at the given enumeration index.
func At(index int) (core.Display, error) {
	displays, err := List()
	if err != nil {
		return core.Display{}, err
	}
	if index < 0 || index >= len(displays) {
		return core.Display{}, core.Errorf(core.KindInvalidArgument, "display.at", "index %d out of range (%d displays)", index, len(displays))
	}
	return displays[index], nil
}

// AtPoint returns the display containing p, if any.
func AtPoint(p core.Point) (core.Display, bool, error) {
	displays, err := List()
	if err != nil {
		return core.Display{}, false, err
	}
	d, ok := geometry.DisplayAt(displays, p)
	return d, ok, nil
}

// VirtualScreenRect returns the bounding union of all display bounds,
// recomputed from a fresh enumeration on every call.
func VirtualScreenRect() (core.Rect, error) {
	displays, err := List()
	if err != nil {
		return core.Rect{}, err
	}
	return geometry.VirtualScreen(displays), nil
}
