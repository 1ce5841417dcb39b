// Package geometry holds the pure coordinate math shared by every backend.
// It is the only place logical (DPI-scaled) and physical (raw pixel)
// coordinates are converted; everything crossing the backend boundary is
// already physical.
package geometry

import (
	"math"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// LogicalPoint is a position in DPI-scaled coordinates. It is a distinct
// type from core.Point so a logical value cannot reach a backend without
// going through ToPhysical.
type LogicalPoint struct {
	X float64
	Y float64
}

// ToPhysical converts a logical point to physical pixels on the given
// display. Conversion is display-specific: scaling happens relative to the
// display origin, which is already physical.
func ToPhysical(p LogicalPoint, d core.Display) core.Point {
	scale := d.Scale
	if scale <= 0 {
		scale = 1
	}
	return core.Point{
		X: d.Bounds.X + int(math.Round(p.X*scale)),
		Y: d.Bounds.Y + int(math.Round(p.Y*scale)),
	}
}

// ToLogical converts a physical point to logical coordinates on the given
// display.
func ToLogical(p core.Point, d core.Display) LogicalPoint {
	scale := d.Scale
	if scale <= 0 {
		scale = 1
	}
	return LogicalPoint{
		X: float64(p.X-d.Bounds.X) / scale,
		Y: float64(p.Y-d.Bounds.Y) / scale,
	}
}

// Union returns the bounding rectangle of rects. The union of zero rects
// is the degenerate empty Rect, not an error.
func Union(rects []core.Rect) core.Rect {
	if len(rects) == 0 {
		return core.Rect{}
	}
	minX, minY := rects[0].X, rects[0].Y
	maxX := rects[0].X + rects[0].Width
	maxY := rects[0].Y + rects[0].Height
	for _, r := range rects[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.X+r.Width > maxX {
			maxX = r.X + r.Width
		}
		if r.Y+r.Height > maxY {
			maxY = r.Y + r.Height
		}
	}
	return core.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// VirtualScreen returns the bounding union of all display bounds. It is
// recomputed from the given displays on every call; callers must pass a
// fresh enumeration.
func VirtualScreen(displays []core.Display) core.Rect {
	rects := make([]core.Rect, len(displays))
	for i, d := range displays {
		rects[i] = d.Bounds
	}
	return Union(rects)
}

// Clamp constrains p to lie inside r. A point outside all displays is not
// an error anywhere in this module; clamping only happens when a caller
// asks for it.
func Clamp(p core.Point, r core.Rect) core.Point {
	if r.Empty() {
		return p
	}
	if p.X < r.X {
		p.X = r.X
	} else if p.X > r.X+r.Width-1 {
		p.X = r.X + r.Width - 1
	}
	if p.Y < r.Y {
		p.Y = r.Y
	} else if p.Y > r.Y+r.Height-1 {
		p.Y = r.Y + r.Height - 1
	}
	return p
}

// DisplayAt returns the first display whose bounds contain p, and whether
// one was found.
func DisplayAt(displays []core.Display, p core.Point) (core.Display, bool) {
	for _, d := range displays {
		if d.Bounds.Contains(p) {
			return d, true
		}
	}
	return core.Display{}, false
}
