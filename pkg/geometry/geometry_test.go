package geometry

import (
	"math"
	"testing"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

func TestLogicalPhysicalRoundTrip(t *testing.T) {
	displays := []core.Display{
		{ID: 0, Bounds: core.Rect{X: 0, Y: 0, Width: 3840, Height: 2160}, Scale: 2.0, Primary: true},
		{ID: 1, Bounds: core.Rect{X: 3840, Y: 0, Width: 1920, Height: 1080}, Scale: 1.0},
		{ID: 2, Bounds: core.Rect{X: -1920, Y: -300, Width: 1920, Height: 1200}, Scale: 1.25},
	}

	points := []core.Point{
		{X: 0, Y: 0},
		{X: 300, Y: 200},
		{X: 3839, Y: 2159},
		{X: 4000, Y: 500},
		{X: -100, Y: -100},
	}

	for _, p := range points {
		d, ok := DisplayAt(displays, p)
		if !ok {
			continue
		}
		back := ToPhysical(ToLogical(p, d), d)
		if dx := math.Abs(float64(back.X - p.X)); dx > 1 {
			t.Errorf("round trip X for %v on display %d: got %v", p, d.ID, back)
		}
		if dy := math.Abs(float64(back.Y - p.Y)); dy > 1 {
			t.Errorf("round trip Y for %v on display %d: got %v", p, d.ID, back)
		}
	}
}

func TestToLogicalScales(t *testing.T) {
	d := core.Display{Bounds: core.Rect{X: 0, Y: 0, Width: 3840, Height: 2160}, Scale: 2.0}
	lp := ToLogical(core.Point{X: 3840, Y: 2160}, d)
	if lp.X != 1920 || lp.Y != 1080 {
		t.Fatalf("expected (1920, 1080), got (%v, %v)", lp.X, lp.Y)
	}
}

func TestToPhysicalZeroScaleTreatedAsOne(t *testing.T) {
	d := core.Display{Bounds: core.Rect{X: 100, Y: 50, Width: 800, Height: 600}}
	p := ToPhysical(LogicalPoint{X: 10, Y: 20}, d)
	if p.X != 110 || p.Y != 70 {
		t.Fatalf("expected (110, 70), got %v", p)
	}
}

func TestUnionEmpty(t *testing.T) {
	u := Union(nil)
	if !u.Empty() {
		t.Fatalf("union of zero rects should be empty, got %+v", u)
	}
}

func TestUnionSingle(t *testing.T) {
	r := core.Rect{X: 10, Y: 20, Width: 300, Height: 400}
	if Union([]core.Rect{r}) != r {
		t.Fatalf("union of one rect should equal the rect")
	}
}

func TestUnionSpansNegativeOrigins(t *testing.T) {
	u := Union([]core.Rect{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: -1920, Y: -300, Width: 1920, Height: 1200},
	})
	want := core.Rect{X: -1920, Y: -300, Width: 3840, Height: 1380}
	if u != want {
		t.Fatalf("expected %+v, got %+v", want, u)
	}
}

func TestVirtualScreen(t *testing.T) {
	displays := []core.Display{
		{Bounds: core.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{Bounds: core.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
	}
	v := VirtualScreen(displays)
	want := core.Rect{X: 0, Y: 0, Width: 3840, Height: 1080}
	if v != want {
		t.Fatalf("expected %+v, got %+v", want, v)
	}
}

func TestClamp(t *testing.T) {
	r := core.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	cases := []struct {
		in   core.Point
		want core.Point
	}{
		{core.Point{X: 50, Y: 50}, core.Point{X: 50, Y: 50}},
		{core.Point{X: -10, Y: 50}, core.Point{X: 0, Y: 50}},
		{core.Point{X: 150, Y: 200}, core.Point{X: 99, Y: 99}},
	}
	for _, c := range cases {
		if got := Clamp(c.in, r); got != c.want {
			t.Errorf("Clamp(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestClampEmptyRectPassesThrough(t *testing.T) {
	p := core.Point{X: 42, Y: -7}
	if got := Clamp(p, core.Rect{}); got != p {
		t.Fatalf("expected pass-through for empty rect, got %v", got)
	}
}

func TestDisplayAtOutsideAllDisplays(t *testing.T) {
	displays := []core.Display{{Bounds: core.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}}
	if _, ok := DisplayAt(displays, core.Point{X: 5000, Y: 5000}); ok {
		t.Fatalf("point outside all displays should not match")
	}
}
