package action

import (
	"time"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// Interpolation runs at a fixed step rate so motion speed scales with the
// requested duration, not with the distance covered.
const stepsPerSecond = 60

// path is a bounded, restartable sequence of intermediate points between
// start and end. The final point is exactly end.
type path struct {
	start core.Point
	end   core.Point
	steps int
	i     int
}

func newPath(start, end core.Point, d time.Duration) *path {
	steps := int(d.Seconds() * stepsPerSecond)
	if steps < 2 {
		steps = 2
	}
	return &path{start: start, end: end, steps: steps}
}

func (p *path) next() (core.Point, bool) {
	if p.i >= p.steps {
		return core.Point{}, false
	}
	p.i++
	if p.i == p.steps {
		return p.end, true
	}
	t := float64(p.i) / float64(p.steps)
	return core.Point{
		X: p.start.X + int(t*float64(p.end.X-p.start.X)),
		Y: p.start.Y + int(t*float64(p.end.Y-p.start.Y)),
	}, true
}

func (p *path) reset() { p.i = 0 }

// glideTo moves the pointer to target. Zero duration is a single
// position-set call; otherwise the move interpolates linearly, sleeping a
// fixed interval between steps so the whole glide takes roughly d.
func glideTo(b core.Backend, target core.Point, d time.Duration) error {
	if d <= 0 {
		return b.MoveTo(target)
	}
	start, err := b.Position()
	if err != nil {
		return err
	}
	p := newPath(start, target, d)
	interval := d / time.Duration(p.steps)
	for {
		pt, ok := p.next()
		if !ok {
			return nil
		}
		if err := b.MoveTo(pt); err != nil {
			return err
		}
		time.Sleep(interval)
	}
}
