package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// X11 core buttons: 1 left, 2 middle, 3 right; 4-7 are the scroll wheel.
var buttonDetail = map[core.Button]byte{
	core.ButtonLeft:   1,
	core.ButtonMiddle: 2,
	core.ButtonRight:  3,
}

func (b *Backend) Position() (core.Point, error) {
	reply, err := xproto.QueryPointer(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return core.Point{}, core.E(core.KindPlatformError, "pointer.position", err)
	}
	return core.Point{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

func (b *Backend) MoveTo(p core.Point) error {
	return b.fakeInput("pointer.move_to", xproto.MotionNotify, 0, int16(p.X), int16(p.Y))
}

func (b *Backend) ButtonDown(btn core.Button) error {
	detail, ok := buttonDetail[btn]
	if !ok {
		return core.Errorf(core.KindUnsupportedInput, "pointer.button_down", "unknown button %q", btn)
	}
	return b.fakeInput("pointer.button_down", xproto.ButtonPress, detail, 0, 0)
}

func (b *Backend) ButtonUp(btn core.Button) error {
	detail, ok := buttonDetail[btn]
	if !ok {
		return core.Errorf(core.KindUnsupportedInput, "pointer.button_up", "unknown button %q", btn)
	}
	return b.fakeInput("pointer.button_up", xproto.ButtonRelease, detail, 0, 0)
}

// Scroll emits one press+release pair per wheel detent: buttons 4/5 for
// up/down, 6/7 for left/right.
func (b *Backend) Scroll(dx, dy int) error {
	if err := b.scrollAxis("pointer.scroll", dy, 4, 5); err != nil {
		return err
	}
	return b.scrollAxis("pointer.scroll", dx, 7, 6)
}

func (b *Backend) scrollAxis(op string, amount int, posDetail, negDetail byte) error {
	detail := posDetail
	if amount < 0 {
		detail = negDetail
		amount = -amount
	}
	for i := 0; i < amount; i++ {
		if err := b.fakeInput(op, xproto.ButtonPress, detail, 0, 0); err != nil {
			return err
		}
		if err := b.fakeInput(op, xproto.ButtonRelease, detail, 0, 0); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) fakeInput(op string, typ int, detail byte, x, y int16) error {
	err := xtest.FakeInputChecked(b.xu.Conn(), byte(typ), detail, 0, b.root, x, y, 0).Check()
	if err != nil {
		return core.E(core.KindPlatformError, op, err)
	}
	return nil
}
