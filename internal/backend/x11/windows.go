package x11

import (
	"strconv"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// Windows lists the window manager's client list, newest last. Handles
// are EWMH window IDs; titles and bounds are snapshots.
func (b *Backend) Windows() ([]core.WindowHandle, error) {
	clients, err := ewmh.ClientListGet(b.xu)
	if err != nil {
		return nil, core.E(core.KindPlatformError, "window.list", err)
	}
	handles := make([]core.WindowHandle, 0, len(clients))
	for _, win := range clients {
		handles = append(handles, b.handleFor(win))
	}
	return handles, nil
}

func (b *Backend) ActiveWindow() (core.WindowHandle, error) {
	win, err := ewmh.ActiveWindowGet(b.xu)
	if err != nil || win == 0 {
		return core.WindowHandle{}, core.Errorf(core.KindPlatformError, "window.active", "no active window: %v", err)
	}
	return b.handleFor(win), nil
}

func (b *Backend) FocusWindow(w core.WindowHandle) error {
	win, err := b.resolve(w, "window.focus")
	if err != nil {
		return err
	}
	if err := ewmh.ActiveWindowReq(b.xu, win); err != nil {
		return core.E(core.KindPlatformError, "window.focus", err)
	}
	return nil
}

func (b *Backend) MoveWindow(w core.WindowHandle, p core.Point) error {
	win, err := b.resolve(w, "window.move")
	if err != nil {
		return err
	}
	geom, err := xwindow.New(b.xu, win).DecorGeometry()
	if err != nil {
		return core.E(core.KindPlatformError, "window.move", err)
	}
	if err := ewmh.MoveresizeWindow(b.xu, win, p.X, p.Y, geom.Width(), geom.Height()); err != nil {
		return core.E(core.KindPlatformError, "window.move", err)
	}
	return nil
}

func (b *Backend) ResizeWindow(w core.WindowHandle, width, height int) error {
	win, err := b.resolve(w, "window.resize")
	if err != nil {
		return err
	}
	geom, err := xwindow.New(b.xu, win).DecorGeometry()
	if err != nil {
		return core.E(core.KindPlatformError, "window.resize", err)
	}
	if err := ewmh.MoveresizeWindow(b.xu, win, geom.X(), geom.Y(), width, height); err != nil {
		return core.E(core.KindPlatformError, "window.resize", err)
	}
	return nil
}

func (b *Backend) handleFor(win xproto.Window) core.WindowHandle {
	h := core.WindowHandle{ID: strconv.FormatUint(uint64(win), 10)}

	if title, err := ewmh.WmNameGet(b.xu, win); err == nil && title != "" {
		h.Title = title
	} else if title, err := icccm.WmNameGet(b.xu, win); err == nil {
		h.Title = title
	}
	if pid, err := ewmh.WmPidGet(b.xu, win); err == nil {
		h.PID = int(pid)
	}
	if class, err := icccm.WmClassGet(b.xu, win); err == nil && class != nil {
		h.App = class.Class
	}
	if geom, err := xwindow.New(b.xu, win).DecorGeometry(); err == nil {
		h.Bounds = core.Rect{X: geom.X(), Y: geom.Y(), Width: geom.Width(), Height: geom.Height()}
	}
	return h
}

func (b *Backend) resolve(w core.WindowHandle, op string) (xproto.Window, error) {
	id, err := strconv.ParseUint(w.ID, 10, 32)
	if err != nil {
		return 0, core.Errorf(core.KindInvalidArgument, op, "malformed window id %q", w.ID)
	}
	return xproto.Window(id), nil
}
