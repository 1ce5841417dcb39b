// Package x11 implements the backend contract against an X11 display
// server: XTEST for event injection, RandR for display topology, EWMH for
// window control.
package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/sdpkjc/guiguigui/internal/backend/clip"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

// Backend holds one X11 connection for the process lifetime.
type Backend struct {
	xu   *xgbutil.XUtil
	root xproto.Window
	log  *logger.Logger

	clip.Board
}

// New connects to the X server and initializes the XTEST and keybind
// machinery. A missing or unreachable DISPLAY is a platform error.
func New(log *logger.Logger) (*Backend, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, core.E(core.KindPlatformError, "x11.connect", err)
	}
	if err := xtest.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, core.E(core.KindPlatformError, "x11.xtest_init", err)
	}
	keybind.Initialize(xu)

	log.Debug("X11 backend connected", "root", xu.RootWin())
	return &Backend{xu: xu, root: xu.RootWin(), log: log}, nil
}

func (b *Backend) Name() string { return "x11" }

// Capabilities: X11 has no permission model for synthetic input; every
// group is available once the connection is up.
func (b *Backend) Capabilities() core.Capabilities {
	return core.Capabilities{Pointer: true, Keyboard: true, Display: true, Window: true, Clipboard: true}
}

// Close disconnects from the X server.
func (b *Backend) Close() {
	b.xu.Conn().Close()
}

var _ core.Backend = (*Backend)(nil)
