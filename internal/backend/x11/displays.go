package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// Displays enumerates monitors via RandR on every call; topology is never
// cached because monitors hot-plug. X11 does not expose per-display DPI
// scaling, so Scale is always 1.0 and logical equals physical here.
func (b *Backend) Displays() ([]core.Display, error) {
	if err := randr.Init(b.xu.Conn()); err != nil {
		return b.fallbackDisplays()
	}

	resources, err := randr.GetScreenResources(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return nil, core.E(core.KindPlatformError, "display.list", err)
	}

	var primaryOutput randr.Output
	if reply, err := randr.GetOutputPrimary(b.xu.Conn(), b.root).Reply(); err == nil {
		primaryOutput = reply.Output
	}

	var displays []core.Display
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(b.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("display-%d", i)
		primary := false
		for _, out := range info.Outputs {
			if out == primaryOutput && primaryOutput != 0 {
				primary = true
			}
			if outInfo, err := randr.GetOutputInfo(b.xu.Conn(), out, resources.ConfigTimestamp).Reply(); err == nil {
				name = string(outInfo.Name)
				break
			}
		}

		displays = append(displays, core.Display{
			ID:   i,
			Name: name,
			Bounds: core.Rect{
				X: int(info.X), Y: int(info.Y),
				Width: int(info.Width), Height: int(info.Height),
			},
			Scale:   1.0,
			Primary: primary,
		})
	}

	if len(displays) == 0 {
		return b.fallbackDisplays()
	}
	if !hasPrimary(displays) {
		displays[0].Primary = true
	}
	return displays, nil
}

func (b *Backend) PrimaryDisplay() (core.Display, error) {
	displays, err := b.Displays()
	if err != nil {
		return core.Display{}, err
	}
	for _, d := range displays {
		if d.Primary {
			return d, nil
		}
	}
	return displays[0], nil
}

// fallbackDisplays reports the whole X screen as one display when RandR
// is unavailable (bare Xvfb, ancient servers).
func (b *Backend) fallbackDisplays() ([]core.Display, error) {
	screen := b.xu.Screen()
	return []core.Display{{
		ID:   0,
		Name: "screen-0",
		Bounds: core.Rect{
			Width:  int(screen.WidthInPixels),
			Height: int(screen.HeightInPixels),
		},
		Scale:   1.0,
		Primary: true,
	}}, nil
}

func hasPrimary(displays []core.Display) bool {
	for _, d := range displays {
		if d.Primary {
			return true
		}
	}
	return false
}
