//go:build linux

package backend

import (
	"os"

	"github.com/sdpkjc/guiguigui/internal/backend/hyprland"
	"github.com/sdpkjc/guiguigui/internal/backend/x11"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

// newPlatformBackend picks between X11 and Wayland. Wayland support is
// compositor-specific; Hyprland is detected by its instance signature.
// A Wayland session without a supported compositor falls back to X11,
// which works under XWayland for display and window queries.
func newPlatformBackend(log *logger.Logger) (core.Backend, error) {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	log.Debug("Detecting session type", "session", sessionType, "wayland_display", waylandDisplay)

	if sessionType == "wayland" || waylandDisplay != "" {
		if os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
			b, err := hyprland.New(log)
			if err == nil {
				return b, nil
			}
			log.Warn("Hyprland backend unavailable, trying X11", "error", err.Error())
		}
	}

	return x11.New(log)
}
