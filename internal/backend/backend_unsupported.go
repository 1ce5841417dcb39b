//go:build !linux && !darwin && !windows

package backend

import (
	"runtime"

	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

func newPlatformBackend(*logger.Logger) (core.Backend, error) {
	return nil, core.Errorf(core.KindPlatformError, "backend.new", "platform %s is not supported", runtime.GOOS)
}
