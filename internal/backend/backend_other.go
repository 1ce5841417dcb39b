//go:build darwin || windows

package backend

import (
	"github.com/sdpkjc/guiguigui/internal/backend/robot"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

func newPlatformBackend(log *logger.Logger) (core.Backend, error) {
	return robot.New(log)
}
