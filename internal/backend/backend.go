// Package backend resolves the platform backend for the current process.
// Selection happens once, at first use, based on the runtime OS and (on
// Linux) the detected session type; there is no re-selection at call time.
package backend

import (
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

// New returns the backend for the current platform.
func New(log *logger.Logger) (core.Backend, error) {
	if log == nil {
		log = logger.Nop()
	}
	return newPlatformBackend(log)
}
