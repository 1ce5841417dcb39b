// Package global holds the process-wide singletons: the logger and the
// active backend. The backend is resolved lazily on first use, memoized
// for the process lifetime, and never swapped while macros run; the reset
// hook exists for tests only.
package global

import (
	"sync"

	"github.com/sdpkjc/guiguigui/internal/backend"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/logger"
)

var (
	mu       sync.RWMutex
	log      = logger.Nop()
	be       core.Backend
	beErr    error
	resolved bool
)

// SetLogger installs the process logger. Call before first backend use;
// the default discards everything.
func SetLogger(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l != nil {
		log = l
	}
}

// Logger returns the process logger.
func Logger() *logger.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Backend returns the active backend, resolving it from the runtime
// platform on first call. Resolution failure is memoized too: a host with
// no usable display server fails the same way on every call.
func Backend() (core.Backend, error) {
	mu.RLock()
	if resolved {
		defer mu.RUnlock()
		return be, beErr
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if !resolved {
		be, beErr = backend.New(log)
		resolved = true
		if beErr == nil {
			log.Info("Backend resolved", "backend", be.Name())
		} else {
			log.Error("Backend resolution failed", beErr)
		}
	}
	return be, beErr
}

// SetBackend installs a specific backend, bypassing platform resolution.
// Test-only capability; not part of normal operation.
func SetBackend(b core.Backend) {
	mu.Lock()
	defer mu.Unlock()
	be = b
	beErr = nil
	resolved = true
}

// ResetBackend clears the memoized backend so the next Backend call
// re-resolves. Test-only capability.
func ResetBackend() {
	mu.Lock()
	defer mu.Unlock()
	be = nil
	beErr = nil
	resolved = false
}
