package core

import (
	"errors"
	"fmt"
)

// Kind classifies backend and engine failures. Callers branch on Kind
// because the retry story differs: a permission failure needs out-of-band
// user action, a platform failure is sometimes transient.
type Kind uint8

const (
	// KindPermissionDenied means the platform refused a privileged
	// operation (macOS accessibility consent, Wayland injection limits).
	KindPermissionDenied Kind = iota + 1
	// KindPlatformError means a native call failed.
	KindPlatformError
	// KindUnsupportedInput means a key, character, or operation has no
	// mapping on the active layout or platform.
	KindUnsupportedInput
	// KindInvalidArgument means construction-time misuse, such as a
	// negative duration or an empty hotkey set.
	KindInvalidArgument
	// KindAlreadyRunning rejects a second concurrent macro run.
	KindAlreadyRunning
	// KindNotRunning rejects cancel/reset on a macro that is not running.
	KindNotRunning
)

func (k Kind) String() string {
	switch k {
	case KindPermissionDenied:
		return "permission denied"
	case KindPlatformError:
		return "platform error"
	case KindUnsupportedInput:
		return "unsupported input"
	case KindInvalidArgument:
		return "invalid argument"
	case KindAlreadyRunning:
		return "already running"
	case KindNotRunning:
		return "not running"
	}
	return "unknown error"
}

// Error is the module-wide error type. Op names the failing operation
// ("pointer.move_to", "macro.run"); Err holds the underlying cause, if any.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, &Error{Kind: k}) match on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// E builds an *Error. err may be nil.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds an *Error from a formatted message.
func Errorf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether err or anything it wraps is an *Error of kind k.
// Actions and the macro engine wrap backend errors with %w and never
// reclassify, so the original kind stays visible here.
func IsKind(err error, k Kind) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Kind == k {
			return true
		}
		err = e.Err
		if err == nil {
			return false
		}
	}
	return false
}
