package core

// Capabilities reports which capability groups a backend supports. A group
// may be missing without the backend being unusable: a sandboxed Wayland
// session can query displays and windows but not inject input.
type Capabilities struct {
	Pointer   bool
	Keyboard  bool
	Display   bool
	Window    bool
	Clipboard bool
}

// Pointer controls the mouse cursor and buttons. All coordinates are
// physical pixels.
type Pointer interface {
	Position() (Point, error)
	MoveTo(Point) error
	ButtonDown(Button) error
	ButtonUp(Button) error
	// Scroll scrolls dx columns right and dy lines up (negative values
	// scroll left/down), in wheel detents.
	Scroll(dx, dy int) error
}

// Keyboard injects key events.
type Keyboard interface {
	KeyDown(Key) error
	KeyUp(Key) error
	// TypeText injects text using the platform's Unicode injection path,
	// independent of the active layout. Backends without such a path
	// return an UnsupportedInput error for text they cannot map.
	TypeText(string) error
}

// Displays enumerates monitors. Implementations query the platform on
// every call; results are never cached across calls.
type Displays interface {
	Displays() ([]Display, error)
	PrimaryDisplay() (Display, error)
}

// Windows queries and manipulates top-level windows.
type Windows interface {
	Windows() ([]WindowHandle, error)
	ActiveWindow() (WindowHandle, error)
	FocusWindow(WindowHandle) error
	MoveWindow(WindowHandle, Point) error
	ResizeWindow(w WindowHandle, width, height int) error
}

// Clipboard reads and writes the system clipboard. UTF-8 text is the only
// contractually supported content kind; Get transfers ownership of the
// returned bytes to the caller.
type Clipboard interface {
	ClipboardGet() ([]byte, error)
	ClipboardSet([]byte) error
	ClipboardClear() error
	ClipboardHasText() (bool, error)
}

// Backend is the capability contract every platform implements. Exactly
// one backend is active per process; it is selected at startup and never
// swapped while a macro holds it. The backend is not internally
// synchronized: at most one controlling context may mutate input state at
// a time, and serializing that is the caller's job.
type Backend interface {
	Name() string
	Capabilities() Capabilities
	Pointer
	Keyboard
	Displays
	Windows
	Clipboard
}
