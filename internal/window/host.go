package window

import (
	"errors"
)

// ErrCreateFailed is returned when the primary window cannot be created.
var ErrCreateFailed = errors.New("window creation failed")

// Point is a window origin in screen coordinates.
type Point struct {
	X, Y int
}

// Size is a window size.
type Size struct {
	Width, Height int
}

// Decorations are handle-dependent window settings applied after the
// native window exists.
type Decorations struct {
	// CustomFrame removes the native title bar so the content draws its own.
	CustomFrame bool
	// HideOnStartup keeps the window hidden until something shows it
	// (the content, or a peer activation).
	HideOnStartup bool
}

// MainWindow is the primary application window.
type MainWindow interface {
	// Handle returns the native handle, 0 if the window has none yet.
	Handle() Handle
	// SetQuitOnClose makes closing the window end the event loop.
	SetQuitOnClose(quit bool)
	// Decorate applies d. It requires a live handle.
	Decorate(d Decorations) error
}

// Host creates windows and runs the native event loop.
type Host interface {
	Create(title string, origin Point, size Size) (MainWindow, error)
	// Run dispatches messages until a quit message is observed.
	Run() error
}

// HostOptions configures a platform host.
type HostOptions struct {
	// Class is the window class name the primary window registers under.
	Class string
	// AppID identifies the application to the windowing toolkit.
	AppID string
}
