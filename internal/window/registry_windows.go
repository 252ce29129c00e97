//go:build windows

package window

// win32Registry queries the session's top-level windows through user32.
type win32Registry struct{}

// NewRegistry returns the user32-backed window registry.
func NewRegistry() Registry {
	return win32Registry{}
}

func (win32Registry) Find(class string) Handle { return findWindow(class) }
func (win32Registry) IsWindow(h Handle) bool { return isWindow(h) }
func (win32Registry) IsVisible(h Handle) bool { return isWindowVisible(h) }
func (win32Registry) IsIconic(h Handle) bool { return isIconic(h) }
func (win32Registry) Show(h Handle, cmd ShowCommand) { showWindow(h, cmd) }
func (win32Registry) SetForeground(h Handle) bool { return setForegroundWindow(h) }
