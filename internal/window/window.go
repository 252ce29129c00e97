// Package window finds, activates and hosts top-level native windows.
//
// A Ref is a weak, non-owning reference to another process's window. The
// window may disappear at any moment, so every Ref method re-checks
// liveness and turns into a no-op on a nil or stale reference.
package window

// Handle identifies a native top-level window. Zero is "no window".
type Handle uintptr

// ShowCommand is a native show-state request (Win32 SW_* values).
type ShowCommand int32

const (
	CmdHide       ShowCommand = 0
	CmdShowNormal ShowCommand = 1
	CmdShow       ShowCommand = 5
	CmdRestore    ShowCommand = 9
)

// Registry is the OS window registry: lookup by class plus the handful
// of state queries and requests peer activation needs.
type Registry interface {
	// Find returns the first top-level window registered under class,
	// or 0 if there is none.
	Find(class string) Handle
	IsWindow(h Handle) bool
	IsVisible(h Handle) bool
	IsIconic(h Handle) bool
	Show(h Handle, cmd ShowCommand)
	SetForeground(h Handle) bool
}

// Ref is a possibly-stale reference to a window found in a Registry.
type Ref struct {
	h   Handle
	reg Registry
}

// Lookup finds the window registered under class. It returns nil when no
// such window exists.
func Lookup(reg Registry, class string) *Ref {
	if reg == nil {
		return nil
	}
	h := reg.Find(class)
	if h == 0 {
		return nil
	}
	return &Ref{h: h, reg: reg}
}

// Handle returns the raw handle, or 0 for a nil Ref.
func (r *Ref) Handle() Handle {
	if r == nil {
		return 0
	}
	return r.h
}

// Alive reports whether the referenced window still exists.
func (r *Ref) Alive() bool {
	return r != nil && r.h != 0 && r.reg.IsWindow(r.h)
}

// Visible reports whether the window exists and is visible.
func (r *Ref) Visible() bool {
	return r.Alive() && r.reg.IsVisible(r.h)
}

// Iconic reports whether the window exists and is minimized.
func (r *Ref) Iconic() bool {
	return r.Alive() && r.reg.IsIconic(r.h)
}

// Show requests the normal shown state. It returns false if the window
// is gone.
func (r *Ref) Show() bool {
	if !r.Alive() {
		return false
	}
	r.reg.Show(r.h, CmdShow)
	return true
}

// Restore requests restoration from the minimized state.
func (r *Ref) Restore() bool {
	if !r.Alive() {
		return false
	}
	r.reg.Show(r.h, CmdRestore)
	return true
}

// Focus brings the window to the foreground with input focus.
func (r *Ref) Focus() bool {
	if !r.Alive() {
		return false
	}
	return r.reg.SetForeground(r.h)
}

// Activation records which peer activation steps were carried out.
type Activation struct {
	Found    bool
	Shown    bool
	Restored bool
	Focused  bool
}

// Activate performs a one-shot, best-effort handoff to the window
// registered under class: show it if hidden, restore it if minimized,
// then bring it to the foreground. A missing or vanished window is not an
// error.
func Activate(reg Registry, class string) Activation {
	var a Activation

	ref := Lookup(reg, class)
	if ref == nil {
		return a
	}
	a.Found = true

	// Hidden, e.g. minimized to tray
	if !ref.Visible() {
		a.Shown = ref.Show()
	}
	if ref.Iconic() {
		a.Restored = ref.Restore()
	}
	a.Focused = ref.Focus()
	return a
}
