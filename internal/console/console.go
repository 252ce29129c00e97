// Package console attaches the process to a diagnostic console.
//
// GUI-subsystem builds start without stdio. When launched from a terminal
// the runner attaches to the parent's console; when running under a
// debugger without one it allocates a fresh console. Both are best effort.
package console

import (
	"errors"
	"fmt"
)

// ErrNoConsole is returned when no console can be attached or allocated.
var ErrNoConsole = errors.New("no console available")

// Attacher exposes the OS console primitives.
type Attacher interface {
	// AttachParent attaches to the console of the parent process and
	// rebinds stdout/stderr to it.
	AttachParent() error
	// DebuggerPresent reports whether a debugger is attached.
	DebuggerPresent() bool
	// Allocate creates a new console and rebinds stdout/stderr to it.
	Allocate() error
}

// Result describes what Setup did.
type Result struct {
	Attached  bool
	Allocated bool
}

// Setup attaches to the parent console, or allocates one when running
// under a debugger. Not having a console is normal for a GUI launch and
// is not an error.
func Setup(a Attacher) (Result, error) {
	parentErr := a.AttachParent()
	if parentErr == nil {
		return Result{Attached: true}, nil
	}

	if !a.DebuggerPresent() {
		return Result{}, nil
	}

	if err := a.Allocate(); err != nil {
		return Result{}, fmt.Errorf("allocate console (attach parent: %v): %w", parentErr, err)
	}
	return Result{Attached: true, Allocated: true}, nil
}
