// Package instance arbitrates which launched process becomes the single
// primary instance within the current session.
//
// The arbitration signal is an OS-managed named lock. The first process to
// create it is primary; every later creator sees that it already existed.
// The lock is tied to the holder's lifetime, so a crashed primary never
// leaves it held.
//
// Usage:
//
//	guard := instance.NewGuard(instance.NewBackend(), logger)
//	lock, primary := guard.Acquire(constants.InstanceMutexName)
//	defer lock.Release()
//	if !primary {
//	    // activate the running instance and exit
//	}
package instance

import (
	"errors"

	"github.com/cyrenemusic/cyrene-runner/internal/logging"
)

// ErrLockUnavailable is returned by a Backend when the lock could not be
// created at all (as opposed to already existing).
var ErrLockUnavailable = errors.New("instance lock unavailable")

// Handle is an open reference to a named lock.
type Handle interface {
	Close() error
}

// Backend creates named locks.
type Backend interface {
	// Create registers the named lock. existed reports that a holder
	// already had it, in which case the returned handle does not own it.
	Create(name string) (h Handle, existed bool, err error)
}

// Lock is a scoped acquisition of a named lock. It is released on every
// exit path through Release, although the OS reclaims it at process exit
// regardless.
type Lock struct {
	name     string
	handle   Handle
	primary  bool
	released bool
}

// Name returns the lock name.
func (l *Lock) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Primary reports whether this process won arbitration.
func (l *Lock) Primary() bool {
	return l != nil && l.primary
}

// Held reports whether an OS handle is still owned. A fail-safe primary
// (lock creation failed) is primary without holding anything.
func (l *Lock) Held() bool {
	return l != nil && l.handle != nil && !l.released
}

// Release closes the handle. Safe to call more than once and on nil.
func (l *Lock) Release() error {
	if l == nil || l.released {
		return nil
	}
	l.released = true
	if l.handle == nil {
		return nil
	}
	return l.handle.Close()
}

// Guard acquires named locks through a Backend.
type Guard struct {
	backend Backend
	logger  *logging.Logger
}

// NewGuard creates a guard over backend.
func NewGuard(backend Backend, logger *logging.Logger) *Guard {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Guard{backend: backend, logger: logger}
}

// Acquire attempts to become the holder of name.
//
// It returns primary=true iff no prior holder existed. If the lock cannot
// be created at all, the process is treated as primary rather than
// refusing to start.
func (g *Guard) Acquire(name string) (*Lock, bool) {
	h, existed, err := g.backend.Create(name)
	if err != nil {
		if h != nil {
			h.Close()
		}
		g.logger.Warn().Err(err).Str("lock", name).
			Msg("Instance lock could not be created, continuing as primary")
		return &Lock{name: name, primary: true}, true
	}

	if existed {
		// We do not own it; keeping the handle would only extend the
		// lock's lifetime past the real holder.
		if h != nil {
			if cerr := h.Close(); cerr != nil {
				g.logger.Debug().Err(cerr).Msg("Failed to close non-owning lock handle")
			}
		}
		g.logger.Debug().Str("lock", name).Msg("Instance lock already held by another process")
		return &Lock{name: name, primary: false, released: true}, false
	}

	g.logger.Debug().Str("lock", name).Msg("Instance lock acquired")
	return &Lock{name: name, handle: h, primary: true}, true
}

// Prober is implemented by backends that can check for a holder without
// creating the lock.
type Prober interface {
	Probe(name string) (held bool, err error)
}

// Probe reports whether another process currently holds name.
//
// Backends implementing Prober are asked directly and the lock is never
// taken. Otherwise the lock is created and closed again at once, so a
// launch racing with Probe may briefly see it as held.
func (g *Guard) Probe(name string) (bool, error) {
	if p, ok := g.backend.(Prober); ok {
		return p.Probe(name)
	}

	h, existed, err := g.backend.Create(name)
	if h != nil {
		defer h.Close()
	}
	if err != nil {
		return false, err
	}
	return existed, nil
}
