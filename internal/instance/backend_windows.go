//go:build windows

package instance

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// mutexBackend uses a Win32 named mutex. Names prefixed with "Local\" are
// scoped to the current logon session.
type mutexBackend struct{}

// NewBackend returns the named-mutex backend.
func NewBackend() Backend {
	return mutexBackend{}
}

type mutexHandle windows.Handle

func (h mutexHandle) Close() error {
	return windows.CloseHandle(windows.Handle(h))
}

func (mutexBackend) Create(name string) (Handle, bool, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, false, fmt.Errorf("%w: invalid name %q: %v", ErrLockUnavailable, name, err)
	}

	// CreateMutex returns a valid handle together with ERROR_ALREADY_EXISTS
	// when another process created the mutex first.
	h, err := windows.CreateMutex(nil, true, namePtr)
	if err != nil {
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) && h != 0 {
			return mutexHandle(h), true, nil
		}
		if h != 0 {
			windows.CloseHandle(h)
		}
		return nil, false, fmt.Errorf("%w: CreateMutex %q: %v", ErrLockUnavailable, name, err)
	}
	return mutexHandle(h), false, nil
}

// Probe opens the mutex without creating it. ERROR_FILE_NOT_FOUND means
// nobody holds it.
func (mutexBackend) Probe(name string) (bool, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return false, fmt.Errorf("%w: invalid name %q: %v", ErrLockUnavailable, name, err)
	}

	h, err := windows.OpenMutex(windows.SYNCHRONIZE, false, namePtr)
	if err != nil {
		if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
			return false, nil
		}
		return false, fmt.Errorf("%w: OpenMutex %q: %v", ErrLockUnavailable, name, err)
	}
	windows.CloseHandle(h)
	return true, nil
}
