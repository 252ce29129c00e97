//go:build windows

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procAttachConsole     = kernel32.NewProc("AttachConsole")
	procAllocConsole      = kernel32.NewProc("AllocConsole")
	procIsDebuggerPresent = kernel32.NewProc("IsDebuggerPresent")
)

// attachParentProcess is ATTACH_PARENT_PROCESS ((DWORD)-1).
const attachParentProcess = ^uint32(0)

type win32Attacher struct{}

// NewAttacher returns the kernel32-backed attacher.
func NewAttacher() Attacher {
	return win32Attacher{}
}

func (win32Attacher) AttachParent() error {
	ret, _, err := procAttachConsole.Call(uintptr(attachParentProcess))
	if ret == 0 {
		return fmt.Errorf("%w: AttachConsole: %v", ErrNoConsole, err)
	}
	return rebindStdio()
}

func (win32Attacher) DebuggerPresent() bool {
	ret, _, _ := procIsDebuggerPresent.Call()
	return ret != 0
}

func (win32Attacher) Allocate() error {
	ret, _, err := procAllocConsole.Call()
	if ret == 0 {
		return fmt.Errorf("%w: AllocConsole: %v", ErrNoConsole, err)
	}
	return rebindStdio()
}

// rebindStdio points the process's stdout/stderr at the console screen
// buffer, both at the Win32 level and for os.Stdout/os.Stderr.
func rebindStdio() error {
	name, err := windows.UTF16PtrFromString("CONOUT$")
	if err != nil {
		return err
	}
	h, err := windows.CreateFile(
		name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return fmt.Errorf("open CONOUT$: %w", err)
	}

	if err := windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, h); err != nil {
		return fmt.Errorf("SetStdHandle(stdout): %w", err)
	}
	if err := windows.SetStdHandle(windows.STD_ERROR_HANDLE, h); err != nil {
		return fmt.Errorf("SetStdHandle(stderr): %w", err)
	}

	out := os.NewFile(uintptr(h), "CONOUT$")
	os.Stdout = out
	os.Stderr = out
	return nil
}
