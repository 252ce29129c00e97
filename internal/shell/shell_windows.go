//go:build windows

package shell

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")

	procSetCurrentProcessExplicitAppUserModelID = shell32.NewProc("SetCurrentProcessExplicitAppUserModelID")
)

type win32Registrar struct{}

// NewRegistrar returns the shell32-backed registrar.
func NewRegistrar() Registrar {
	return win32Registrar{}
}

func (win32Registrar) SetAppUserModelID(id string) error {
	if err := ValidateAppUserModelID(id); err != nil {
		return err
	}
	if err := procSetCurrentProcessExplicitAppUserModelID.Find(); err != nil {
		return fmt.Errorf("SetCurrentProcessExplicitAppUserModelID unavailable: %w", err)
	}

	idPtr, err := windows.UTF16PtrFromString(id)
	if err != nil {
		return err
	}
	hr, _, _ := procSetCurrentProcessExplicitAppUserModelID.Call(uintptr(unsafe.Pointer(idPtr)))
	if hr != 0 {
		return fmt.Errorf("SetCurrentProcessExplicitAppUserModelID: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}
