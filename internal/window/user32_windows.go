//go:build windows

package window

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procFindWindowW         = user32.NewProc("FindWindowW")
	procIsWindow            = user32.NewProc("IsWindow")
	procIsWindowVisible     = user32.NewProc("IsWindowVisible")
	procIsIconic            = user32.NewProc("IsIconic")
	procShowWindow          = user32.NewProc("ShowWindow")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procRegisterClassExW    = user32.NewProc("RegisterClassExW")
	procCreateWindowExW     = user32.NewProc("CreateWindowExW")
	procDefWindowProcW      = user32.NewProc("DefWindowProcW")
	procPostQuitMessage     = user32.NewProc("PostQuitMessage")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procLoadCursorW         = user32.NewProc("LoadCursorW")
	procUpdateWindow        = user32.NewProc("UpdateWindow")
	procSetWindowPos        = user32.NewProc("SetWindowPos")
	procGetWindowLongW      = user32.NewProc("GetWindowLongW")
	procSetWindowLongW      = user32.NewProc("SetWindowLongW")
)

// Win32 constants
const (
	wmDestroy = 0x0002

	wsOverlappedWindow = 0x00CF0000
	wsCaption          = 0x00C00000

	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020

	idcArrow    = 32512
	colorWindow = 5

	errClassAlreadyExists = windows.Errno(1410) // ERROR_CLASS_ALREADY_EXISTS
)

// GWL_STYLE is negative; a variable lets it sign-extend into uintptr.
var gwlStyle int32 = -16

type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

type point struct {
	x, y int32
}

type msg struct {
	hwnd     uintptr
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

func findWindow(class string) Handle {
	classPtr, err := windows.UTF16PtrFromString(class)
	if err != nil {
		return 0
	}
	hwnd, _, _ := procFindWindowW.Call(uintptr(unsafe.Pointer(classPtr)), 0)
	return Handle(hwnd)
}

func isWindow(h Handle) bool {
	ret, _, _ := procIsWindow.Call(uintptr(h))
	return ret != 0
}

func isWindowVisible(h Handle) bool {
	ret, _, _ := procIsWindowVisible.Call(uintptr(h))
	return ret != 0
}

func isIconic(h Handle) bool {
	ret, _, _ := procIsIconic.Call(uintptr(h))
	return ret != 0
}

// showWindow's return value is the previous visibility, not success.
func showWindow(h Handle, cmd ShowCommand) {
	procShowWindow.Call(uintptr(h), uintptr(cmd))
}

func setForegroundWindow(h Handle) bool {
	ret, _, _ := procSetForegroundWindow.Call(uintptr(h))
	return ret != 0
}

func defWindowProc(hwnd, message, wParam, lParam uintptr) uintptr {
	ret, _, _ := procDefWindowProcW.Call(hwnd, message, wParam, lParam)
	return ret
}

func postQuitMessage(code int32) {
	procPostQuitMessage.Call(uintptr(code))
}

// Only the low 32 bits of the style matter, so Get/SetWindowLongW work on
// both 32 and 64 bit builds.
func windowStyle(h Handle) uint32 {
	ret, _, _ := procGetWindowLongW.Call(uintptr(h), uintptr(gwlStyle))
	return uint32(ret)
}

func setWindowStyle(h Handle, style uint32) error {
	ret, _, err := procSetWindowLongW.Call(uintptr(h), uintptr(gwlStyle), uintptr(style))
	if ret == 0 && err != nil && err != windows.Errno(0) {
		return err
	}
	return nil
}
