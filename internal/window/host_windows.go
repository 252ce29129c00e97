//go:build windows

package window

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// win32Host owns a registered window class and pumps the calling thread's
// message queue. Create and Run must be called from the same locked OS
// thread.
type win32Host struct {
	class       string
	instance    windows.Handle
	wndProc     uintptr
	registered  bool
	quitOnClose map[Handle]bool
}

// NewHost returns a Host that creates plain Win32 windows of opts.Class.
func NewHost(opts HostOptions) Host {
	h := &win32Host{
		class:       opts.Class,
		quitOnClose: make(map[Handle]bool),
	}
	h.wndProc = windows.NewCallback(h.windowProc)
	return h
}

func (h *win32Host) windowProc(hwnd, message, wParam, lParam uintptr) uintptr {
	if message == wmDestroy && h.quitOnClose[Handle(hwnd)] {
		delete(h.quitOnClose, Handle(hwnd))
		postQuitMessage(0)
		return 0
	}
	return defWindowProc(hwnd, message, wParam, lParam)
}

func (h *win32Host) registerClass() error {
	if h.registered {
		return nil
	}

	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return fmt.Errorf("GetModuleHandleEx: %w", err)
	}
	h.instance = module

	classPtr, err := windows.UTF16PtrFromString(h.class)
	if err != nil {
		return fmt.Errorf("invalid class name %q: %w", h.class, err)
	}

	cursor, _, _ := procLoadCursorW.Call(0, uintptr(idcArrow))

	wc := wndClassEx{
		wndProc:    h.wndProc,
		instance:   module,
		cursor:     windows.Handle(cursor),
		background: windows.Handle(colorWindow + 1),
		className:  classPtr,
	}
	wc.size = uint32(unsafe.Sizeof(wc))

	atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 && !errors.Is(callErr, errClassAlreadyExists) {
		return fmt.Errorf("RegisterClassExW %q: %w", h.class, callErr)
	}
	h.registered = true
	return nil
}

func (h *win32Host) Create(title string, origin Point, size Size) (MainWindow, error) {
	if err := h.registerClass(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	classPtr, err := windows.UTF16PtrFromString(h.class)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid title: %v", ErrCreateFailed, err)
	}

	// Created without WS_VISIBLE; Decorate decides whether to show it.
	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(classPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(wsOverlappedWindow),
		uintptr(origin.X),
		uintptr(origin.Y),
		uintptr(size.Width),
		uintptr(size.Height),
		0,
		0,
		uintptr(h.instance),
		0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("%w: CreateWindowExW: %v", ErrCreateFailed, callErr)
	}

	return &win32Window{host: h, hwnd: Handle(hwnd)}, nil
}

func (h *win32Host) Run() error {
	var m msg
	for {
		ret, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			return fmt.Errorf("GetMessageW: %w", err)
		case 0:
			// WM_QUIT
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

type win32Window struct {
	host *win32Host
	hwnd Handle
}

func (w *win32Window) Handle() Handle {
	return w.hwnd
}

func (w *win32Window) SetQuitOnClose(quit bool) {
	if quit {
		w.host.quitOnClose[w.hwnd] = true
	} else {
		delete(w.host.quitOnClose, w.hwnd)
	}
}

func (w *win32Window) Decorate(d Decorations) error {
	if w.hwnd == 0 || !isWindow(w.hwnd) {
		return fmt.Errorf("decorate: no live window handle")
	}

	if d.CustomFrame {
		// Keep WS_THICKFRAME so the borderless window stays resizable.
		style := windowStyle(w.hwnd) &^ wsCaption
		if err := setWindowStyle(w.hwnd, style); err != nil {
			return fmt.Errorf("SetWindowLongW: %w", err)
		}
		procSetWindowPos.Call(uintptr(w.hwnd), 0, 0, 0, 0, 0,
			swpNoMove|swpNoSize|swpNoZOrder|swpNoActivate|swpFrameChanged)
	}

	if !d.HideOnStartup {
		showWindow(w.hwnd, CmdShowNormal)
		procUpdateWindow.Call(uintptr(w.hwnd))
	}
	return nil
}
