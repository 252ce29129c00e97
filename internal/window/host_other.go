//go:build !windows

package window

import (
	"fmt"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// fyneHost hosts the primary window with Fyne. Fyne does not expose the
// native handle before the window is shown, so windows are identified by
// a host-assigned id.
type fyneHost struct {
	appID  string
	app    fyne.App
	nextID Handle
}

// NewHost returns a Fyne-backed Host.
func NewHost(opts HostOptions) Host {
	return &fyneHost{appID: opts.AppID}
}

func (h *fyneHost) Create(title string, origin Point, size Size) (win MainWindow, err error) {
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return nil, fmt.Errorf("%w: no display detected (DISPLAY and WAYLAND_DISPLAY are not set)", ErrCreateFailed)
		}
	}

	// Driver initialization panics when no usable GL context exists.
	defer func() {
		if r := recover(); r != nil {
			win = nil
			err = fmt.Errorf("%w: %v", ErrCreateFailed, r)
		}
	}()

	if h.app == nil {
		h.app = app.NewWithID(h.appID)
	}

	w := h.app.NewWindow(title)
	// Fyne has no absolute positioning API; the origin is not applied.
	w.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))

	h.nextID++
	return &fyneWindow{w: w, id: h.nextID}, nil
}

func (h *fyneHost) Run() error {
	if h.app == nil {
		return fmt.Errorf("run: no window created")
	}
	h.app.Run()
	return nil
}

type fyneWindow struct {
	w  fyne.Window
	id Handle
}

func (w *fyneWindow) Handle() Handle {
	return w.id
}

func (w *fyneWindow) SetQuitOnClose(quit bool) {
	if quit {
		w.w.SetMaster()
	}
}

// Decorate shows the window unless HideOnStartup is set. Fyne draws the
// native frame itself, so CustomFrame has no effect here.
func (w *fyneWindow) Decorate(d Decorations) error {
	if w.w == nil {
		return fmt.Errorf("decorate: no window")
	}
	if !d.HideOnStartup {
		w.w.Show()
	}
	return nil
}
