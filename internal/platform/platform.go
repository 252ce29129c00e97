// Package platform bundles the OS collaborators the startup sequence
// depends on, so the sequence itself stays platform independent and can
// be exercised against fakes.
package platform

import (
	"github.com/cyrenemusic/cyrene-runner/internal/com"
	"github.com/cyrenemusic/cyrene-runner/internal/console"
	"github.com/cyrenemusic/cyrene-runner/internal/constants"
	"github.com/cyrenemusic/cyrene-runner/internal/instance"
	"github.com/cyrenemusic/cyrene-runner/internal/render"
	"github.com/cyrenemusic/cyrene-runner/internal/shell"
	"github.com/cyrenemusic/cyrene-runner/internal/window"
)

// Platform is the set of OS collaborators.
type Platform struct {
	Locks   instance.Backend
	Windows window.Registry
	Console console.Attacher
	COM     com.Initializer
	Shell   shell.Registrar
	Env     render.Setter
	Host    window.Host
}

// Default returns the collaborators for the running OS.
func Default() Platform {
	return Platform{
		Locks:   instance.NewBackend(),
		Windows: window.NewRegistry(),
		Console: console.NewAttacher(),
		COM:     com.NewInitializer(),
		Shell:   shell.NewRegistrar(),
		Env:     render.NewSetter(),
		Host: window.NewHost(window.HostOptions{
			Class: constants.WindowClassName,
			AppID: constants.AppUserModelID,
		}),
	}
}
