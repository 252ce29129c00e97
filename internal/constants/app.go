// Package constants holds the compiled-in identifiers shared by the
// instance guard, the window host and the peer activation path.
package constants

// Single-instance arbitration
const (
	// InstanceMutexName names the session-scoped lock. The "Local\" prefix
	// keeps it inside the current logon session on Windows; file-backed
	// backends strip it.
	InstanceMutexName = `Local\CyreneMusicInstanceMutex`

	// WindowClassName is the class the primary window registers under.
	// A second launch finds the running instance's window by this class.
	WindowClassName = "FLUTTER_RUNNER_WIN32_WINDOW"
)

// Shell identity
const (
	// AppUserModelID groups taskbar buttons and lets the system media
	// transport controls associate with this process.
	// Format: Company.Product.SubProduct.Version
	AppUserModelID = "CyreneMusic.MusicPlayer.Desktop.1"

	// AppName is used for per-user directories (logs, config).
	AppName = "cyrene-music"
)

// Primary window geometry
const (
	WindowTitle   = "cyrene_music"
	WindowOriginX = 10
	WindowOriginY = 10
	WindowWidth   = 1280
	WindowHeight  = 720
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)
