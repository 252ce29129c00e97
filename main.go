// Cyrene Music desktop runner.
//
// Arbitrates single-instance ownership for the session, then either hands
// focus to the running instance or starts the primary window and its
// event loop.
//
// Build with: go build -ldflags "-H windowsgui -X github.com/cyrenemusic/cyrene-runner/internal/version.Version=..."
package main

import (
	"os"
	"runtime"

	"github.com/cyrenemusic/cyrene-runner/internal/cli"
)

func init() {
	// The COM apartment, the window and its message queue all belong to
	// the thread that creates them, so main must stay on one OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(cli.Execute())
}
