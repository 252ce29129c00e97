//go:build !windows

package console

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ttyAttacher covers platforms where a child inherits its parent's
// terminal. Attaching succeeds iff stderr already is one; a new terminal
// cannot be allocated.
type ttyAttacher struct {
	statusPath string
}

// NewAttacher returns the inherited-terminal attacher.
func NewAttacher() Attacher {
	return ttyAttacher{statusPath: "/proc/self/status"}
}

func (ttyAttacher) AttachParent() error {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return ErrNoConsole
}

// DebuggerPresent reads TracerPid from procfs. It reports false where
// procfs is unavailable.
func (a ttyAttacher) DebuggerPresent() bool {
	f, err := os.Open(a.statusPath)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "TracerPid:")))
		return err == nil && pid != 0
	}
	return false
}

func (ttyAttacher) Allocate() error {
	return ErrNoConsole
}
