//go:build !windows

package instance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/cyrenemusic/cyrene-runner/internal/config"
)

// fileBackend uses an advisory flock on a file in the session runtime
// directory. The kernel drops the lock when the holder exits or crashes.
type fileBackend struct {
	dir string
}

// NewBackend returns the flock backend rooted in the session runtime dir.
func NewBackend() Backend {
	return NewFileBackend(config.RuntimeDirectory())
}

// NewFileBackend returns a flock backend storing lock files in dir.
func NewFileBackend(dir string) Backend {
	return &fileBackend{dir: dir}
}

type fileHandle struct {
	fl *flock.Flock
}

func (h *fileHandle) Close() error {
	return h.fl.Unlock()
}

func (b *fileBackend) Create(name string) (Handle, bool, error) {
	if err := os.MkdirAll(b.dir, 0700); err != nil {
		return nil, false, fmt.Errorf("%w: create lock dir %s: %v", ErrLockUnavailable, b.dir, err)
	}

	path := filepath.Join(b.dir, LockFileName(name))
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("%w: lock %s: %v", ErrLockUnavailable, path, err)
	}
	if !locked {
		return &fileHandle{fl: fl}, true, nil
	}
	return &fileHandle{fl: fl}, false, nil
}
