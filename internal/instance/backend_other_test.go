//go:build !windows

package instance

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackendArbitration(t *testing.T) {
	dir := t.TempDir()
	g := NewGuard(NewFileBackend(dir), nil)

	first, primary := g.Acquire("AppInstance")
	if !primary {
		t.Fatal("first acquirer should be primary")
	}
	if _, err := os.Stat(filepath.Join(dir, "AppInstance.lock")); err != nil {
		t.Errorf("lock file not created: %v", err)
	}

	// flock is per open file description, so a second acquirer in the same
	// process contends exactly like a second process would.
	second, primary := g.Acquire("AppInstance")
	if primary {
		t.Fatal("second acquirer should not be primary")
	}
	second.Release()

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	third, primary := g.Acquire("AppInstance")
	if !primary {
		t.Error("acquirer after release should be primary")
	}
	third.Release()
}

func TestFileBackendProbe(t *testing.T) {
	g := NewGuard(NewFileBackend(t.TempDir()), nil)

	if held, err := g.Probe("AppInstance"); err != nil || held {
		t.Fatalf("Probe on free lock = %v, %v", held, err)
	}

	lock, _ := g.Acquire("AppInstance")
	defer lock.Release()

	if held, err := g.Probe("AppInstance"); err != nil || !held {
		t.Errorf("Probe on held lock = %v, %v", held, err)
	}
}

func TestFileBackendUnwritableDir(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail.
	parent := t.TempDir()
	blocker := filepath.Join(parent, "blocker")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}

	b := NewFileBackend(filepath.Join(blocker, "locks"))
	if _, _, err := b.Create("AppInstance"); !errors.Is(err, ErrLockUnavailable) {
		t.Fatalf("Create error = %v, want ErrLockUnavailable", err)
	}

	lock, primary := NewGuard(b, nil).Acquire("AppInstance")
	if !primary || lock.Held() {
		t.Errorf("fail-safe acquire: primary=%v held=%v", primary, lock.Held())
	}
}
