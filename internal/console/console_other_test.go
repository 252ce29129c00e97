//go:build !windows

package console

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDebuggerPresentFromStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"not traced", "Name:\tcyrene\nTracerPid:\t0\n", false},
		{"traced", "Name:\tcyrene\nTracerPid:\t4242\n", true},
		{"missing field", "Name:\tcyrene\n", false},
		{"garbage", "TracerPid:\tabc\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "status")
			if err := os.WriteFile(path, []byte(tt.status), 0600); err != nil {
				t.Fatal(err)
			}
			a := ttyAttacher{statusPath: path}
			if got := a.DebuggerPresent(); got != tt.want {
				t.Errorf("DebuggerPresent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebuggerPresentNoProcfs(t *testing.T) {
	a := ttyAttacher{statusPath: filepath.Join(t.TempDir(), "missing")}
	if a.DebuggerPresent() {
		t.Error("DebuggerPresent() should be false without procfs")
	}
}

func TestAllocateUnsupported(t *testing.T) {
	if err := NewAttacher().Allocate(); !errors.Is(err, ErrNoConsole) {
		t.Errorf("Allocate() = %v, want ErrNoConsole", err)
	}
}
