package platform

import "testing"

func TestDefaultIsComplete(t *testing.T) {
	p := Default()

	if p.Locks == nil {
		t.Error("Locks is nil")
	}
	if p.Windows == nil {
		t.Error("Windows is nil")
	}
	if p.Console == nil {
		t.Error("Console is nil")
	}
	if p.COM == nil {
		t.Error("COM is nil")
	}
	if p.Shell == nil {
		t.Error("Shell is nil")
	}
	if p.Env == nil {
		t.Error("Env is nil")
	}
	if p.Host == nil {
		t.Error("Host is nil")
	}
}
