package window_test

import (
	"testing"

	"github.com/cyrenemusic/cyrene-runner/internal/constants"
	"github.com/cyrenemusic/cyrene-runner/internal/platform/fake"
	"github.com/cyrenemusic/cyrene-runner/internal/window"
)

const class = constants.WindowClassName

func TestActivateStates(t *testing.T) {
	tests := []struct {
		name         string
		visible      bool
		iconic       bool
		wantShown    bool
		wantRestored bool
	}{
		{"visible normal", true, false, false, false},
		{"hidden to tray", false, false, true, false},
		{"minimized", true, true, false, true},
		{"hidden and minimized", false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := fake.NewParts()
			h := parts.Registry.Add(class, tt.visible, tt.iconic)

			got := window.Activate(parts.Registry, class)

			want := window.Activation{
				Found:    true,
				Shown:    tt.wantShown,
				Restored: tt.wantRestored,
				Focused:  true,
			}
			if got != want {
				t.Errorf("Activate() = %+v, want %+v", got, want)
			}

			state := parts.Registry.Get(h)
			if !state.Visible || state.Iconic || !state.Foreground {
				t.Errorf("window after activation = %+v, want visible, not iconic, foreground", state)
			}
		})
	}
}

func TestActivateNoWindow(t *testing.T) {
	parts := fake.NewParts()
	parts.Registry.Add("SomeOtherClass", false, true)

	got := window.Activate(parts.Registry, class)
	if got != (window.Activation{}) {
		t.Errorf("Activate() = %+v, want zero", got)
	}
	if parts.Journal.Count("window.show") != 0 || parts.Journal.Count("window.foreground") != 0 {
		t.Errorf("unexpected requests on miss: %v", parts.Journal.Events)
	}
}

func TestActivateStaleHandle(t *testing.T) {
	parts := fake.NewParts()
	parts.Registry.Add(class, false, true)
	parts.Registry.ExitOnFind = true

	got := window.Activate(parts.Registry, class)
	if !got.Found {
		t.Fatal("lookup should have found the window before it exited")
	}
	if got.Shown || got.Restored || got.Focused {
		t.Errorf("stale window should make every step a no-op, got %+v", got)
	}
}

func TestNilRef(t *testing.T) {
	var r *window.Ref

	if r.Handle() != 0 || r.Alive() || r.Visible() || r.Iconic() {
		t.Error("nil Ref should report zero state")
	}
	if r.Show() || r.Restore() || r.Focus() {
		t.Error("nil Ref requests should be no-ops")
	}
}

func TestLookup(t *testing.T) {
	parts := fake.NewParts()
	if window.Lookup(parts.Registry, class) != nil {
		t.Fatal("Lookup on empty registry should be nil")
	}
	if window.Lookup(nil, class) != nil {
		t.Fatal("Lookup on nil registry should be nil")
	}

	h := parts.Registry.Add(class, true, false)
	ref := window.Lookup(parts.Registry, class)
	if ref == nil || ref.Handle() != h {
		t.Fatalf("Lookup() = %v, want handle %d", ref, h)
	}

	parts.Registry.Exit(h)
	if ref.Alive() || ref.Focus() {
		t.Error("Ref to exited window should be dead and inert")
	}
}

func TestNoRegistryAlwaysMisses(t *testing.T) {
	if testingOnWindows {
		t.Skip("user32 registry is live on Windows")
	}
	if got := window.Activate(window.NewRegistry(), class); got.Found {
		t.Errorf("Activate() on platform without a registry = %+v", got)
	}
}
