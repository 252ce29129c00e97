package console

import (
	"errors"
	"testing"
)

type stubAttacher struct {
	parentErr   error
	debugger    bool
	allocErr    error
	allocCalled bool
}

func (s *stubAttacher) AttachParent() error { return s.parentErr }
func (s *stubAttacher) DebuggerPresent() bool { return s.debugger }
func (s *stubAttacher) Allocate() error {
	s.allocCalled = true
	return s.allocErr
}

func TestSetup(t *testing.T) {
	allocFailure := errors.New("alloc failed")

	tests := []struct {
		name          string
		stub          stubAttacher
		want          Result
		wantErr       bool
		wantAllocCall bool
	}{
		{
			name: "parent console attached",
			stub: stubAttacher{},
			want: Result{Attached: true},
		},
		{
			name: "no parent, no debugger",
			stub: stubAttacher{parentErr: ErrNoConsole},
			want: Result{},
		},
		{
			name:          "no parent, debugger allocates",
			stub:          stubAttacher{parentErr: ErrNoConsole, debugger: true},
			want:          Result{Attached: true, Allocated: true},
			wantAllocCall: true,
		},
		{
			name:          "allocation fails",
			stub:          stubAttacher{parentErr: ErrNoConsole, debugger: true, allocErr: allocFailure},
			want:          Result{},
			wantErr:       true,
			wantAllocCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := tt.stub
			got, err := Setup(&stub)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Setup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, allocFailure) {
				t.Errorf("Setup() error = %v, want wrapped alloc failure", err)
			}
			if got != tt.want {
				t.Errorf("Setup() = %+v, want %+v", got, tt.want)
			}
			if stub.allocCalled != tt.wantAllocCall {
				t.Errorf("Allocate called = %v, want %v", stub.allocCalled, tt.wantAllocCall)
			}
		})
	}
}
