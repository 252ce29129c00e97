package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cyrenemusic/cyrene-runner/internal/config"
	"github.com/cyrenemusic/cyrene-runner/internal/constants"
	"github.com/cyrenemusic/cyrene-runner/internal/platform"
	"github.com/cyrenemusic/cyrene-runner/internal/platform/fake"
	"github.com/cyrenemusic/cyrene-runner/internal/window"
)

// withFakePlatform routes the commands to parts for the duration of the test.
func withFakePlatform(t *testing.T, parts *fake.Parts) {
	t.Helper()
	orig := newPlatform
	newPlatform = func() platform.Platform { return parts.Platform() }
	t.Cleanup(func() { newPlatform = orig })
}

// writeConfig writes a config with file logging disabled and returns its
// path. extra is appended directly after the log block.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cyrene-runner.yaml")
	content := "log:\n  file: \"\"\n" + extra
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRunsPrimary(t *testing.T) {
	parts := fake.NewParts()
	withFakePlatform(t, parts)

	_, err := execute(t, "--config", writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if parts.Host.Runs != 1 {
		t.Errorf("event loop ran %d times, want 1", parts.Host.Runs)
	}
}

func TestRootWindowFailureExitCode(t *testing.T) {
	parts := fake.NewParts()
	parts.Host.CreateErr = window.ErrCreateFailed
	withFakePlatform(t, parts)

	_, err := execute(t, "--config", writeConfig(t, ""))
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Execute() error = %v, want *ExitError", err)
	}
	if exitErr.Code != constants.ExitFailure {
		t.Errorf("exit code = %d, want %d", exitErr.Code, constants.ExitFailure)
	}
}

func TestRootSecondaryExitsZero(t *testing.T) {
	parts := fake.NewParts()
	held, _, _ := parts.Locks.Create(constants.InstanceMutexName)
	defer held.Close()
	withFakePlatform(t, parts)

	if _, err := execute(t, "--config", writeConfig(t, "")); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if parts.Journal.Count("host.create") != 0 {
		t.Error("secondary launch created a window")
	}
}

func TestRootConfigDisablesSwitches(t *testing.T) {
	parts := fake.NewParts()
	withFakePlatform(t, parts)

	cfg := writeConfig(t, "render:\n  impeller: false\n")
	if _, err := execute(t, "--config", cfg); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if parts.Journal.Count("env.set") != 0 {
		t.Errorf("switches set despite render.impeller=false: %v", parts.Journal.Events)
	}
}

func TestRootInvalidConfigSecondaryActivatesPeer(t *testing.T) {
	parts := fake.NewParts()
	held, _, _ := parts.Locks.Create(constants.InstanceMutexName)
	defer held.Close()
	peer := parts.Registry.Add(constants.WindowClassName, false, true)
	withFakePlatform(t, parts)

	cfg := writeConfig(t, "  level: loud\n")
	if _, err := execute(t, "--config", cfg); err != nil {
		t.Fatalf("Execute() error = %v, want exit 0 for a secondary launch", err)
	}
	if parts.Journal.Count("window.find") == 0 {
		t.Errorf("peer window was not looked up: %v", parts.Journal.Events)
	}
	if !parts.Registry.Get(peer).Visible {
		t.Error("peer window was not shown")
	}
	if parts.Journal.Count("host.create") != 0 {
		t.Error("secondary launch created a window")
	}
}

func TestRootInvalidConfigPrimaryFails(t *testing.T) {
	parts := fake.NewParts()
	withFakePlatform(t, parts)

	cfg := writeConfig(t, "  level: loud\n")
	_, err := execute(t, "--config", cfg)
	if exitCode(err) != constants.ExitFailure {
		t.Errorf("exitCode() = %d, want %d", exitCode(err), constants.ExitFailure)
	}
	if parts.Journal.Count("lock.create") != 1 {
		t.Errorf("arbitration should run before configuration: %v", parts.Journal.Events)
	}
	if parts.Journal.Count("host.create") != 0 || parts.COM.Inits != 0 {
		t.Errorf("startup continued despite invalid config: %v", parts.Journal.Events)
	}
	if parts.Locks.Open(constants.InstanceMutexName) != 0 {
		t.Error("instance lock leaked after config failure")
	}
}

func TestRootSecondaryLeavesLogFileAlone(t *testing.T) {
	parts := fake.NewParts()
	held, _, _ := parts.Locks.Create(constants.InstanceMutexName)
	defer held.Close()
	withFakePlatform(t, parts)

	logPath := filepath.Join(t.TempDir(), "logs", "runner.log")
	if _, err := execute(t, "--config", writeConfig(t, ""), "--log-file", logPath); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Dir(logPath)); !os.IsNotExist(err) {
		t.Errorf("secondary launch touched the log directory: %v", err)
	}
}

func TestRootLogFileFlag(t *testing.T) {
	parts := fake.NewParts()
	withFakePlatform(t, parts)

	logPath := filepath.Join(t.TempDir(), "logs", "runner.log")
	if _, err := execute(t, "--config", writeConfig(t, ""), "--log-file", logPath); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Dir(logPath)); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, constants.ExitSuccess},
		{"exit error", &ExitError{Code: 3}, 3},
		{"wrapped exit error", fmt.Errorf("run: %w", &ExitError{Code: 1}), 1},
		{"other", errors.New("boom"), constants.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDoctorReportsPrimary(t *testing.T) {
	parts := fake.NewParts()
	held, _, _ := parts.Locks.Create(constants.InstanceMutexName)
	defer held.Close()
	parts.Registry.Add(constants.WindowClassName, false, true)

	var out bytes.Buffer
	if err := runDoctor(&out, parts.Platform(), config.NewConfig()); err != nil {
		t.Fatalf("runDoctor() error = %v", err)
	}

	for _, want := range []string{
		"Primary running: yes",
		"Peer window: found (visible=false, minimized=true)",
		"FLUTTER_ENGINE_SWITCH_1=enable-impeller=true",
		constants.AppUserModelID,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("doctor output missing %q:\n%s", want, out.String())
		}
	}
	if parts.Locks.Open(constants.InstanceMutexName) != 1 {
		t.Error("doctor left a lock handle open")
	}
	if parts.Journal.Count("lock.create") != 1 {
		t.Errorf("doctor created the instance lock: %v", parts.Journal.Events)
	}
	if parts.Journal.Count("window.show") != 0 || parts.Journal.Count("window.foreground") != 0 {
		t.Error("doctor must not change the peer window")
	}
}

func TestDoctorNoPrimary(t *testing.T) {
	parts := fake.NewParts()
	cfg := config.NewConfig()
	cfg.Render.Impeller = false

	var out bytes.Buffer
	if err := runDoctor(&out, parts.Platform(), cfg); err != nil {
		t.Fatalf("runDoctor() error = %v", err)
	}
	for _, want := range []string{"Primary running: no", "Peer window: not found", "(none, engine default backend)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("doctor output missing %q:\n%s", want, out.String())
		}
	}
	if parts.Locks.Open(constants.InstanceMutexName) != 0 {
		t.Error("doctor kept the lock")
	}
	if parts.Journal.Count("lock.create") != 0 || parts.Journal.Count("lock.probe") != 1 {
		t.Errorf("doctor should probe without creating the lock: %v", parts.Journal.Events)
	}
}

func TestDoctorCommand(t *testing.T) {
	parts := fake.NewParts()
	withFakePlatform(t, parts)

	out, err := execute(t, "doctor", "--config", writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "END OF DIAGNOSTICS") {
		t.Errorf("unexpected doctor output:\n%s", out)
	}
	if parts.Host.Runs != 0 {
		t.Error("doctor started the application")
	}
}
