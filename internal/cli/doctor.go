package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyrenemusic/cyrene-runner/internal/config"
	"github.com/cyrenemusic/cyrene-runner/internal/constants"
	"github.com/cyrenemusic/cyrene-runner/internal/instance"
	"github.com/cyrenemusic/cyrene-runner/internal/platform"
	"github.com/cyrenemusic/cyrene-runner/internal/render"
	"github.com/cyrenemusic/cyrene-runner/internal/shell"
	"github.com/cyrenemusic/cyrene-runner/internal/version"
	"github.com/cyrenemusic/cyrene-runner/internal/window"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print startup diagnostics",
		Long: `Print what a launch would do without starting the application:
whether an instance already holds the session lock, whether its window
can be found, and which rendering switches would be set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runDoctor(cmd.OutOrStdout(), newPlatform(), cfg)
		},
	}
}

func runDoctor(w io.Writer, plat platform.Platform, cfg *config.Config) error {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CYRENE MUSIC STARTUP DIAGNOSTICS")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[BUILD INFO]")
	fmt.Fprintf(w, "  Version: %s\n", version.Version)
	fmt.Fprintf(w, "  Built: %s\n", version.BuildTime)
	fmt.Fprintf(w, "  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[INSTANCE]")
	fmt.Fprintf(w, "  Lock: %s\n", constants.InstanceMutexName)
	held, err := instance.NewGuard(plat.Locks, nil).Probe(constants.InstanceMutexName)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  Primary running: unknown (%v)\n", err)
	case held:
		fmt.Fprintln(w, "  Primary running: yes (a launch would activate it and exit)")
	default:
		fmt.Fprintln(w, "  Primary running: no (a launch would become primary)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[WINDOW]")
	fmt.Fprintf(w, "  Class: %s\n", constants.WindowClassName)
	if ref := window.Lookup(plat.Windows, constants.WindowClassName); ref != nil {
		fmt.Fprintf(w, "  Peer window: found (visible=%v, minimized=%v)\n", ref.Visible(), ref.Iconic())
	} else {
		fmt.Fprintln(w, "  Peer window: not found")
	}
	fmt.Fprintf(w, "  Title: %s\n", constants.WindowTitle)
	fmt.Fprintf(w, "  Geometry: %dx%d at (%d,%d)\n",
		constants.WindowWidth, constants.WindowHeight, constants.WindowOriginX, constants.WindowOriginY)
	fmt.Fprintf(w, "  Custom frame: %v\n", cfg.Window.CustomFrame)
	fmt.Fprintf(w, "  Hide on startup: %v\n", cfg.Window.HideOnStartup)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[IDENTITY]")
	fmt.Fprintf(w, "  AppUserModelID: %s\n", constants.AppUserModelID)
	if err := shell.ValidateAppUserModelID(constants.AppUserModelID); err != nil {
		fmt.Fprintf(w, "  Invalid: %v\n", err)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[RENDER SWITCHES]")
	vars := render.Switches(cfg.Render)
	if len(vars) == 0 {
		fmt.Fprintln(w, "  (none, engine default backend)")
	}
	for _, v := range vars {
		current := os.Getenv(v.Key)
		if current == "" {
			current = "(not set)"
		}
		fmt.Fprintf(w, "  %s=%s (currently: %s)\n", v.Key, v.Value, current)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[LOGGING]")
	fmt.Fprintf(w, "  Level: %s\n", cfg.Log.Level)
	if cfg.Log.File == "" {
		fmt.Fprintln(w, "  File: (disabled)")
	} else {
		fmt.Fprintf(w, "  File: %s\n", cfg.Log.File)
	}
	fmt.Fprintf(w, "  Config dir: %s\n", config.ConfigDirectory())
	fmt.Fprintln(w)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "END OF DIAGNOSTICS")
	fmt.Fprintln(w, rule)
	return nil
}
