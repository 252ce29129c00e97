// Package cli provides the command-line interface for cyrene-music.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cyrenemusic/cyrene-runner/internal/bootstrap"
	"github.com/cyrenemusic/cyrene-runner/internal/config"
	"github.com/cyrenemusic/cyrene-runner/internal/constants"
	"github.com/cyrenemusic/cyrene-runner/internal/logging"
	"github.com/cyrenemusic/cyrene-runner/internal/platform"
	"github.com/cyrenemusic/cyrene-runner/internal/version"
)

var (
	// Global flags
	cfgFile string
	logFile string
	debug   bool

	// newPlatform supplies the OS collaborators. Tests replace it.
	newPlatform = platform.Default
)

// ExitError carries a non-zero process exit code out of a command.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd creates the root command. Running it with no subcommand
// starts the application.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName + " [flags] [-- entrypoint args...]",
		Short: "Cyrene Music desktop runner",
		Long: `Cyrene Music ` + version.Version + ` - Built: ` + version.BuildTime + `

Starts the music player. If an instance is already running in this
session, its window is brought to the foreground instead and this
process exits.

Arguments after -- are passed to the application untouched.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Console only until this process wins the instance lock. A
			// secondary launch must not touch the primary's log file.
			early := logging.NewLogger(logging.Options{Debug: debug})
			early.Info().
				Str("version", version.Version).
				Int("pid", os.Getpid()).
				Msg("Starting")

			configure := func() (*config.Config, *logging.Logger, error) {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return nil, nil, err
				}
				return cfg, newLogger(cfg), nil
			}

			code := bootstrap.New(newPlatform(), early, configure).Run(args)
			if code != constants.ExitSuccess {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newDoctorCmd())
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	return exitCode(rootCmd.Execute())
}

func exitCode(err error) int {
	if err == nil {
		return constants.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return constants.ExitFailure
}

// loadConfig reads configuration, applying command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader.WithConfigFile(cfgFile)
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil {
		if err := loader.Viper().BindPFlag("log.file", f); err != nil {
			return nil, fmt.Errorf("binding --log-file: %w", err)
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the process logger. If the log directory cannot be
// created, logging continues on the console only.
func newLogger(cfg *config.Config) *logging.Logger {
	path := cfg.Log.File
	var dirErr error
	if path != "" {
		if dirErr = config.EnsureLogDirectory(path); dirErr != nil {
			path = ""
		}
	}

	logger := logging.NewLogger(logging.Options{
		Level:     cfg.Log.Level,
		Debug:     debug,
		FilePath:  path,
		MaxSizeMB: cfg.Log.MaxSizeMB,
	})
	logging.SetGlobalLevel(logger.Level())

	if dirErr != nil {
		logger.Warn().Err(dirErr).Str("file", cfg.Log.File).Msg("File logging disabled")
	}
	return logger
}
