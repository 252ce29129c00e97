// Package bootstrap runs the native startup sequence: single-instance
// arbitration, then either a handoff to the running instance's window or
// the full primary startup and event loop.
//
// All state of the sequence lives on Startup, which is built once by the
// root command and threaded through each phase. Nothing runs at package
// init time.
//
// Arbitration is the first thing Run does. Configuration and the shared
// log file are only set up once this process is known to be primary, so a
// second launch never fails on configuration and never writes to the
// primary's log file.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/cyrenemusic/cyrene-runner/internal/com"
	"github.com/cyrenemusic/cyrene-runner/internal/config"
	"github.com/cyrenemusic/cyrene-runner/internal/console"
	"github.com/cyrenemusic/cyrene-runner/internal/constants"
	"github.com/cyrenemusic/cyrene-runner/internal/instance"
	"github.com/cyrenemusic/cyrene-runner/internal/logging"
	"github.com/cyrenemusic/cyrene-runner/internal/platform"
	"github.com/cyrenemusic/cyrene-runner/internal/render"
	"github.com/cyrenemusic/cyrene-runner/internal/window"
)

// Configure loads the primary's configuration and builds its logger. It
// is called only after this process has won arbitration.
type Configure func() (*config.Config, *logging.Logger, error)

// Static returns a Configure yielding cfg and logger as given.
func Static(cfg *config.Config, logger *logging.Logger) Configure {
	return func() (*config.Config, *logging.Logger, error) {
		return cfg, logger, nil
	}
}

// Startup is the startup context of one process.
type Startup struct {
	plat      platform.Platform
	configure Configure

	cfg    *config.Config
	logger *logging.Logger
	// ownsLogger is set once logger is the primary's, which Run closes.
	ownsLogger bool

	phase      Phase
	lock       *instance.Lock
	apartment  *com.Scope
	switches   []render.Var
	window     window.MainWindow
	activation window.Activation
}

// New creates the startup context. early logs arbitration and peer
// activation and must not write to the shared log file.
func New(plat platform.Platform, early *logging.Logger, configure Configure) *Startup {
	if early == nil {
		early = logging.NewNop()
	}
	if configure == nil {
		configure = Static(nil, nil)
	}
	return &Startup{
		plat:      plat,
		configure: configure,
		logger:    early,
		phase:     PhaseArbitrating,
	}
}

// Phase returns the current lifecycle phase.
func (s *Startup) Phase() Phase {
	return s.phase
}

// Switches returns the rendering switches applied to the environment.
func (s *Startup) Switches() []render.Var {
	return s.switches
}

// Activation returns what peer activation did.
func (s *Startup) Activation() window.Activation {
	return s.activation
}

// Window returns the primary window, or nil if none was created.
func (s *Startup) Window() window.MainWindow {
	return s.window
}

func (s *Startup) advance(to Phase) {
	if !canAdvance(s.phase, to) {
		panic(fmt.Sprintf("bootstrap: illegal phase transition %s -> %s", s.phase, to))
	}
	s.logger.Debug().Str("from", s.phase.String()).Str("to", to.String()).Msg("Phase transition")
	s.phase = to
}

// Run executes the startup sequence and returns the process exit code.
// args are passed through to the window content untouched.
func (s *Startup) Run(args []string) int {
	guard := instance.NewGuard(s.plat.Locks, s.logger)
	lock, primary := guard.Acquire(constants.InstanceMutexName)
	s.lock = lock
	defer s.lock.Release()
	defer s.closeLogger()
	defer s.advance(PhaseExited)

	if !primary {
		s.advance(PhaseActivatingPeer)
		return s.activatePeer()
	}

	s.advance(PhaseRunningPrimary)
	return s.runPrimary(args)
}

// activatePeer hands focus to the running instance. It always succeeds:
// the peer may still be starting up and have no window yet.
func (s *Startup) activatePeer() int {
	s.activation = window.Activate(s.plat.Windows, constants.WindowClassName)

	s.logger.Info().
		Bool("found", s.activation.Found).
		Bool("shown", s.activation.Shown).
		Bool("restored", s.activation.Restored).
		Bool("focused", s.activation.Focused).
		Msg("Another instance is running, activated its window")

	return constants.ExitSuccess
}

func (s *Startup) runPrimary(args []string) int {
	cfg, logger, err := s.configure()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load configuration")
		return constants.ExitFailure
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger != nil {
		s.logger = logger
		s.ownsLogger = true
	}
	s.cfg = cfg

	if s.cfg.Console.Attach {
		s.setupConsole()
	}

	apartment, err := com.Enter(s.plat.COM)
	if err != nil {
		s.logger.Warn().Err(err).Msg("COM initialization failed, continuing without it")
	}
	s.apartment = apartment
	defer s.apartment.Close()

	if err := s.plat.Shell.SetAppUserModelID(constants.AppUserModelID); err != nil {
		s.logger.Debug().Err(err).Msg("Failed to register application identity")
	}

	// Must precede window construction: the engine reads its switches
	// only when it starts.
	s.switches = render.Switches(s.cfg.Render)
	if err := render.Apply(s.plat.Env, s.switches); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to set rendering switches")
	}

	s.logger.Debug().Strs("args", args).Msg("Creating primary window")
	win, err := s.plat.Host.Create(
		constants.WindowTitle,
		window.Point{X: constants.WindowOriginX, Y: constants.WindowOriginY},
		window.Size{Width: constants.WindowWidth, Height: constants.WindowHeight},
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create primary window")
		return constants.ExitFailure
	}
	s.window = win
	win.SetQuitOnClose(true)

	if win.Handle() != 0 {
		decorations := window.Decorations{
			CustomFrame:   s.cfg.Window.CustomFrame,
			HideOnStartup: s.cfg.Window.HideOnStartup,
		}
		if err := win.Decorate(decorations); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to apply window decorations")
		}
	}

	s.logger.Info().Msg("Entering event loop")
	if err := s.plat.Host.Run(); err != nil {
		s.logger.Error().Err(err).Msg("Event loop failed")
		return constants.ExitFailure
	}

	s.logger.Info().Msg("Event loop exited, shutting down")
	return constants.ExitSuccess
}

func (s *Startup) closeLogger() {
	if s.ownsLogger {
		s.logger.Close()
	}
}

func (s *Startup) setupConsole() {
	res, err := console.Setup(s.plat.Console)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Console setup failed")
		return
	}
	if res.Attached {
		// stdio now points at the console
		s.logger.SetOutput(os.Stderr)
		s.logger.Debug().Bool("allocated", res.Allocated).Msg("Attached to console")
	}
}
