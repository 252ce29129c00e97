// Package logging provides structured logging for the runner.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string
	// Debug forces debug level regardless of Level.
	Debug bool
	// Console receives human-readable output. Nil means os.Stderr.
	Console io.Writer
	// FilePath enables the rotating file sink when non-empty.
	FilePath string
	// MaxSizeMB is the size of one log file before rotation.
	MaxSizeMB int
}

// Logger wraps zerolog with a console sink that can be rebound after a
// console is attached, and an optional rotating file sink.
type Logger struct {
	zlog    zerolog.Logger
	level   zerolog.Level
	console io.Writer
	file    *lumberjack.Logger
}

// NewLogger creates a logger from opts.
func NewLogger(opts Options) *Logger {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	level := ParseLevel(opts.Level)
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	l := &Logger{
		level:   level,
		console: console,
	}

	if opts.FilePath != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		l.file = &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    maxSize,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
	}

	l.rebuild()
	return l
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zlog: zerolog.Nop(), level: zerolog.Disabled}
}

func (l *Logger) rebuild() {
	writers := []io.Writer{consoleWriter(l.console)}
	if l.file != nil {
		writers = append(writers, l.file)
	}

	var out io.Writer = writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	l.zlog = zerolog.New(out).
		Level(l.level).
		With().
		Timestamp().
		Logger()
}

// consoleWriter formats for humans. Color is only used on a real terminal.
func consoleWriter(w io.Writer) io.Writer {
	noColor := true
	if f, ok := w.(*os.File); ok && f != nil {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// With creates a child logger context.
func (l *Logger) With() zerolog.Context {
	return l.zlog.With()
}

// Level returns the effective level.
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// SetOutput replaces the console sink, keeping the file sink.
// Used after the process attaches to a console so output reaches it.
func (l *Logger) SetOutput(w io.Writer) {
	if l.level == zerolog.Disabled {
		return
	}
	l.console = w
	l.rebuild()
}

// Output returns the current console writer.
func (l *Logger) Output() io.Writer {
	return l.console
}

// FilePath returns the rotating log file path, or "" if file logging is off.
func (l *Logger) FilePath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Filename
}

// Close flushes and closes the file sink.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel
	}
	if s == "warning" {
		s = "warn"
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
