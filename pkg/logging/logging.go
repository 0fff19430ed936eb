package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AutoLogFile selects the default log file under the XDG state directory.
const AutoLogFile = "auto"

// Options configures SetupLogger.
type Options struct {
	// Verbosity is the count of -v flags.
	Verbosity int
	// Out receives console log lines. Defaults to os.Stderr.
	Out io.Writer
	// File, when set, also appends JSON log lines to that path.
	// AutoLogFile resolves to $XDG_STATE_HOME/temple/temple.log.
	File string
}

// SetupLogger configures the global logger based on verbosity level.
// The returned function releases the log file, if one was opened.
func SetupLogger(opts Options) func() {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(out),
	}

	writers := []io.Writer{consoleWriter}
	closeFn := func() {}

	var fileErr error
	var logFile string
	if opts.File != "" {
		logFile, fileErr = resolveLogFilePath(opts.File)
		if fileErr == nil {
			var handle *os.File
			handle, fileErr = setupLogFile(logFile)
			if fileErr == nil {
				writers = append(writers, handle)
				closeFn = func() { _ = handle.Close() }
			}
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.File).Msg("Failed to open log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
	return closeFn
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogDuration logs the duration of an operation
func LogDuration(start time.Time, operation string) {
	log.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveLogFilePath expands AutoLogFile to a path under XDG_STATE_HOME.
func resolveLogFilePath(file string) (string, error) {
	if file != AutoLogFile {
		return file, nil
	}
	return xdg.StateFile(filepath.Join("temple", "temple.log"))
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}
