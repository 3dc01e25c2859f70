// Package logging configures the process-wide zerolog logger.
//
// Each apply run logs through a child of the global logger tagged with the
// run's ULID (see ForRun), so the runs of a long watch session can be told
// apart in the output and matched against their YAML reports.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Level is a zerolog level.
type Level = zerolog.Level

// Levels accepted by ParseLevel.
const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	Disabled   = zerolog.Disabled
)

// runField is the key carrying the run id.
const runField = "run"

// Config holds logger configuration.
type Config struct {
	Level Level
	// Output defaults to os.Stderr.
	Output io.Writer
	// Pretty selects zerolog's console writer over JSON lines.
	Pretty bool
}

// DefaultConfig is what the CLI uses before settings are loaded.
func DefaultConfig() Config {
	return Config{
		Level:  InfoLevel,
		Output: os.Stderr,
		Pretty: true,
	}
}

// Init replaces the global logger.
func Init(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	Logger = zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
}

// ParseLevel maps the log_level setting (case-insensitive) to a level.
// Unknown values fall back to info.
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG", "TRACE":
		return DebugLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "OFF", "NONE", "DISABLED":
		return Disabled
	default:
		return InfoLevel
	}
}

// ForRun returns a child of the global logger tagged with a run id.
func ForRun(id string) zerolog.Logger {
	return Logger.With().Str(runField, id).Logger()
}

// Debug starts a debug message on the global logger.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info message on the global logger.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Error starts an error message on the global logger.
func Error() *zerolog.Event {
	return Logger.Error()
}

func init() {
	Init(DefaultConfig())
}
