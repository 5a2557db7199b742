// Package logger owns the process-wide zerolog root logger. Bootstrap calls
// Configure once from the loaded settings; everything else derives child
// loggers through Component so each line carries its origin.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultService is stamped on every line when Config.Service is empty.
const DefaultService = "studentforce"

var root zerolog.Logger

// LogLevel is a level name as it appears in configuration.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal" // logs, then exits
)

var zerologLevels = map[LogLevel]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
	FatalLevel: zerolog.FatalLevel,
}

// Config selects the minimum level and the output encoding. Pretty switches
// from JSON lines to zerolog's console writer; a nil Output means stdout.
type Config struct {
	Level   LogLevel
	Pretty  bool
	Output  io.Writer
	Service string
}

// ParseLevel accepts the names above case-insensitively, plus "warning".
// Anything unrecognised falls back to info.
func ParseLevel(name string) LogLevel {
	l := LogLevel(strings.ToLower(strings.TrimSpace(name)))
	if l == "warning" {
		return WarnLevel
	}
	if _, ok := zerologLevels[l]; ok {
		return l
	}
	return InfoLevel
}

// Configure replaces the root logger and the global level. It also points
// zerolog/log at the new root so third-party code logging through the
// global picks up the same sink.
func Configure(config Config) {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	if config.Service == "" {
		config.Service = DefaultService
	}

	level, ok := zerologLevels[config.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if config.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	root = zerolog.New(out).With().Timestamp().Str("service", config.Service).Logger()
	log.Logger = root
}

// Get returns the root logger.
func Get() zerolog.Logger {
	return root
}

// Component returns a child of the root tagged with component=name.
// Loggers obtained before a later Configure keep the old sink.
func Component(name string) zerolog.Logger {
	return root.With().Str("component", name).Logger()
}

// Info starts an info event on the root logger.
func Info() *zerolog.Event {
	return root.Info()
}

// Warn starts a warn event on the root logger.
func Warn() *zerolog.Event {
	return root.Warn()
}

// Error starts an error event on the root logger.
func Error() *zerolog.Event {
	return root.Error()
}

// Until bootstrap runs, log human-readable lines at info.
func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
