//go:generate mockgen -source=logger.go -destination=logger_mock.go -package=logger
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"materi/internal/config"
)

// Logger configuration constants
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
	FatalLevel = "fatal"
	PanicLevel = "panic"
	TraceLevel = "trace"

	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "02.01.2006 15:04:05"

	ComponentField = "component"
	ViewField      = "view"
)

// Logger interface for application logging
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	WithComponent(name string) Logger
	WithView(id string) Logger
}

// AppLogger represents a logger implementation using zerolog
type AppLogger struct {
	log zerolog.Logger
}

// NewLogger creates a new logger instance
func NewLogger(cfg *config.Config) Logger {
	return NewLoggerWithOutput(cfg, nil)
}

// NewLoggerWithOutput creates a new logger instance with a custom output writer
func NewLoggerWithOutput(cfg *config.Config, customOutput io.Writer) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339

	var (
		level  zerolog.Level
		output io.Writer
	)

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = InfoLevel
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = ConsoleFormat
	}

	level = getLogLevel(cfg.Logging.Level)

	if customOutput != nil {
		output = customOutput
	} else {
		switch cfg.Logging.Format {
		case JSONFormat:
			output = os.Stderr
		case ConsoleFormat:
			output = newConsoleWriter()
		default:
			output = newConsoleWriter()
		}
	}

	logger := zerolog.
		New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", config.AppName).
		Str("version", config.Version).
		Logger()

	return &AppLogger{log: logger}
}

// Debug returns a debug level Event for logging debug messages
func (l *AppLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

// Info returns an info level Event for logging informational messages
func (l *AppLogger) Info() *zerolog.Event {
	return l.log.Info()
}

// Warn returns a warn level Event for logging warning messages
func (l *AppLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

// Error returns an error level Event for logging error messages
func (l *AppLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// WithComponent creates a new logger with a component name for contextual logging
func (l *AppLogger) WithComponent(name string) Logger {
	return &AppLogger{
		log: l.log.With().Str(ComponentField, name).Logger(),
	}
}

// WithView tags entries with the id of the page view they concern
func (l *AppLogger) WithView(id string) Logger {
	return &AppLogger{
		log: l.log.With().Str(ViewField, id).Logger(),
	}
}

// newConsoleWriter prints the component and view as one bracketed prefix, [VIEW render]
func newConsoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: TimeFormat,
		FieldsExclude: []string{
			ComponentField,
			ViewField,
		},
		FormatPrepare: func(m map[string]interface{}) error {
			m[ComponentField] = consolePrefix(m)
			return nil
		},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			ComponentField,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
	}
}

// consolePrefix joins the component and view fields of an entry
func consolePrefix(m map[string]interface{}) string {
	component, _ := m[ComponentField].(string)
	view, _ := m[ViewField].(string)

	switch {
	case component != "" && view != "":
		return fmt.Sprintf("[%s %s]", component, view)
	case component != "":
		return fmt.Sprintf("[%s]", component)
	case view != "":
		return fmt.Sprintf("[%s]", view)
	default:
		return ""
	}
}

// getLogLevel converts a configured level name, unknown names log at info
func getLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return parsed
}
