package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level string
	// Verbose forces debug level regardless of Level.
	Verbose       bool
	HumanReadable bool
	// File appends logs to a file, keeping them off the terminal the UI
	// draws on. It takes precedence over Writer.
	File string
	// Writer defaults to stderr so log lines never mix with command output.
	Writer io.Writer
}

// Logger wraps zerolog for the CLI. The panel and the terminal UI log through
// the zerolog.Logger handed out by Panel and Zerolog.
type Logger struct {
	base   zerolog.Logger
	closer io.Closer
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var (
		writer = opts.Writer
		closer io.Closer
	)
	if opts.File != "" {
		file, err := openLogFile(opts.File)
		if err != nil {
			return nil, err
		}
		writer, closer = file, file
	}
	if writer == nil {
		writer = os.Stderr
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		console.NoColor = true
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base, closer: closer}, nil
}

func parseLevel(name string, verbose bool) (zerolog.Level, error) {
	if verbose {
		return zerolog.DebugLevel, nil
	}
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// Discard returns a Logger that writes nothing.
func Discard() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Close releases the log file, if any. Derived loggers share it, so close
// only the logger returned by New.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// Command tags every entry with the CLI command that wrote it.
func (l *Logger) Command(name string) *Logger {
	return l.WithFields(map[string]any{"command": name})
}

// Panel returns the zerolog.Logger a panel tree logs through, tagged with the
// root panel title.
func (l *Logger) Panel(title string) *zerolog.Logger {
	panel := l.Zerolog().With().Str("panel", title).Logger()
	return &panel
}

// Zerolog exposes the wrapped logger.
func (l *Logger) Zerolog() *zerolog.Logger {
	if l == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return &l.base
}

// Snapshot records a snapshot read or write.
func (l *Logger) Snapshot(action, path string, values int) {
	if l == nil {
		return
	}
	l.base.Info().Str("action", action).Str("path", path).Int("values", values).Msg("snapshot " + action)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
