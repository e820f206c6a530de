// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports level selection and optional rotating file output via lumberjack

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error (default info)
	Level string

	// File, when set, receives log output through a rotating writer
	File string

	// JSON switches to the JSON formatter
	JSON bool

	// Fields are attached to every entry (e.g. run_id)
	Fields map[string]interface{}
}

// StructuredLogger implements the Logger interface using logrus
type StructuredLogger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// NewStructuredLogger creates a new logrus-backed logger writing to stderr
// or, when opts.File is set, to a rotating log file
func NewStructuredLogger(opts Options) *StructuredLogger {
	if opts.File == "" {
		return newWithWriter(os.Stderr, opts)
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	logger := newWithWriter(file, opts)
	logger.closer = file
	return logger
}

func newWithWriter(out io.Writer, opts Options) *StructuredLogger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(parseLevel(opts.Level))
	if opts.JSON {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &StructuredLogger{entry: base.WithFields(logrus.Fields(opts.Fields))}
}

// parseLevel maps a level name onto logrus, defaulting to info
func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// With returns a logger that adds the given fields to every entry
func (l *StructuredLogger) With(fields map[string]interface{}) *StructuredLogger {
	return &StructuredLogger{entry: l.entry.WithFields(logrus.Fields(fields)), closer: l.closer}
}

// Close releases the log file, if any. Loggers derived through With share it.
func (l *StructuredLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Debug logs a debug message
func (l *StructuredLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StructuredLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StructuredLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StructuredLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Nop returns a logger that discards everything
func Nop() *StructuredLogger {
	return newWithWriter(io.Discard, Options{Level: "error"})
}
