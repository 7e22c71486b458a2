// ABOUTME: Logrus-backed implementation of the core Logger interface
// ABOUTME: Supports text or JSON output, level filtering, and optional rotating log files

package logrus

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger
type Options struct {
	// Level is one of debug, info, warn, error (default info)
	Level string
	// Format is "json" or "text" (default text)
	Format string
	// File, when set, sends output to a size-rotated log file instead of stderr
	File string
	// Output overrides the destination; used by tests
	Output io.Writer
}

// Logger implements interfaces.Logger on top of logrus
type Logger struct {
	entry *logrus.Logger
}

// NewLogger creates a logger with the given level and format writing to stderr
func NewLogger(level, format string) *Logger {
	return NewLoggerWithOptions(Options{Level: level, Format: format})
}

// NewLoggerWithOptions creates a logger from opts
func NewLoggerWithOptions(opts Options) *Logger {
	log := logrus.New()

	switch {
	case opts.Output != nil:
		log.SetOutput(opts.Output)
	case opts.File != "":
		log.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	default:
		log.SetOutput(os.Stderr)
	}

	if strings.EqualFold(opts.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &Logger{entry: log}
}

// NewQuietLogger returns a logger that discards everything
func NewQuietLogger() *Logger {
	return NewLoggerWithOptions(Options{Level: "panic", Output: io.Discard})
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Level reports the active level name
func (l *Logger) Level() string {
	return l.entry.GetLevel().String()
}
