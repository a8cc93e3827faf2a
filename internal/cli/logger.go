package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// LogOptions controls where and how the Logger writes.
type LogOptions struct {
	// Level is a logrus level name; empty means info.
	Level string
	// Format is "text" or "json"; empty means text.
	Format string
	// File, when set, also writes to a size-rotated log file.
	File string
	// Out overrides the console writer; nil means stderr, leaving stdout
	// for generated names.
	Out io.Writer
}

// Logger writes human-readable status messages through logrus.
type Logger struct {
	l *logrus.Logger
}

// NewLogger builds a Logger for opts.
func NewLogger(opts LogOptions) *Logger {
	lg := &Logger{l: logrus.New()}
	lg.Configure(opts)
	return lg
}

// Configure applies opts in place. An unknown level falls back to info.
func (lg *Logger) Configure(opts LogOptions) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	lg.l.SetLevel(level)

	if opts.Format == "json" {
		lg.l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampLayout})
	} else {
		lg.l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampLayout})
	}

	var out io.Writer = os.Stderr
	if opts.Out != nil {
		out = opts.Out
	}
	if opts.File != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	}
	lg.l.SetOutput(out)
}

// Logrus exposes the underlying logger for packages that log with fields.
func (lg *Logger) Logrus() *logrus.Logger {
	return lg.l
}

// Info prints an informational message.
func (lg *Logger) Info(msg string) {
	lg.l.Info(msg)
}

// Warn prints a warning message.
func (lg *Logger) Warn(msg string) {
	lg.l.Warn(msg)
}

// Error prints an error message.
func (lg *Logger) Error(msg string) {
	lg.l.Error(msg)
}

// Success prints a completed-operation message.
func (lg *Logger) Success(msg string) {
	lg.l.WithField("status", "ok").Info(msg)
}

// Failure prints a failed-operation message.
func (lg *Logger) Failure(msg string) {
	lg.l.WithField("status", "fail").Warn(msg)
}
