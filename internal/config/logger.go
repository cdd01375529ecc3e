package config

import (
	"fmt"
	"io"
)

// Logger provides structured logging for config operations.
// This interface allows users to plug in their own logging implementation.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs warning-level messages with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
}

// noopLogger is a Logger implementation that does nothing.
// This is the default logger used when none is provided.
type noopLogger struct{}

func (n *noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Error(msg string, keysAndValues ...interface{}) {}

// defaultLogger returns the default no-op logger.
func defaultLogger() Logger {
	return &noopLogger{}
}

// WriterLogger logs to an io.Writer in "level: msg key=value" form.
// It is used by the CLI in verbose mode.
type WriterLogger struct {
	w io.Writer
}

// NewWriterLogger creates a logger writing to w.
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w}
}

func (l *WriterLogger) log(level, msg string, keysAndValues ...interface{}) {
	fmt.Fprintf(l.w, "%s: %s", level, msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(l.w, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	fmt.Fprintln(l.w)
}

// Debug logs a debug-level message.
func (l *WriterLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log("debug", msg, keysAndValues...)
}

// Info logs an info-level message.
func (l *WriterLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log("info", msg, keysAndValues...)
}

// Warn logs a warning-level message.
func (l *WriterLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log("warn", msg, keysAndValues...)
}

// Error logs an error-level message.
func (l *WriterLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log("error", msg, keysAndValues...)
}
