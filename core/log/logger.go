// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured, leveled
//              logging with contextual fields and named sub-loggers for the
//              tokenizer components.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with structured logging

package log

import (
	"io"
	"os"
	"sync"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	runID     string

	// Context fields that are added to all log entries
	contextFields Fields

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		output:        config.Output,
		name:          config.Name,
		formatter:     GetFormatter(config.Format),
		contextFields: make(Fields),
	}

	if config.Output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// WithLevel returns a clone of the logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a clone of the logger with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput returns a clone of the logger writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a clone of the logger with the given name
func (l *Logger) WithName(name string) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.name = name
	return clone
}

// WithRunID returns a clone of the logger bound to a tokenize run
func (l *Logger) WithRunID(runID string) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.runID = runID
	return clone
}

// WithField returns a clone of the logger with a persistent field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a clone of the logger with persistent fields
func (l *Logger) WithFields(fields Fields) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()

	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RunID = l.runID
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}

	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	if formatted, formatErr := formatter.Format(entry); formatErr == nil {
		output.Write(formatted)
	}
}

// clone creates a copy of the logger for immutable With* operations
func (l *Logger) clone() *Logger {
	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		runID:         l.runID,
		contextFields: make(Fields),
	}

	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}

	return clone
}

// Default logger instance
var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()

	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()

	defaultLogger = logger
}
