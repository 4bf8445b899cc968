// File: entry.go
// Title: Log Entry Definition
// Description: Defines the Entry type that carries a single log event from
//              the logger to a formatter, including contextual fields and
//              an optional associated error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Fields represents contextual key-value pairs attached to log entries
type Fields map[string]interface{}

// Entry represents a single log event
type Entry struct {
	Timestamp time.Time // When the event occurred
	Level     Level     // Severity of the event
	Message   string    // Human-readable message
	Logger    string    // Name of the logger that produced the entry
	RunID     string    // Tokenize run the entry belongs to (if any)
	Fields    Fields    // Contextual fields
	Error     error     // Associated error (if any)
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithField adds a single field to the entry and returns it for chaining
func (e *Entry) WithField(key string, value interface{}) *Entry {
	e.Fields[key] = value
	return e
}
