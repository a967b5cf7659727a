// File: entry.go
// Title: Log Entry and Field Helpers
// Description: Defines the Entry structure carried through formatters and
//              the Fields helpers used to attach structured key-value data
//              to log messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation

package log

import "time"

// Entry represents a single log entry ready for formatting
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Fields        Fields
	Logger        string
	CorrelationID string
	Error         error
}

// Fields is structured key-value data attached to log entries
type Fields map[string]interface{}

// Field creates a Fields map with a single key-value pair
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields map carrying an error
func Err(err error) Fields {
	return Fields{"error": err}
}

// String creates a Fields map with a string value
func String(key, value string) Fields {
	return Fields{key: value}
}

// Int creates a Fields map with an int value
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Bool creates a Fields map with a bool value
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Merge combines two Fields maps; other wins on key collisions
func (f Fields) Merge(other Fields) Fields {
	result := f.Clone()
	for k, v := range other {
		result[k] = v
	}
	return result
}

// With returns a copy of the Fields with an additional key-value pair
func (f Fields) With(key string, value interface{}) Fields {
	result := f.Clone()
	result[key] = value
	return result
}

// Clone returns a shallow copy of the Fields
func (f Fields) Clone() Fields {
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// NewEntry creates a new log entry with the current timestamp
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
