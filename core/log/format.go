// File: format.go
// Title: Log Output Formatters
// Description: Implements the Formatter interface with text and JSON
//              renderings of log entries. Text output is meant for humans
//              on a terminal, JSON for machine consumption.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation with text and JSON formatters

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	roserror "github.com/msto63/rosetta/core/error"
)

// Format represents the log output format
type Format int

const (
	// FormatText renders human-readable single-line output (default)
	FormatText Format = iota

	// FormatJSON renders one JSON object per line
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "console":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, roserror.Newf("unknown log format %q", name).
			WithCode(roserror.CodeInvalidInput).
			WithOperation("log.ParseFormat")
	}
}

// Formatter renders a log entry into bytes ready for output
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// TextFormatter formats log entries as human-readable lines
type TextFormatter struct {
	// TimestampFormat overrides the timestamp layout (default: RFC3339)
	TimestampFormat string

	// DisableTimestamp omits the timestamp
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with defaults
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format renders the entry as a single text line
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var parts []string

	if !f.DisableTimestamp {
		layout := f.TimestampFormat
		if layout == "" {
			layout = time.RFC3339
		}
		parts = append(parts, entry.Timestamp.Format(layout))
	}

	parts = append(parts, fmt.Sprintf("[%s]", entry.Level.ShortString()))

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}

	if entry.CorrelationID != "" {
		parts = append(parts, fmt.Sprintf("(corr=%s)", entry.CorrelationID))
	}

	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		// Sorted for stable output
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fieldParts := make([]string, 0, len(keys))
		for _, k := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(fieldParts, " ")))
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// JSONFormatter formats log entries as one JSON object per line
type JSONFormatter struct {
	// TimestampFormat overrides the timestamp layout (default: RFC3339)
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with defaults
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format renders the entry as a JSON line
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(layout),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}

	for k, v := range entry.Fields {
		data[k] = v
	}

	if entry.Error != nil {
		// Structured errors marshal themselves with code and details
		if structured, ok := entry.Error.(*roserror.Error); ok {
			data["error"] = structured
		} else {
			data["error"] = entry.Error.Error()
		}
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return append(line, '\n'), nil
}

// GetFormatter returns the formatter for a Format value
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}
