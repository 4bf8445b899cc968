// File: logger_test.go
// Title: Core Logger Unit Tests
// Description: Unit tests for the structured logger: level filtering,
//              contextual fields, named sub-loggers, run IDs and the
//              JSON/text output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: &buf,
	})
	return logger, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("dropped")
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("expected warn output, got %q", buf.String())
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithName("texel-scanner").WithRunID("run-1").Debug("scan finished", Fields{
		"tokens": 12,
		"errors": 0,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["level"] != "debug" || entry["message"] != "scan finished" {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["logger"] != "texel-scanner" {
		t.Errorf("expected logger name, got %v", entry["logger"])
	}
	if entry["run_id"] != "run-1" {
		t.Errorf("expected run ID, got %v", entry["run_id"])
	}
	if entry["tokens"] != float64(12) {
		t.Errorf("expected tokens field, got %v", entry["tokens"])
	}
}

func TestLogger_TextOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	logger.WithName("texel").Info("ready", Fields{"b": 2, "a": 1})

	out := buf.String()
	if !strings.Contains(out, "[INF]") || !strings.Contains(out, "{texel}") {
		t.Errorf("unexpected text output %q", out)
	}
	// Fields are rendered sorted by key.
	if !strings.Contains(out, "[a=1 b=2]") {
		t.Errorf("expected sorted fields, got %q", out)
	}
}

func TestLogger_WithFieldsAreInherited(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	child := logger.WithField("file", "doc.tex").WithFields(Fields{"pass": 1})
	child.Info("msg")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["file"] != "doc.tex" || entry["pass"] != float64(1) {
		t.Errorf("expected inherited fields, got %v", entry)
	}

	// The parent is untouched. Decode into a fresh map: Unmarshal keeps
	// existing keys in a reused map, which would fake a leak.
	buf.Reset()
	logger.Info("msg")
	entry = nil
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if _, present := entry["file"]; present {
		t.Error("field leaked into the parent logger")
	}
}

func TestLogger_ErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatJSON)

	logger.ErrorWithErr("scan failed", errOpaque("boom"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["error"] != "boom" {
		t.Errorf("expected error field, got %v", entry["error"])
	}
}

type errOpaque string

func (e errOpaque) Error() string { return string(e) }

func TestLogger_IsLevelEnabled(t *testing.T) {
	logger, _ := newBufferLogger(LevelInfo, FormatJSON)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at info")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at info")
	}
	if got := logger.WithLevel(LevelTrace).GetLevel(); got != LevelTrace {
		t.Errorf("expected trace, got %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		invalid  bool
	}{
		{input: "trace", expected: LevelTrace},
		{input: " WARN ", expected: LevelWarn},
		{input: "warning", expected: LevelWarn},
		{input: "fatal", expected: LevelFatal},
		{input: "loud", invalid: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.invalid {
			if err == nil {
				t.Errorf("%q: expected an error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("%q: expected %v, got %v (err %v)", tt.input, tt.expected, got, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		invalid  bool
	}{
		{input: "json", expected: FormatJSON},
		{input: "Text", expected: FormatText},
		{input: "console", expected: FormatConsole},
		{input: "xml", invalid: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.invalid {
			if err == nil {
				t.Errorf("%q: expected an error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("%q: expected %v, got %v (err %v)", tt.input, tt.expected, got, err)
		}
	}
}
