// File: location_test.go
// Title: Source Location Unit Tests
// Description: Unit tests for location rendering and the caret-annotated
//              context output.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial test suite

package ast

import "testing"

func TestLocation_String(t *testing.T) {
	loc := Location{File: "ch1.tex", Line: 12, Column: 4}
	if got := loc.String(); got != "ch1.tex:12:4" {
		t.Errorf("expected %q, got %q", "ch1.tex:12:4", got)
	}
}

func TestLocationAt(t *testing.T) {
	line := Line{File: StringSource, Number: 5, Contents: "hello"}
	loc := LocationAt(line, 2)
	if loc.File != StringSource || loc.Line != 5 || loc.Column != 2 {
		t.Errorf("unexpected location %+v", loc)
	}
}

func TestContext_Caret(t *testing.T) {
	tests := []struct {
		name     string
		ctx      Context
		expected string
	}{
		{
			name: "Mid-line column",
			ctx: Context{
				Loc:      Location{Column: 4},
				LineText: "ab\\cd",
			},
			expected: "ab\\cd\n    ^",
		},
		{
			name: "Column zero",
			ctx: Context{
				Loc:      Location{Column: 0},
				LineText: "text",
			},
			expected: "text\n^",
		},
		{
			name: "Tabs preserved in padding",
			ctx: Context{
				Loc:      Location{Column: 2},
				LineText: "\tab",
			},
			expected: "\tab\n\t ^",
		},
		{
			name: "Column past line end is clamped",
			ctx: Context{
				Loc:      Location{Column: 10},
				LineText: "ab",
			},
			expected: "ab\n  ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctx.Caret(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestResult_Location(t *testing.T) {
	tokLoc := Location{File: StringSource, Line: 1, Column: 3}
	if got := Ok(ParsedText{Loc: tokLoc, Text: "x"}).Location(); got != tokLoc {
		t.Errorf("expected %v, got %v", tokLoc, got)
	}

	errLoc := Location{File: StringSource, Line: 2, Column: 0}
	r := Fail(&ScanError{Kind: ErrUndefinedCommand, Context: Context{Loc: errLoc}})
	if !r.IsError() {
		t.Fatal("expected error result")
	}
	if got := r.Location(); got != errLoc {
		t.Errorf("expected %v, got %v", errLoc, got)
	}
}
