// File: location.go
// Title: Source Location Model
// Description: Defines Line and Location, the immutable source-position
//              values attached to every token and scan error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial location model

package ast

import (
	"fmt"
	"strings"
)

// StringSource is the file identifier used for in-memory string input
const StringSource = "<string>"

// Line represents one line of source text
type Line struct {
	File     string // Source file identifier
	Number   int    // Line number (1-based, 0 before the first advance)
	Contents string // Line text without the trailing newline
}

// Location represents a point in the source
type Location struct {
	File   string // Source file identifier
	Line   int    // Line number (1-based)
	Column int    // Byte offset into the line's contents (0-based)
}

// LocationAt builds a Location for a column within the given line
func LocationAt(line Line, column int) Location {
	return Location{
		File:   line.File,
		Line:   line.Number,
		Column: column,
	}
}

// String returns the conventional file:line:column rendering
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Context snapshots the full offending line for a diagnostic, so a caret can
// be printed without re-reading the source
type Context struct {
	Loc      Location // Position of the problem
	LineText string   // Full text of the offending line
}

// ContextAt builds a Context for a column within the given line
func ContextAt(line Line, column int) Context {
	return Context{
		Loc:      LocationAt(line, column),
		LineText: line.Contents,
	}
}

// Caret renders the offending line with a caret under the error column
func (c Context) Caret() string {
	col := c.Loc.Column
	if col > len(c.LineText) {
		col = len(c.LineText)
	}

	var sb strings.Builder
	sb.WriteString(c.LineText)
	sb.WriteByte('\n')
	for _, ch := range []byte(c.LineText[:col]) {
		if ch == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('^')
	return sb.String()
}
