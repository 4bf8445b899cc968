// File: cursor.go
// Title: Line Cursor
// Description: Implements the peekable per-line cursor the scanner reads
//              from. Lines come from an external supplier one at a time;
//              column offsets are byte indices into the current line only
//              and are never valid across a line boundary.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial cursor implementation

package scanner

import (
	"unicode/utf8"

	"github.com/msto63/texel/ast"
)

// LineSupplier yields source lines one at a time, without trailing
// newlines. The second return value is false once the input is exhausted;
// subsequent calls must keep returning false.
type LineSupplier func() (string, bool)

// Cursor tracks a position within the current source line and advances
// one line at a time from a LineSupplier. The cursor starts before the
// first line; AdvanceLine must be called once before scanning.
type Cursor struct {
	supply LineSupplier
	line   ast.Line
	pos    int
	eof    bool
}

// NewCursor creates a cursor over the given supplier. The file identifier
// is attached to every line the cursor produces.
func NewCursor(file string, supply LineSupplier) *Cursor {
	return &Cursor{
		supply: supply,
		line:   ast.Line{File: file},
	}
}

// Line returns the current line
func (c *Cursor) Line() ast.Line {
	return c.line
}

// Pos returns the current byte offset into the current line
func (c *Cursor) Pos() int {
	return c.pos
}

// EOF reports whether the supplier has been exhausted
func (c *Cursor) EOF() bool {
	return c.eof
}

// Peek returns the next character and its column without consuming it.
// ok is false when the current line is exhausted.
func (c *Cursor) Peek() (column int, ch rune, ok bool) {
	if c.pos >= len(c.line.Contents) {
		return c.pos, 0, false
	}
	ch, _ = utf8.DecodeRuneInString(c.line.Contents[c.pos:])
	return c.pos, ch, true
}

// Next consumes and returns the next character of the current line
func (c *Cursor) Next() (column int, ch rune, ok bool) {
	column, ch, ok = c.Peek()
	if ok {
		c.pos += utf8.RuneLen(ch)
	}
	return column, ch, ok
}

// Rest returns the unconsumed remainder of the current line
func (c *Cursor) Rest() string {
	return c.line.Contents[c.pos:]
}

// Consume advances the position by n bytes within the current line
func (c *Cursor) Consume(n int) {
	c.pos += n
	if c.pos > len(c.line.Contents) {
		c.pos = len(c.line.Contents)
	}
}

// AdvanceLine pulls the next line from the supplier and resets the
// position to column 0. On exhaustion it installs an empty sentinel line
// (keeping the last line number for diagnostics) and returns false.
func (c *Cursor) AdvanceLine() bool {
	if c.eof {
		return false
	}

	text, ok := c.supply()
	if !ok {
		c.line.Contents = ""
		c.pos = 0
		c.eof = true
		return false
	}

	c.line.Number++
	c.line.Contents = text
	c.pos = 0
	return true
}
