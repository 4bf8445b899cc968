// File: cursor_test.go
// Title: Line Cursor Unit Tests
// Description: Unit tests for the line cursor: peek/next semantics over
//              multi-byte characters, line advancement and the EOF
//              sentinel.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial test suite

package scanner

import (
	"testing"

	"github.com/msto63/texel/ast"
)

func TestCursor_PeekAndNext(t *testing.T) {
	cur := NewCursor(ast.StringSource, supplierFromString("aä"))
	if !cur.AdvanceLine() {
		t.Fatal("expected a first line")
	}

	col, ch, ok := cur.Peek()
	if !ok || col != 0 || ch != 'a' {
		t.Fatalf("peek: got (%d, %q, %v)", col, ch, ok)
	}
	// Peek does not consume.
	if col, ch, _ = cur.Peek(); col != 0 || ch != 'a' {
		t.Fatalf("second peek moved: (%d, %q)", col, ch)
	}

	cur.Next()
	col, ch, ok = cur.Next()
	if !ok || col != 1 || ch != 'ä' {
		t.Fatalf("next: got (%d, %q, %v)", col, ch, ok)
	}
	// Columns are byte offsets: 'ä' is two bytes wide.
	if cur.Pos() != 3 {
		t.Errorf("expected pos 3 after multi-byte rune, got %d", cur.Pos())
	}

	if _, _, ok = cur.Peek(); ok {
		t.Error("expected exhausted line")
	}
}

func TestCursor_RestAndConsume(t *testing.T) {
	cur := NewCursor(ast.StringSource, supplierFromString("hello"))
	cur.AdvanceLine()

	cur.Next()
	if rest := cur.Rest(); rest != "ello" {
		t.Errorf("expected rest %q, got %q", "ello", rest)
	}

	cur.Consume(2)
	if rest := cur.Rest(); rest != "lo" {
		t.Errorf("expected rest %q, got %q", "lo", rest)
	}

	// Over-consumption clamps to the line end.
	cur.Consume(100)
	if rest := cur.Rest(); rest != "" {
		t.Errorf("expected empty rest, got %q", rest)
	}
	if cur.Pos() != 5 {
		t.Errorf("expected pos clamped to 5, got %d", cur.Pos())
	}
}

func TestCursor_AdvanceLine(t *testing.T) {
	cur := NewCursor("doc.tex", supplierFromString("one\ntwo"))

	if cur.Line().Number != 0 {
		t.Errorf("expected line number 0 before the first advance, got %d", cur.Line().Number)
	}

	if !cur.AdvanceLine() {
		t.Fatal("expected line one")
	}
	if line := cur.Line(); line.Number != 1 || line.Contents != "one" || line.File != "doc.tex" {
		t.Errorf("unexpected line %+v", line)
	}

	if !cur.AdvanceLine() {
		t.Fatal("expected line two")
	}
	if line := cur.Line(); line.Number != 2 || line.Contents != "two" {
		t.Errorf("unexpected line %+v", line)
	}

	if cur.AdvanceLine() {
		t.Fatal("expected exhaustion")
	}
	if !cur.EOF() {
		t.Error("expected EOF")
	}
	// The sentinel keeps the last line number for diagnostics.
	if line := cur.Line(); line.Number != 2 || line.Contents != "" {
		t.Errorf("unexpected sentinel line %+v", line)
	}
	if cur.AdvanceLine() {
		t.Error("expected AdvanceLine to stay false after exhaustion")
	}
}

func TestCursor_EmptyInput(t *testing.T) {
	cur := NewCursor(ast.StringSource, supplierFromString(""))
	if cur.AdvanceLine() {
		t.Fatal("expected no lines")
	}
	if !cur.EOF() {
		t.Error("expected EOF")
	}
	if _, _, ok := cur.Peek(); ok {
		t.Error("expected nothing to peek")
	}
}
