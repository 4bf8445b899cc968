// File: engine_test.go
// Title: Engine Facade Unit Tests
// Description: Unit tests for the Engine facade: input binding from
//              strings, line suppliers and readers, option validation,
//              the built-in control space and definition sharing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial test suite

package texel

import (
	"strings"
	"testing"

	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/registry"
	"github.com/msto63/texel/scanner"
)

func TestNewFromLines_Validation(t *testing.T) {
	if _, err := NewFromLines(nil, "", Options{}); err == nil {
		t.Error("expected an error for a nil supplier")
	}
	if _, err := NewFromString("x", Options{MaxDepth: -1}); err == nil {
		t.Error("expected an error for a negative depth")
	}
}

func TestEngine_ControlSpaceIsBuiltIn(t *testing.T) {
	eng, err := NewFromString(`a\ b`, Options{})
	if err != nil {
		t.Fatalf("engine creation failed: %v", err)
	}

	if _, ok := eng.Registry().LookupCommand(scanner.ControlSpace); !ok {
		t.Fatal("expected the control space to be pre-registered")
	}

	results := eng.Tokenize()
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %v", len(results), results)
	}
	cmd, ok := results[1].Token.(ast.Command)
	if !ok || cmd.Def.Name != scanner.ControlSpace {
		t.Errorf("expected control space command, got %v", results[1].Token)
	}
}

func TestEngine_BackslashAtLineEnd(t *testing.T) {
	eng, err := NewFromString("a\\\nb", Options{})
	if err != nil {
		t.Fatalf("engine creation failed: %v", err)
	}

	results := eng.Tokenize()
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %v", len(results), results)
	}
	cmd, ok := results[1].Token.(ast.Command)
	if !ok || cmd.Def.Name != scanner.ControlSpace {
		t.Errorf("expected control space at line end, got %v", results[1].Token)
	}
}

func TestEngine_SharedRegistry(t *testing.T) {
	reg := registry.New(registry.Options{})
	if err := reg.DefineCommand("emph", []registry.Parameter{
		{Format: registry.FormatRequired, Type: registry.TypeParsedTokens},
	}); err != nil {
		t.Fatal(err)
	}

	for _, source := range []string{`\emph{a}`, `\emph{b}`} {
		eng, err := NewFromString(source, Options{Registry: reg})
		if err != nil {
			t.Fatalf("engine creation failed: %v", err)
		}
		results := eng.Tokenize()
		if len(results) != 1 || results[0].IsError() {
			t.Fatalf("%s: unexpected results %v", source, results)
		}
	}
}

func TestEngine_DefineAndTokenize(t *testing.T) {
	eng, err := NewFromString(`\title{Go}`, Options{})
	if err != nil {
		t.Fatalf("engine creation failed: %v", err)
	}
	if err := eng.DefineCommand("title", []registry.Parameter{
		{Format: registry.FormatRequired, Type: registry.TypeVerbatimText},
	}); err != nil {
		t.Fatal(err)
	}

	results := eng.Tokenize()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %v", len(results), results)
	}
	cmd, ok := results[0].Token.(ast.Command)
	if !ok {
		t.Fatalf("expected Command, got %v", results[0])
	}
	raw, ok := cmd.Args[0].(ast.RawText)
	if !ok || raw.Text != "Go" {
		t.Errorf("unexpected argument %v", cmd.Args[0])
	}

	// The supplier is drained: a second run yields an empty stream.
	if again := eng.Tokenize(); len(again) != 0 {
		t.Errorf("expected an empty second run, got %v", again)
	}
}

func TestTokenizeString(t *testing.T) {
	results, err := TokenizeString("{x}", Options{})
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %v", len(results), results)
	}
	if results[0].Token.Kind() != ast.KindBgroup ||
		results[1].Token.Kind() != ast.KindText ||
		results[2].Token.Kind() != ast.KindEgroup {
		t.Errorf("unexpected stream %v", results)
	}
}

func TestLinesFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Plain lines", input: "a\nb", expected: []string{"a", "b"}},
		{name: "Trailing newline", input: "a\nb\n", expected: []string{"a", "b"}},
		{name: "Windows line endings", input: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "Empty source", input: "", expected: nil},
		{name: "Blank interior line", input: "a\n\nb", expected: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supply := LinesFromString(tt.input)
			var got []string
			for {
				line, ok := supply()
				if !ok {
					break
				}
				got = append(got, line)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestLinesFromReader(t *testing.T) {
	supply := LinesFromReader(strings.NewReader("one\ntwo\n"))

	line, ok := supply()
	if !ok || line != "one" {
		t.Fatalf("unexpected first line %q (%v)", line, ok)
	}
	line, ok = supply()
	if !ok || line != "two" {
		t.Fatalf("unexpected second line %q (%v)", line, ok)
	}
	if _, ok = supply(); ok {
		t.Error("expected exhaustion")
	}
}

func TestEngine_FileIdentifierOnLocations(t *testing.T) {
	eng, err := NewFromLines(LinesFromString("x"), "ch1.tex", Options{})
	if err != nil {
		t.Fatalf("engine creation failed: %v", err)
	}

	results := eng.Tokenize()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	loc := results[0].Location()
	if loc.File != "ch1.tex" || loc.Line != 1 || loc.Column != 0 {
		t.Errorf("unexpected location %v", loc)
	}
}
