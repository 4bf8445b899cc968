// File: token_test.go
// Title: Token Variant Unit Tests
// Description: Unit tests for token kinds, plain-text rendering and the
//              stream dump/JSON helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial test suite

package ast

import (
	"strings"
	"testing"

	"github.com/msto63/texel/registry"
)

func TestToken_Kinds(t *testing.T) {
	def := &registry.CommandDef{Name: "emph"}
	envDef := &registry.EnvironmentDef{Name: "quote"}

	tests := []struct {
		token    Token
		expected Kind
	}{
		{ParsedText{Text: "a"}, KindText},
		{RawText{Text: "a"}, KindRawText},
		{Math{Content: "x"}, KindMath},
		{Bgroup{}, KindBgroup},
		{Egroup{}, KindEgroup},
		{Command{Def: def}, KindCommand},
		{Environment{Def: envDef}, KindEnvironment},
		{TokenList{}, KindTokenList},
		{BoolFlag{}, KindBoolFlag},
		{KeyValueList{}, KindKeyValue},
		{YAMLValue{}, KindYAML},
	}

	for _, tt := range tests {
		if got := tt.token.Kind(); got != tt.expected {
			t.Errorf("%T: expected kind %q, got %q", tt.token, tt.expected, got)
		}
	}
}

func TestToken_String(t *testing.T) {
	def := &registry.CommandDef{Name: "emph"}

	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{name: "Text", token: ParsedText{Text: "hello"}, expected: "hello"},
		{name: "Command", token: Command{Def: def}, expected: `\emph`},
		{
			name: "Token list",
			token: TokenList{Tokens: []Token{
				ParsedText{Text: "a"},
				ParsedText{Text: "b"},
			}},
			expected: "[[ab]]",
		},
		{name: "True flag", token: BoolFlag{Value: true}, expected: "true"},
		{
			name: "Key-value list",
			token: KeyValueList{Pairs: []KeyValue{
				{Key: "draft"},
				{Key: "width", Value: "10"},
			}},
			expected: "draft,width=10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDumpResults(t *testing.T) {
	def := &registry.CommandDef{Name: "emph"}
	loc := Location{File: StringSource, Line: 1, Column: 0}

	results := []Result{
		Ok(Command{
			Loc: loc,
			Def: def,
			Args: []Token{
				TokenList{Loc: loc, Tokens: []Token{ParsedText{Loc: loc, Text: "hi"}}},
			},
		}),
		Fail(&ScanError{Kind: ErrUndefinedCommand, Context: Context{Loc: loc}, Command: "nope"}),
	}

	dump := DumpResults(results)

	for _, want := range []string{`command \emph`, "arg 1:", `text "hi"`, `error: <string>:1:0: undefined command \nope`} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %q:\n%s", want, dump)
		}
	}
}

func TestTokenJSON(t *testing.T) {
	def := &registry.CommandDef{Name: "emph"}
	loc := Location{File: "a.tex", Line: 2, Column: 5}

	obj := TokenJSON(Command{
		Loc:  loc,
		Def:  def,
		Args: []Token{ParsedText{Loc: loc, Text: "x"}},
	})

	if obj["kind"] != "command" || obj["name"] != "emph" {
		t.Errorf("unexpected object %v", obj)
	}
	if obj["file"] != "a.tex" || obj["line"] != 2 || obj["column"] != 5 {
		t.Errorf("unexpected location fields in %v", obj)
	}
	args, ok := obj["args"].([]interface{})
	if !ok || len(args) != 1 {
		t.Fatalf("unexpected args %v", obj["args"])
	}
	arg := args[0].(map[string]interface{})
	if arg["kind"] != "text" || arg["text"] != "x" {
		t.Errorf("unexpected arg %v", arg)
	}
}
