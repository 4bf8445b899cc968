// File: token.go
// Title: Token Variant Definitions
// Description: Defines the closed set of token variants the scanner emits,
//              the Token interface they share, and the Result wrapper that
//              interleaves tokens and scan errors in stream order.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial token variants

package ast

import (
	"strings"

	"github.com/msto63/texel/registry"
)

// Kind identifies a token variant
type Kind string

const (
	KindText        Kind = "text"
	KindRawText     Kind = "raw"
	KindMath        Kind = "math"
	KindBgroup      Kind = "bgroup"
	KindEgroup      Kind = "egroup"
	KindCommand     Kind = "command"
	KindEnvironment Kind = "environment"
	KindTokenList   Kind = "tokens"
	KindBoolFlag    Kind = "boolean"
	KindKeyValue    Kind = "keyval"
	KindYAML        Kind = "yaml"
)

// Token is one unit of tokenizer output. Tokens are immutable once emitted
// and own their text and child tokens.
type Token interface {
	// Kind returns the token variant
	Kind() Kind

	// Location returns where in the source the token began
	Location() Location

	// String returns the token's plain-text rendering
	String() string

	tokenNode() // marker method, closes the variant set
}

// ParsedText is a literal run of document text
type ParsedText struct {
	Loc  Location
	Text string
}

// RawText is verbatim content captured without nested scanning
type RawText struct {
	Loc  Location
	Text string
}

// Math is math-mode content captured for a downstream math parser
type Math struct {
	Loc     Location
	Content string
}

// Bgroup marks an opening brace group
type Bgroup struct {
	Loc Location
}

// Egroup marks a closing brace group
type Egroup struct {
	Loc Location
}

// Command is a fully resolved command invocation. Def is the shared
// registry handle; Args holds one token per declared parameter.
type Command struct {
	Loc  Location
	Def  *registry.CommandDef
	Args []Token
}

// Environment is a fully resolved \begin...\end construct
type Environment struct {
	Loc  Location
	Def  *registry.EnvironmentDef
	Args []Token
	Body []Token
}

// TokenList is a nested token sequence, used for parsed arguments
type TokenList struct {
	Loc    Location
	Tokens []Token
}

// BoolFlag is a boolean argument value (star presence or truth literal)
type BoolFlag struct {
	Loc   Location
	Value bool
}

// KeyValue is one entry of a key-value argument
type KeyValue struct {
	Key   string
	Value string
}

// KeyValueList is a parsed key=value argument
type KeyValueList struct {
	Loc   Location
	Pairs []KeyValue
}

// YAMLValue is a decoded YAML argument. Raw preserves the captured span;
// Value holds whatever the decoder produced.
type YAMLValue struct {
	Loc   Location
	Raw   string
	Value interface{}
}

// Kind implementations

func (t ParsedText) Kind() Kind   { return KindText }
func (t RawText) Kind() Kind      { return KindRawText }
func (t Math) Kind() Kind         { return KindMath }
func (t Bgroup) Kind() Kind       { return KindBgroup }
func (t Egroup) Kind() Kind       { return KindEgroup }
func (t Command) Kind() Kind      { return KindCommand }
func (t Environment) Kind() Kind  { return KindEnvironment }
func (t TokenList) Kind() Kind    { return KindTokenList }
func (t BoolFlag) Kind() Kind     { return KindBoolFlag }
func (t KeyValueList) Kind() Kind { return KindKeyValue }
func (t YAMLValue) Kind() Kind    { return KindYAML }

// Location implementations

func (t ParsedText) Location() Location   { return t.Loc }
func (t RawText) Location() Location      { return t.Loc }
func (t Math) Location() Location         { return t.Loc }
func (t Bgroup) Location() Location       { return t.Loc }
func (t Egroup) Location() Location       { return t.Loc }
func (t Command) Location() Location      { return t.Loc }
func (t Environment) Location() Location  { return t.Loc }
func (t TokenList) Location() Location    { return t.Loc }
func (t BoolFlag) Location() Location     { return t.Loc }
func (t KeyValueList) Location() Location { return t.Loc }
func (t YAMLValue) Location() Location    { return t.Loc }

// String implementations

func (t ParsedText) String() string { return t.Text }
func (t RawText) String() string    { return t.Text }
func (t Math) String() string       { return t.Content }
func (t Bgroup) String() string     { return "bgroup" }
func (t Egroup) String() string     { return "egroup" }

func (t Command) String() string {
	return "\\" + t.Def.Name
}

func (t Environment) String() string {
	return "\\begin{" + t.Def.Name + "}…\\end{" + t.Def.Name + "}"
}

func (t TokenList) String() string {
	var sb strings.Builder
	sb.WriteString("[[")
	for _, tok := range t.Tokens {
		sb.WriteString(tok.String())
	}
	sb.WriteString("]]")
	return sb.String()
}

func (t BoolFlag) String() string {
	if t.Value {
		return "true"
	}
	return "false"
}

func (t KeyValueList) String() string {
	parts := make([]string, 0, len(t.Pairs))
	for _, pair := range t.Pairs {
		if pair.Value == "" {
			parts = append(parts, pair.Key)
		} else {
			parts = append(parts, pair.Key+"="+pair.Value)
		}
	}
	return strings.Join(parts, ",")
}

func (t YAMLValue) String() string { return t.Raw }

// Marker implementations

func (t ParsedText) tokenNode()   {}
func (t RawText) tokenNode()      {}
func (t Math) tokenNode()         {}
func (t Bgroup) tokenNode()       {}
func (t Egroup) tokenNode()       {}
func (t Command) tokenNode()      {}
func (t Environment) tokenNode()  {}
func (t TokenList) tokenNode()    {}
func (t BoolFlag) tokenNode()     {}
func (t KeyValueList) tokenNode() {}
func (t YAMLValue) tokenNode()    {}

// Result is one element of the output stream: a token or a scan error,
// never both
type Result struct {
	Token Token
	Err   *ScanError
}

// Ok wraps a token in a Result
func Ok(token Token) Result {
	return Result{Token: token}
}

// Fail wraps a scan error in a Result
func Fail(err *ScanError) Result {
	return Result{Err: err}
}

// IsError reports whether the result carries a scan error
func (r Result) IsError() bool {
	return r.Err != nil
}

// Location returns the source position of the token or error
func (r Result) Location() Location {
	if r.Err != nil {
		return r.Err.Context.Loc
	}
	return r.Token.Location()
}
