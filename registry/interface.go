// File: interface.go
// Title: Registry Definition Types
// Description: Defines CommandDef, EnvironmentDef, ParameterFormat and
//              ParameterType, plus the Interface implemented by registry
//              variants, to enable abstraction and testing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial definition types

package registry

import (
	"fmt"
	"strings"

	"github.com/msto63/texel/core/log"
)

// ParameterFormat describes how an argument is delimited in source text
type ParameterFormat int

const (
	// FormatStar matches an optional leading '*' (LaTeX starred variants)
	FormatStar ParameterFormat = iota

	// FormatRequired matches a braced group or, as fallback, a single token
	FormatRequired

	// FormatRequiredBraces matches a braced group only; a missing open
	// brace is an error
	FormatRequiredBraces

	// FormatOptional matches a bracketed group and is empty when absent
	FormatOptional

	// FormatDelimited captures raw text between a pair of arbitrary
	// delimiter characters (\verb|...| style)
	FormatDelimited
)

// String returns the definition-file spelling of the format
func (f ParameterFormat) String() string {
	switch f {
	case FormatStar:
		return "*"
	case FormatRequired:
		return "{}"
	case FormatRequiredBraces:
		return "{!}"
	case FormatOptional:
		return "[]"
	case FormatDelimited:
		return "delim"
	default:
		return "unknown"
	}
}

// ParseFormat parses a definition-file format spelling
func ParseFormat(s string) (ParameterFormat, error) {
	switch strings.TrimSpace(s) {
	case "*", "star":
		return FormatStar, nil
	case "{}", "required":
		return FormatRequired, nil
	case "{!}", "braced":
		return FormatRequiredBraces, nil
	case "[]", "optional":
		return FormatOptional, nil
	case "delim", "delimited":
		return FormatDelimited, nil
	default:
		return FormatRequired, fmt.Errorf("unknown parameter format: %q", s)
	}
}

// ParameterType describes how an argument's captured content is interpreted
type ParameterType int

const (
	// TypeParsedTokens tokenizes the content recursively
	TypeParsedTokens ParameterType = iota

	// TypeVerbatimText copies the content byte-for-byte
	TypeVerbatimText

	// TypeBoolean requires a recognized truth value (or star presence)
	TypeBoolean

	// TypeKeyValueList parses key=value pairs separated by commas
	TypeKeyValueList

	// TypeMacroDefinition parses a command prototype and registers it
	TypeMacroDefinition

	// TypeMath captures math content for a downstream math parser
	TypeMath

	// TypeYAML decodes the content as a YAML document
	TypeYAML
)

// String returns the definition-file spelling of the type
func (t ParameterType) String() string {
	switch t {
	case TypeParsedTokens:
		return "parsed"
	case TypeVerbatimText:
		return "verbatim"
	case TypeBoolean:
		return "boolean"
	case TypeKeyValueList:
		return "keyval"
	case TypeMacroDefinition:
		return "macro"
	case TypeMath:
		return "math"
	case TypeYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseType parses a definition-file type spelling
func ParseType(s string) (ParameterType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parsed", "tokens":
		return TypeParsedTokens, nil
	case "verbatim", "raw":
		return TypeVerbatimText, nil
	case "boolean", "bool":
		return TypeBoolean, nil
	case "keyval", "keyvalue":
		return TypeKeyValueList, nil
	case "macro", "definition":
		return TypeMacroDefinition, nil
	case "math":
		return TypeMath, nil
	case "yaml":
		return TypeYAML, nil
	default:
		return TypeParsedTokens, fmt.Errorf("unknown parameter type: %q", s)
	}
}

// Parameter declares one argument slot of a command or environment
type Parameter struct {
	Format ParameterFormat // How the argument is delimited
	Type   ParameterType   // How its content is interpreted
}

// String returns a compact rendering such as "{}:parsed"
func (p Parameter) String() string {
	return p.Format.String() + ":" + p.Type.String()
}

// CommandDef is the immutable definition of a registered command.
// Instances are shared by handle between the registry and every Command
// token produced from an invocation; they must not be mutated after
// registration.
type CommandDef struct {
	Name        string      // Control sequence name without the backslash
	Parameters  []Parameter // Ordered argument slots
	Description string      // Optional human-readable description
}

// EnvironmentDef is the immutable definition of a registered environment
type EnvironmentDef struct {
	Name        string        // Environment name as written in \begin{...}
	Parameters  []Parameter   // Ordered argument slots after \begin{name}
	BodyType    ParameterType // How the body is interpreted
	Description string        // Optional human-readable description
}

// Interface defines the registry operations the scanner depends on
type Interface interface {
	// Definition management
	DefineCommand(name string, parameters []Parameter) error
	DefineEnvironment(name string, parameters []Parameter, bodyType ParameterType) error

	// Lookups (pure reads returning shared immutable handles)
	LookupCommand(name string) (*CommandDef, bool)
	LookupEnvironment(name string) (*EnvironmentDef, bool)

	// Introspection
	CommandNames() []string
	EnvironmentNames() []string
}

// Options configures registry behavior
type Options struct {
	Logger *log.Logger
}
