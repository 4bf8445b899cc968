// File: error.go
// Title: Recoverable Scan Error Model
// Description: Defines ScanError, the recoverable parse failure emitted into
//              the output stream alongside tokens. Scan errors carry a full
//              snapshot of the offending line and never abort the scan.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial error model

package ast

import (
	"encoding/json"
	"fmt"
)

// ErrorKind identifies a scan error variant. The set is closed: the scanner
// decides recovery behavior per kind, so new kinds require a scanner change.
type ErrorKind int

const (
	// ErrUndefinedCommand is a control sequence with no registry entry
	ErrUndefinedCommand ErrorKind = iota

	// ErrUndefinedEnvironment is a \begin naming an unknown environment
	ErrUndefinedEnvironment

	// ErrUnimplemented is a parameter format/type combination this build
	// cannot resolve
	ErrUnimplemented

	// ErrBlankLineInArguments is a paragraph break between a command and
	// one of its arguments
	ErrBlankLineInArguments

	// ErrUnexpectedEOFInArguments is input exhaustion while an argument
	// was still expected
	ErrUnexpectedEOFInArguments

	// ErrUnexpectedCloseBrace is a } with no matching open brace, or one
	// closing the wrong kind of open scope
	ErrUnexpectedCloseBrace

	// ErrMissingRequiredBrace is a braces-mandatory argument that did not
	// start with {
	ErrMissingRequiredBrace

	// ErrUnterminatedOptional is an optional argument whose ] never came
	ErrUnterminatedOptional

	// ErrUnterminatedDelimiter is a delimited argument whose closing
	// delimiter never came
	ErrUnterminatedDelimiter

	// ErrInvalidBoolean is a boolean argument with an unrecognized value
	ErrInvalidBoolean

	// ErrMalformedKeyValue is a key-value argument that could not be split
	// into pairs
	ErrMalformedKeyValue

	// ErrMalformedMacro is a macro-definition argument without a valid
	// \name prototype
	ErrMalformedMacro

	// ErrInvalidYAML is a YAML argument the decoder rejected
	ErrInvalidYAML

	// ErrMismatchedEnvironment is an \end not matching the open \begin
	ErrMismatchedEnvironment

	// ErrNestingTooDeep is group/argument nesting beyond the configured
	// maximum depth
	ErrNestingTooDeep

	// ErrUnterminatedGroup is a scope still open when input ran out,
	// reported once per open entry after the scan
	ErrUnterminatedGroup
)

// String returns the stable identifier of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrUndefinedCommand:
		return "undefined-command"
	case ErrUndefinedEnvironment:
		return "undefined-environment"
	case ErrUnimplemented:
		return "unimplemented"
	case ErrBlankLineInArguments:
		return "blank-line-in-arguments"
	case ErrUnexpectedEOFInArguments:
		return "unexpected-eof-in-arguments"
	case ErrUnexpectedCloseBrace:
		return "unexpected-close-brace"
	case ErrMissingRequiredBrace:
		return "missing-required-brace"
	case ErrUnterminatedOptional:
		return "unterminated-optional"
	case ErrUnterminatedDelimiter:
		return "unterminated-delimiter"
	case ErrInvalidBoolean:
		return "invalid-boolean"
	case ErrMalformedKeyValue:
		return "malformed-keyvalue"
	case ErrMalformedMacro:
		return "malformed-macro"
	case ErrInvalidYAML:
		return "invalid-yaml"
	case ErrMismatchedEnvironment:
		return "mismatched-environment"
	case ErrNestingTooDeep:
		return "nesting-too-deep"
	case ErrUnterminatedGroup:
		return "unterminated-group"
	default:
		return "unknown"
	}
}

// ScanError is a recoverable parse failure. It implements error, but is
// delivered as data in the output stream rather than by unwinding: the
// scanner always decides locally whether to continue or abort the current
// nesting level.
type ScanError struct {
	Kind      ErrorKind // What went wrong
	Context   Context   // Where, with the full offending line
	Command   string    // Command or environment name, when relevant
	Parameter int       // 1-based parameter number, when relevant
	Group     GroupType // Open scope involved (nil when the stack was empty)
	Detail    string    // Kind-specific detail (bad literal, delimiter, ...)
	Cause     error     // Wrapped decoder error, when relevant
}

// Error implements the standard error interface
func (e *ScanError) Error() string {
	loc := e.Context.Loc

	switch e.Kind {
	case ErrUndefinedCommand:
		return fmt.Sprintf("%s: undefined command \\%s", loc, e.Command)
	case ErrUndefinedEnvironment:
		return fmt.Sprintf("%s: undefined environment %q", loc, e.Command)
	case ErrUnimplemented:
		return fmt.Sprintf("%s: unimplemented parameter handling for \\%s (argument %d)", loc, e.Command, e.Parameter)
	case ErrBlankLineInArguments:
		return fmt.Sprintf("%s: blank line while parsing argument %d of \\%s", loc, e.Parameter, e.Command)
	case ErrUnexpectedEOFInArguments:
		return fmt.Sprintf("%s: end of input while parsing argument %d of \\%s", loc, e.Parameter, e.Command)
	case ErrUnexpectedCloseBrace:
		if e.Group == nil {
			return fmt.Sprintf("%s: unexpected } with no open group", loc)
		}
		return fmt.Sprintf("%s: unexpected } while inside %s", loc, e.Group)
	case ErrMissingRequiredBrace:
		return fmt.Sprintf("%s: argument %d of \\%s requires a braced group", loc, e.Parameter, e.Command)
	case ErrUnterminatedOptional:
		return fmt.Sprintf("%s: unterminated optional argument %d of \\%s", loc, e.Parameter, e.Command)
	case ErrUnterminatedDelimiter:
		return fmt.Sprintf("%s: missing closing delimiter %q for argument %d of \\%s", loc, e.Detail, e.Parameter, e.Command)
	case ErrInvalidBoolean:
		return fmt.Sprintf("%s: invalid boolean value %q for argument %d of \\%s", loc, e.Detail, e.Parameter, e.Command)
	case ErrMalformedKeyValue:
		return fmt.Sprintf("%s: malformed key-value list in argument %d of \\%s: %s", loc, e.Parameter, e.Command, e.Detail)
	case ErrMalformedMacro:
		return fmt.Sprintf("%s: malformed macro definition in argument %d of \\%s: %s", loc, e.Parameter, e.Command, e.Detail)
	case ErrInvalidYAML:
		return fmt.Sprintf("%s: invalid YAML in argument %d of \\%s: %v", loc, e.Parameter, e.Command, e.Cause)
	case ErrMismatchedEnvironment:
		if e.Group == nil {
			return fmt.Sprintf("%s: \\end{%s} with no open environment", loc, e.Command)
		}
		return fmt.Sprintf("%s: \\end{%s} does not close %s", loc, e.Command, e.Group)
	case ErrNestingTooDeep:
		return fmt.Sprintf("%s: nesting exceeds maximum depth (%s)", loc, e.Detail)
	case ErrUnterminatedGroup:
		return fmt.Sprintf("%s: unterminated %s at end of input", loc, e.Group)
	default:
		return fmt.Sprintf("%s: scan error", loc)
	}
}

// Unwrap exposes the wrapped cause for errors.Is/As
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// Location returns where the error occurred
func (e *ScanError) Location() Location {
	return e.Context.Loc
}

// MarshalJSON serializes the error for structured logs and JSON output
func (e *ScanError) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"kind":    e.Kind.String(),
		"file":    e.Context.Loc.File,
		"line":    e.Context.Loc.Line,
		"column":  e.Context.Loc.Column,
		"message": e.Error(),
	}

	if e.Context.LineText != "" {
		data["line_text"] = e.Context.LineText
	}
	if e.Command != "" {
		data["command"] = e.Command
	}
	if e.Parameter != 0 {
		data["parameter"] = e.Parameter
	}
	if e.Group != nil {
		data["group"] = e.Group.String()
	}
	if e.Detail != "" {
		data["detail"] = e.Detail
	}
	if e.Cause != nil {
		data["cause"] = e.Cause.Error()
	}

	return json.Marshal(data)
}
