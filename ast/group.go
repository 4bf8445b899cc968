// File: group.go
// Title: Group Marker Definitions
// Description: Defines the closed set of open-scope markers tracked by the
//              scanner's group stack. Each marker variant has its own close
//              semantics; matching is done by explicit type switch, never by
//              loose equality.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial group markers

package ast

import "fmt"

// GroupType marks one open scope on the group stack
type GroupType interface {
	// String describes the open scope for diagnostics
	String() string

	groupMarker() // marker method, closes the variant set
}

// BraceGroup is a literal { ... } group in document text
type BraceGroup struct{}

// RequiredArgGroup is a braced required argument being collected
type RequiredArgGroup struct {
	Command   string // Command the argument belongs to
	Parameter int    // 1-based parameter number
}

// OptionalArgGroup is a bracketed optional argument being collected
type OptionalArgGroup struct {
	Command   string // Command the argument belongs to
	Parameter int    // 1-based parameter number
}

// EnvironmentGroup is an open \begin{name} awaiting its \end{name}
type EnvironmentGroup struct {
	Name string // Environment name
}

// DelimiterGroup is an arbitrary-delimiter span awaiting its closing
// delimiter
type DelimiterGroup struct {
	Delimiter string // The literal delimiter character(s)
}

func (g BraceGroup) String() string { return "brace group" }

func (g RequiredArgGroup) String() string {
	return fmt.Sprintf("required argument %d of \\%s", g.Parameter, g.Command)
}

func (g OptionalArgGroup) String() string {
	return fmt.Sprintf("optional argument %d of \\%s", g.Parameter, g.Command)
}

func (g EnvironmentGroup) String() string {
	return fmt.Sprintf("environment %q", g.Name)
}

func (g DelimiterGroup) String() string {
	return fmt.Sprintf("delimited span (%s)", g.Delimiter)
}

func (g BraceGroup) groupMarker()       {}
func (g RequiredArgGroup) groupMarker() {}
func (g OptionalArgGroup) groupMarker() {}
func (g EnvironmentGroup) groupMarker() {}
func (g DelimiterGroup) groupMarker()   {}
