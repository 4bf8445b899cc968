// File: stack.go
// Title: Group Stack
// Description: Implements the stack of open-scope markers used to validate
//              closing braces and delimiters. Each entry remembers where
//              its scope was opened so unterminated groups can be reported
//              with a useful location.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial group stack

package scanner

import "github.com/msto63/texel/ast"

// openGroup is one entry on the group stack: the scope marker plus the
// context where it was opened
type openGroup struct {
	group ast.GroupType
	ctx   ast.Context
}

// groupStack tracks open scopes in open order
type groupStack struct {
	entries []openGroup
}

func (s *groupStack) push(group ast.GroupType, ctx ast.Context) {
	s.entries = append(s.entries, openGroup{group: group, ctx: ctx})
}

// top returns the innermost open scope without removing it
func (s *groupStack) top() (ast.GroupType, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].group, true
}

// pop removes and returns the innermost open scope
func (s *groupStack) pop() (ast.GroupType, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry.group, true
}

func (s *groupStack) depth() int {
	return len(s.entries)
}

// drain removes all entries and returns them in open order, for
// document-level unterminated-group reporting
func (s *groupStack) drain() []openGroup {
	entries := s.entries
	s.entries = nil
	return entries
}
