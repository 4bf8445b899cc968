// File: command.go
// Title: Command Dispatcher
// Description: Resolves control sequences against the registry and drives
//              per-parameter argument resolution. A command invocation
//              either fully succeeds and emits one Command token, or
//              contributes exactly one error to the stream.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial dispatcher

package scanner

import (
	"strings"
	"unicode"

	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/core/log"
	"github.com/msto63/texel/registry"
)

// ControlSpace is the name of the command produced by a backslash
// followed by whitespace or an end of line
const ControlSpace = " "

// commandParse is entered with the cursor on a backslash. It consumes the
// command name, resolves arguments per the registered definition, and
// emits either one Command token or one error.
func (s *Scanner) commandParse() cmdSignal {
	startCol, _, _ := s.cur.Next() // consume the backslash
	line := s.cur.Line()

	name := s.scanCommandName()

	// \begin and \end are dispatcher keywords, not registry entries.
	switch name {
	case "begin":
		s.environmentBegin(line, startCol)
		return sigNone
	case "end":
		return s.environmentEnd(line, startCol)
	}

	def, ok := s.reg.LookupCommand(name)
	if !ok {
		s.fail(&ast.ScanError{
			Kind:    ast.ErrUndefinedCommand,
			Context: ast.ContextAt(line, startCol),
			Command: name,
		})
		return sigNone
	}

	s.logger.Trace("dispatching command", log.Fields{
		"name":       def.Name,
		"parameters": len(def.Parameters),
		"location":   ast.LocationAt(line, startCol).String(),
	})

	args, serr := s.resolveArguments(def.Name, def.Parameters)
	if serr != nil {
		s.fail(serr)
		return sigNone
	}

	s.emit(ast.Command{
		Loc:  ast.LocationAt(line, startCol),
		Def:  def,
		Args: args,
	})
	return sigNone
}

// scanCommandName reads the command name after a backslash. A letter
// starts a maximal letter run with trailing whitespace bound to the name;
// any other character is a single-character symbol command with no
// whitespace skip. A backslash ending the line is the control space.
func (s *Scanner) scanCommandName() string {
	_, ch, ok := s.cur.Peek()
	if !ok {
		return ControlSpace
	}

	if !isCommandLetter(ch) {
		s.cur.Next()
		if unicode.IsSpace(ch) {
			return ControlSpace
		}
		return string(ch)
	}

	var name strings.Builder
	for {
		_, ch, ok := s.cur.Peek()
		if !ok || !isCommandLetter(ch) {
			break
		}
		name.WriteRune(ch)
		s.cur.Next()
	}

	// Whitespace immediately after a named command binds to the name.
	for {
		_, ch, ok := s.cur.Peek()
		if !ok || !unicode.IsSpace(ch) {
			break
		}
		s.cur.Next()
	}

	return name.String()
}

// isCommandLetter reports whether a rune may appear in a command name:
// letters plus nonspacing and spacing-combining marks. This is a category
// approximation; grapheme clusters built from regional indicators or ZWJ
// sequences are not reassembled.
func isCommandLetter(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.Is(unicode.Mn, ch) || unicode.Is(unicode.Mc, ch)
}

// resolveArguments resolves one argument per declared parameter, in
// order. The first failure aborts the remaining parameters. Every
// parameter contributes exactly one token on success, so argument indices
// stay aligned with the declared parameter list.
func (s *Scanner) resolveArguments(name string, params []registry.Parameter) ([]ast.Token, *ast.ScanError) {
	args := make([]ast.Token, 0, len(params))
	for i, param := range params {
		tok, serr := s.resolveArgument(name, i+1, param)
		if serr != nil {
			return nil, serr
		}
		args = append(args, tok)
	}
	return args, nil
}

// scanSingleCommand resolves one command invocation used as an unbraced
// required argument. Its output is collected, not appended to the outer
// stream.
func (s *Scanner) scanSingleCommand(cmd string, num int) (ast.Token, *ast.ScanError) {
	line := s.cur.Line()
	col := s.cur.Pos()

	if s.depth >= s.maxDepth {
		return nil, s.nestingTooDeep(line, col)
	}
	s.depth++
	defer func() { s.depth-- }()

	saved := s.out
	s.out = nil
	s.commandParse()
	collected := s.out
	s.out = saved

	for _, r := range collected {
		if r.IsError() {
			return nil, r.Err
		}
	}
	if len(collected) == 1 {
		return collected[0].Token, nil
	}

	// A dispatch that emits nothing (or several results) cannot serve as
	// a single-token argument.
	return nil, &ast.ScanError{
		Kind:      ast.ErrUnimplemented,
		Context:   ast.ContextAt(line, col),
		Command:   cmd,
		Parameter: num,
	}
}
