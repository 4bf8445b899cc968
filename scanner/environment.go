// File: environment.go
// Title: Environment Handling
// Description: Implements \begin{name}...\end{name} constructs: argument
//              resolution per the environment definition and body capture
//              per the declared body type. Parsed bodies are scanned
//              recursively with an environment scope on the group stack;
//              other body types capture raw text up to the matching \end.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial environment handling

package scanner

import (
	"strings"

	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/registry"
)

// environmentBegin is entered after "\begin" has been consumed. On full
// success it emits one Environment token carrying the resolved arguments
// and the captured body; any failure contributes exactly one error.
func (s *Scanner) environmentBegin(line ast.Line, startCol int) {
	name, serr := s.scanEnvName("begin", startCol)
	if serr != nil {
		s.fail(serr)
		return
	}

	def, ok := s.reg.LookupEnvironment(name)
	if !ok {
		s.fail(&ast.ScanError{
			Kind:    ast.ErrUndefinedEnvironment,
			Context: ast.ContextAt(line, startCol),
			Command: name,
		})
		return
	}

	args, serr := s.resolveArguments(def.Name, def.Parameters)
	if serr != nil {
		s.fail(serr)
		return
	}

	ctx := ast.ContextAt(line, startCol)
	s.stack.push(ast.EnvironmentGroup{Name: name}, ctx)

	var body []ast.Token
	if def.BodyType == registry.TypeParsedTokens {
		body, serr = s.scanEnvironmentBody(name)
	} else {
		var raw string
		raw, serr = s.captureEnvironmentRaw(name, ctx)
		if serr == nil {
			var tok ast.Token
			tok, serr = s.convertSpan(raw, def.BodyType, ctx, name, 0)
			if serr == nil {
				body = []ast.Token{tok}
			}
		}
	}
	if serr != nil {
		s.fail(serr)
		return
	}

	s.emit(ast.Environment{
		Loc:  ast.LocationAt(line, startCol),
		Def:  def,
		Args: args,
		Body: body,
	})
}

// environmentEnd is entered after "\end" has been consumed. A matching
// innermost environment is popped and signalled to the body scan; any
// other open scope (or none) is a mismatch, reported without disturbing
// the stack.
func (s *Scanner) environmentEnd(line ast.Line, startCol int) cmdSignal {
	name, serr := s.scanEnvName("end", startCol)
	if serr != nil {
		s.fail(serr)
		return sigNone
	}

	top, has := s.stack.top()
	if has {
		if env, is := top.(ast.EnvironmentGroup); is && env.Name == name {
			s.stack.pop()
			return sigEnvEnd
		}
	}

	serr = &ast.ScanError{
		Kind:    ast.ErrMismatchedEnvironment,
		Context: ast.ContextAt(line, startCol),
		Command: name,
	}
	if has {
		serr.Group = top
	}
	s.fail(serr)
	return sigNone
}

// scanEnvName reads the braced environment name after \begin or \end.
// The name must open on the same construct and close on the same line.
func (s *Scanner) scanEnvName(keyword string, startCol int) (string, *ast.ScanError) {
	line := s.cur.Line()

	col, ch, ok := s.cur.Peek()
	if !ok || ch != '{' {
		return "", &ast.ScanError{
			Kind:      ast.ErrMissingRequiredBrace,
			Context:   ast.ContextAt(line, col),
			Command:   keyword,
			Parameter: 1,
		}
	}
	s.cur.Next()

	rest := s.cur.Rest()
	idx := strings.IndexRune(rest, '}')
	if idx < 0 {
		return "", &ast.ScanError{
			Kind:      ast.ErrUnexpectedEOFInArguments,
			Context:   ast.ContextAt(line, startCol),
			Command:   keyword,
			Parameter: 1,
		}
	}

	name := strings.TrimSpace(rest[:idx])
	s.cur.Consume(idx + 1)

	if name == "" {
		return "", &ast.ScanError{
			Kind:    ast.ErrUndefinedEnvironment,
			Context: ast.ContextAt(line, startCol),
			Command: name,
		}
	}
	return name, nil
}

// scanEnvironmentBody collects the token sequence of a parsed environment
// body until the matching \end pops the environment scope
func (s *Scanner) scanEnvironmentBody(name string) ([]ast.Token, *ast.ScanError) {
	if s.depth >= s.maxDepth {
		s.dropDanglingEnvironment(name)
		return nil, s.nestingTooDeep(s.cur.Line(), s.cur.Pos())
	}
	s.depth++
	defer func() { s.depth-- }()

	saved := s.out
	s.out = nil
	for {
		switch s.textParse() {
		case stopEnvEnd:
			collected := s.out
			s.out = saved
			return s.results(collected), nil
		case stopComment, stopArgClose:
			continue
		case stopEOF:
			collected := s.out
			s.out = saved
			// Keep errors from the partial body; the body tokens are
			// discarded with the failed construct.
			for _, r := range collected {
				if r.IsError() {
					s.fail(r.Err)
				}
			}
			s.dropDanglingEnvironment(name)
			return nil, &ast.ScanError{
				Kind:    ast.ErrUnterminatedGroup,
				Context: ast.ContextAt(s.cur.Line(), 0),
				Command: name,
				Group:   ast.EnvironmentGroup{Name: name},
			}
		}
	}
}

// captureEnvironmentRaw captures raw body text up to the literal
// \end{name} marker, crossing lines as needed
func (s *Scanner) captureEnvironmentRaw(name string, ctx ast.Context) (string, *ast.ScanError) {
	marker := "\\end{" + name + "}"

	var sb strings.Builder
	for {
		rest := s.cur.Rest()
		if idx := strings.Index(rest, marker); idx >= 0 {
			sb.WriteString(rest[:idx])
			s.cur.Consume(idx + len(marker))
			s.stack.pop() // the environment scope
			return sb.String(), nil
		}

		sb.WriteString(rest)
		s.cur.Consume(len(rest))
		if !s.cur.AdvanceLine() {
			s.dropDanglingEnvironment(name)
			return "", &ast.ScanError{
				Kind:    ast.ErrUnterminatedGroup,
				Context: ctx,
				Command: name,
				Group:   ast.EnvironmentGroup{Name: name},
			}
		}
		sb.WriteByte('\n')
	}
}

// dropDanglingEnvironment removes the environment scope after an aborted
// body capture, so it is not additionally reported as unterminated at end
// of input
func (s *Scanner) dropDanglingEnvironment(name string) {
	top, ok := s.stack.top()
	if !ok {
		return
	}
	if env, is := top.(ast.EnvironmentGroup); is && env.Name == name {
		s.stack.pop()
	}
}
