// File: argument.go
// Title: Argument Resolution by Parameter Format
// Description: Resolves one argument per declared parameter according to
//              its format (star, required, required-with-braces, optional,
//              arbitrary delimiters), recursing into the text scanner for
//              parsed content and capturing raw spans for everything else.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial argument resolution

package scanner

import (
	"strconv"
	"strings"

	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/registry"
)

// resolveArgument resolves a single argument for parameter num (1-based)
// of command cmd
func (s *Scanner) resolveArgument(cmd string, num int, param registry.Parameter) (ast.Token, *ast.ScanError) {
	switch param.Format {
	case registry.FormatStar:
		return s.resolveStar(), nil
	case registry.FormatRequired:
		return s.resolveRequired(cmd, num, param.Type, false)
	case registry.FormatRequiredBraces:
		return s.resolveRequired(cmd, num, param.Type, true)
	case registry.FormatOptional:
		return s.resolveOptional(cmd, num, param.Type)
	case registry.FormatDelimited:
		return s.resolveDelimited(cmd, num, param.Type)
	default:
		return nil, &ast.ScanError{
			Kind:      ast.ErrUnimplemented,
			Context:   ast.ContextAt(s.cur.Line(), s.cur.Pos()),
			Command:   cmd,
			Parameter: num,
		}
	}
}

// resolveStar consumes an optional leading star. No whitespace is skipped
// first; presence or absence always yields a boolean flag so argument
// indices stay aligned.
func (s *Scanner) resolveStar() ast.Token {
	col, ch, ok := s.cur.Peek()
	loc := ast.LocationAt(s.cur.Line(), col)
	if ok && ch == '*' {
		s.cur.Next()
		return ast.BoolFlag{Loc: loc, Value: true}
	}
	return ast.BoolFlag{Loc: loc, Value: false}
}

// resolveRequired resolves a Required or RequiredWithBraces argument.
// Preceding whitespace is skipped; crossing a blank line or the end of
// input fails the invocation. A braced argument collects until the
// matching close brace; otherwise exactly one token is consumed, unless
// bracesOnly disallows the fallback.
func (s *Scanner) resolveRequired(cmd string, num int, ptype registry.ParameterType, bracesOnly bool) (ast.Token, *ast.ScanError) {
	if serr := s.skipBeforeArgument(cmd, num); serr != nil {
		return nil, serr
	}

	// The whitespace skip guarantees a character is available.
	col, ch, _ := s.cur.Peek()
	line := s.cur.Line()

	if ch == '{' {
		s.cur.Next()
		if ptype == registry.TypeParsedTokens {
			tokens, serr := s.scanGroupTokens(cmd, num, ast.ContextAt(line, col))
			if serr != nil {
				return nil, serr
			}
			return ast.TokenList{Loc: ast.LocationAt(line, col), Tokens: tokens}, nil
		}

		raw, serr := s.captureBraced(cmd, num, ast.ContextAt(line, col))
		if serr != nil {
			return nil, serr
		}
		return s.convertSpan(raw, ptype, ast.ContextAt(line, col), cmd, num)
	}

	if bracesOnly {
		return nil, &ast.ScanError{
			Kind:      ast.ErrMissingRequiredBrace,
			Context:   ast.ContextAt(line, col),
			Command:   cmd,
			Parameter: num,
		}
	}

	// Single-token fallback.
	switch {
	case ch == '}':
		top, _ := s.stack.top()
		return nil, &ast.ScanError{
			Kind:      ast.ErrUnexpectedCloseBrace,
			Context:   ast.ContextAt(line, col),
			Command:   cmd,
			Parameter: num,
			Group:     top,
		}
	case ch == '\\' && ptype == registry.TypeParsedTokens:
		return s.scanSingleCommand(cmd, num)
	default:
		s.cur.Next()
		return s.convertSpan(string(ch), ptype, ast.ContextAt(line, col), cmd, num)
	}
}

// resolveOptional resolves an Optional argument. An absent argument is
// not an error; it contributes an empty token list so argument indices
// stay aligned.
func (s *Scanner) resolveOptional(cmd string, num int, ptype registry.ParameterType) (ast.Token, *ast.ScanError) {
	if serr := s.skipBeforeArgument(cmd, num); serr != nil {
		return nil, serr
	}

	col, ch, _ := s.cur.Peek()
	line := s.cur.Line()

	if ch != '[' {
		return ast.TokenList{Loc: ast.LocationAt(line, col)}, nil
	}
	s.cur.Next()

	if ptype == registry.TypeParsedTokens {
		tokens, serr := s.scanOptionalTokens(cmd, num, ast.ContextAt(line, col))
		if serr != nil {
			return nil, serr
		}
		return ast.TokenList{Loc: ast.LocationAt(line, col), Tokens: tokens}, nil
	}

	raw, ok := s.captureUntil(']')
	if !ok {
		return nil, &ast.ScanError{
			Kind:      ast.ErrUnterminatedOptional,
			Context:   ast.ContextAt(line, col),
			Command:   cmd,
			Parameter: num,
		}
	}
	return s.convertSpan(raw, ptype, ast.ContextAt(line, col), cmd, num)
}

// resolveDelimited resolves an ArbitraryDelimiters argument in the
// \verb|...| style. The character at the cursor becomes the delimiter; no
// whitespace is skipped first, and the span may not cross a line.
func (s *Scanner) resolveDelimited(cmd string, num int, ptype registry.ParameterType) (ast.Token, *ast.ScanError) {
	col, delim, ok := s.cur.Peek()
	line := s.cur.Line()
	if !ok {
		return nil, &ast.ScanError{
			Kind:      ast.ErrUnexpectedEOFInArguments,
			Context:   ast.ContextAt(line, col),
			Command:   cmd,
			Parameter: num,
		}
	}
	s.cur.Next()

	ctx := ast.ContextAt(line, col)
	s.stack.push(ast.DelimiterGroup{Delimiter: string(delim)}, ctx)

	rest := s.cur.Rest()
	idx := strings.IndexRune(rest, delim)
	if idx < 0 {
		s.stack.pop()
		return nil, &ast.ScanError{
			Kind:      ast.ErrUnterminatedDelimiter,
			Context:   ctx,
			Command:   cmd,
			Parameter: num,
			Detail:    string(delim),
		}
	}

	raw := rest[:idx]
	s.cur.Consume(idx + len(string(delim)))
	s.stack.pop()
	return s.convertSpan(raw, ptype, ctx, cmd, num)
}

// skipBeforeArgument applies the whitespace rule shared by required and
// optional arguments: a paragraph break or the end of input in argument
// position fails the invocation. Both errors report at column 0 of the
// line the skip stopped on.
func (s *Scanner) skipBeforeArgument(cmd string, num int) *ast.ScanError {
	switch s.skipWhitespace() {
	case wsBlankLine:
		return &ast.ScanError{
			Kind:      ast.ErrBlankLineInArguments,
			Context:   ast.ContextAt(s.cur.Line(), 0),
			Command:   cmd,
			Parameter: num,
		}
	case wsEOF:
		return &ast.ScanError{
			Kind:      ast.ErrUnexpectedEOFInArguments,
			Context:   ast.ContextAt(s.cur.Line(), 0),
			Command:   cmd,
			Parameter: num,
		}
	}
	return nil
}

// scanGroupTokens collects the nested token sequence of a braced parsed
// argument. The open brace has been consumed; scanning continues until
// the structural close brace returns control.
func (s *Scanner) scanGroupTokens(cmd string, num int, ctx ast.Context) ([]ast.Token, *ast.ScanError) {
	if s.depth >= s.maxDepth {
		return nil, s.nestingTooDeep(s.cur.Line(), s.cur.Pos())
	}
	s.depth++
	defer func() { s.depth-- }()

	s.stack.push(ast.RequiredArgGroup{Command: cmd, Parameter: num}, ctx)

	saved := s.out
	s.out = nil
	for {
		switch s.textParse() {
		case stopArgClose:
			collected := s.out
			s.out = saved
			return s.results(collected), nil
		case stopComment, stopEnvEnd:
			continue
		case stopEOF:
			s.out = saved
			s.dropDanglingGroup()
			return nil, &ast.ScanError{
				Kind:      ast.ErrUnexpectedEOFInArguments,
				Context:   ast.ContextAt(s.cur.Line(), 0),
				Command:   cmd,
				Parameter: num,
			}
		}
	}
}

// scanOptionalTokens collects the nested token sequence of a bracketed
// parsed argument, respecting nested bracket pairs
func (s *Scanner) scanOptionalTokens(cmd string, num int, ctx ast.Context) ([]ast.Token, *ast.ScanError) {
	if s.depth >= s.maxDepth {
		return nil, s.nestingTooDeep(s.cur.Line(), s.cur.Pos())
	}
	s.depth++
	defer func() { s.depth-- }()

	s.stack.push(ast.OptionalArgGroup{Command: cmd, Parameter: num}, ctx)

	savedCloser, savedNest := s.closer, s.closerNest
	s.closer, s.closerNest = ']', 0
	defer func() { s.closer, s.closerNest = savedCloser, savedNest }()

	saved := s.out
	s.out = nil
	for {
		switch s.textParse() {
		case stopArgClose:
			collected := s.out
			s.out = saved
			return s.results(collected), nil
		case stopComment, stopEnvEnd:
			continue
		case stopEOF:
			s.out = saved
			s.dropDanglingGroup()
			return nil, &ast.ScanError{
				Kind:      ast.ErrUnterminatedOptional,
				Context:   ctx,
				Command:   cmd,
				Parameter: num,
			}
		}
	}
}

// results converts a collected sub-stream into argument content. Errors
// produced inside the argument stay in order as part of the outer stream
// so they are not lost; only tokens form the argument.
func (s *Scanner) results(collected []ast.Result) []ast.Token {
	tokens := make([]ast.Token, 0, len(collected))
	for _, r := range collected {
		if r.IsError() {
			s.fail(r.Err)
			continue
		}
		tokens = append(tokens, r.Token)
	}
	return tokens
}

// captureBraced captures the raw text of a braced non-parsed argument up
// to the matching close brace, counting nested braces. Lines are joined
// with a newline.
func (s *Scanner) captureBraced(cmd string, num int, ctx ast.Context) (string, *ast.ScanError) {
	var sb strings.Builder
	depth := 0
	for {
		_, ch, ok := s.cur.Peek()
		if !ok {
			if !s.cur.AdvanceLine() {
				return "", &ast.ScanError{
					Kind:      ast.ErrUnexpectedEOFInArguments,
					Context:   ctx,
					Command:   cmd,
					Parameter: num,
				}
			}
			sb.WriteByte('\n')
			continue
		}
		s.cur.Next()
		switch ch {
		case '{':
			depth++
			sb.WriteRune(ch)
		case '}':
			if depth == 0 {
				return sb.String(), nil
			}
			depth--
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
	}
}

// captureUntil captures raw text up to the first occurrence of the
// closing rune, crossing lines as needed. ok is false when the input ends
// first.
func (s *Scanner) captureUntil(close rune) (string, bool) {
	var sb strings.Builder
	for {
		rest := s.cur.Rest()
		if idx := strings.IndexRune(rest, close); idx >= 0 {
			sb.WriteString(rest[:idx])
			s.cur.Consume(idx + len(string(close)))
			return sb.String(), true
		}
		sb.WriteString(rest)
		s.cur.Consume(len(rest))
		if !s.cur.AdvanceLine() {
			return "", false
		}
		sb.WriteByte('\n')
	}
}

// dropDanglingGroup removes the innermost argument scope after an aborted
// collection, so the failed argument is not additionally reported as an
// unterminated group at end of input
func (s *Scanner) dropDanglingGroup() {
	top, ok := s.stack.top()
	if !ok {
		return
	}
	switch top.(type) {
	case ast.RequiredArgGroup, ast.OptionalArgGroup:
		s.stack.pop()
	}
}

func (s *Scanner) nestingTooDeep(line ast.Line, col int) *ast.ScanError {
	return &ast.ScanError{
		Kind:    ast.ErrNestingTooDeep,
		Context: ast.ContextAt(line, col),
		Detail:  strconv.Itoa(s.maxDepth),
	}
}
