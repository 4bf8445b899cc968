// File: scanner.go
// Title: Text Scanner
// Description: Implements the outer text scan loop: consumes plain text,
//              dispatches on backslash, comment, and brace characters, and
//              drives the group stack. The loop is re-entered recursively
//              when an argument or environment body requires nested
//              tokenization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial text scanner

package scanner

import (
	"unicode"

	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/core/log"
	"github.com/msto63/texel/registry"
)

// DefaultMaxDepth bounds recursive argument/environment nesting when
// Options.MaxDepth is zero
const DefaultMaxDepth = 200

// Options configures a Scanner
type Options struct {
	Registry registry.Interface // Command/environment definitions (required)
	Logger   *log.Logger        // Logger; defaults to the package default
	MaxDepth int                // Maximum recursion depth; 0 means DefaultMaxDepth
}

// stopReason tells a caller why a text scan step returned
type stopReason int

const (
	// stopEOF means the line supplier is exhausted
	stopEOF stopReason = iota

	// stopComment means a % comment discarded the rest of the line;
	// callers decide whether to resume on the next line
	stopComment

	// stopArgClose means the structural closer of the innermost argument
	// scope was consumed
	stopArgClose

	// stopEnvEnd means a matching \end closed the innermost environment
	stopEnvEnd
)

// cmdSignal is the dispatcher's feedback to the text scan loop
type cmdSignal int

const (
	sigNone cmdSignal = iota
	sigEnvEnd
)

// wsOutcome is the result of a whitespace skip
type wsOutcome int

const (
	// wsSkipped means scanning can proceed at the next non-space character
	wsSkipped wsOutcome = iota

	// wsBlankLine means the skip crossed a paragraph break (two or more
	// line advances)
	wsBlankLine

	// wsEOF means the skip ran off the end of input
	wsEOF
)

// Scanner drives one tokenization run over a cursor. It is single-use:
// Run drains the input and must be called exactly once.
type Scanner struct {
	reg      registry.Interface
	cur      *Cursor
	stack    groupStack
	out      []ast.Result
	logger   *log.Logger
	maxDepth int
	depth    int

	// Active optional-argument closer. Zero when no optional argument is
	// being collected; ']' while one is.
	closer     rune
	closerNest int
}

// New creates a scanner over the given cursor
func New(cur *Cursor, opts Options) *Scanner {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Scanner{
		reg:      opts.Registry,
		cur:      cur,
		logger:   opts.Logger.WithName("texel-scanner"),
		maxDepth: opts.MaxDepth,
	}
}

// Run drains the input and returns the ordered token/error stream. After
// the last line, every scope still open is reported as an unterminated
// group, in open order.
func (s *Scanner) Run() []ast.Result {
	s.cur.AdvanceLine()

	for {
		reason := s.textParse()
		if reason == stopEOF {
			break
		}
		// Comments, stray argument closers and stray environment ends
		// terminate only one scan step; the top level always resumes.
	}

	for _, entry := range s.stack.drain() {
		s.fail(&ast.ScanError{
			Kind:    ast.ErrUnterminatedGroup,
			Context: entry.ctx,
			Group:   entry.group,
		})
	}

	tokens, errors := 0, 0
	for _, r := range s.out {
		if r.IsError() {
			errors++
		} else {
			tokens++
		}
	}
	s.logger.Debug("scan complete", log.Fields{
		"lines":  s.cur.Line().Number,
		"tokens": tokens,
		"errors": errors,
	})

	out := s.out
	s.out = nil
	return out
}

// textParse is one scan step: it consumes text until the input, the
// current argument scope, or the current line (via a comment) ends.
// Plain text is flushed as one ParsedText token per contiguous run, so a
// run never crosses a line boundary.
func (s *Scanner) textParse() stopReason {
	// Leading whitespace at the start of a line is skipped.
	if col, _, ok := s.cur.Peek(); ok && col == 0 {
		s.skipWhitespace()
	}

	start := s.cur.Pos()
	for {
		column, ch, ok := s.cur.Peek()
		if !ok {
			s.flushText(start, s.cur.Pos())
			if !s.cur.AdvanceLine() {
				return stopEOF
			}
			s.skipWhitespace()
			start = s.cur.Pos()
			continue
		}

		switch {
		case ch == '\\':
			s.flushText(start, column)
			if s.commandParse() == sigEnvEnd {
				return stopEnvEnd
			}
			start = s.cur.Pos()

		case ch == '%':
			// Comment: dump the rest of the physical line.
			s.flushText(start, column)
			s.cur.AdvanceLine()
			return stopComment

		case ch == '{':
			s.flushText(start, column)
			line := s.cur.Line()
			s.emit(ast.Bgroup{Loc: ast.LocationAt(line, column)})
			s.cur.Next()
			s.stack.push(ast.BraceGroup{}, ast.ContextAt(line, column))
			start = s.cur.Pos()

		case ch == '}':
			s.flushText(start, column)
			top, has := s.stack.top()
			switch {
			case has && isBraceGroup(top):
				s.stack.pop()
				s.emit(ast.Egroup{Loc: ast.LocationAt(s.cur.Line(), column)})
				s.cur.Next()
			case has && isRequiredArgGroup(top):
				// Structural close of an in-progress required argument:
				// consume the brace, emit nothing, hand control back to
				// the dispatcher.
				s.stack.pop()
				s.cur.Next()
				return stopArgClose
			default:
				serr := &ast.ScanError{
					Kind:    ast.ErrUnexpectedCloseBrace,
					Context: ast.ContextAt(s.cur.Line(), column),
				}
				if has {
					// The still-open scope stays on the stack; one bad
					// close brace must not lose track of it.
					serr.Group = top
				}
				s.fail(serr)
				s.cur.Next()
			}
			start = s.cur.Pos()

		case s.closer == ']' && ch == '[' && s.optionalOnTop():
			// Nested bracket inside an optional argument: plain text,
			// but its matching ] must not close the argument.
			s.closerNest++
			s.cur.Next()

		case s.closer == ']' && ch == ']' && s.optionalOnTop():
			if s.closerNest > 0 {
				s.closerNest--
				s.cur.Next()
				continue
			}
			s.flushText(start, column)
			s.stack.pop()
			s.cur.Next()
			return stopArgClose

		default:
			s.cur.Next()
		}
	}
}

// skipWhitespace consumes whitespace, advancing lines as needed. More
// than one line advance means a paragraph break, which is an error in
// argument position (the caller decides).
func (s *Scanner) skipWhitespace() wsOutcome {
	advances := 0
	for {
		_, ch, ok := s.cur.Peek()
		if !ok {
			if !s.cur.AdvanceLine() {
				return wsEOF
			}
			advances++
			continue
		}
		if !unicode.IsSpace(ch) {
			break
		}
		s.cur.Next()
	}

	if advances > 1 {
		return wsBlankLine
	}
	return wsSkipped
}

// flushText emits the pending text run [start, end) of the current line
func (s *Scanner) flushText(start, end int) {
	if start >= end {
		return
	}
	line := s.cur.Line()
	s.emit(ast.ParsedText{
		Loc:  ast.LocationAt(line, start),
		Text: line.Contents[start:end],
	})
}

func (s *Scanner) emit(token ast.Token) {
	s.out = append(s.out, ast.Ok(token))
}

func (s *Scanner) fail(serr *ast.ScanError) {
	s.out = append(s.out, ast.Fail(serr))
}

func (s *Scanner) optionalOnTop() bool {
	top, ok := s.stack.top()
	if !ok {
		return false
	}
	_, is := top.(ast.OptionalArgGroup)
	return is
}

func isBraceGroup(g ast.GroupType) bool {
	_, ok := g.(ast.BraceGroup)
	return ok
}

func isRequiredArgGroup(g ast.GroupType) bool {
	_, ok := g.(ast.RequiredArgGroup)
	return ok
}
