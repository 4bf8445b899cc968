// File: doc.go
// Title: Scanner Package Documentation
// Description: Package documentation for the texel scanner.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial documentation

// Package scanner implements the core tokenization engine: a recursive
// text scanner over a line-oriented cursor, a command dispatcher that
// resolves control sequences against a registry, and per-parameter
// argument resolution driven by each parameter's format and type.
//
// The scanner is deliberately single-threaded and recursive: nesting in
// the source (braced arguments, optional arguments, environment bodies)
// maps directly onto recursive invocations of the text scan loop, with a
// group stack tracking every open scope. There is no explicit state
// machine; the call stack is the state.
//
// Recoverable parse failures never unwind the scan. They are emitted as
// ast.ScanError values interleaved with tokens in the output stream, and
// the scanner decides locally whether to continue (an undefined command
// skips only that invocation) or to abort the current nesting level (end
// of input mid-argument ends the enclosing recursive call).
//
// Recursion depth is bounded by Options.MaxDepth so pathological input
// cannot exhaust the goroutine stack.
package scanner
