// File: texel.go
// Title: Texel Package Facade
// Description: Package documentation and convenience entry points for the
//              texel tokenizer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-16
// Modified: 2025-08-16
//
// Change History:
// - 2025-08-16 v0.1.0: Initial facade

// Package texel tokenizes a TeX/LaTeX-like markup language: text
// interleaved with backslash commands that take typed, variously
// delimited arguments, brace groups, comments, and \begin/\end
// environments. Commands and environments are resolved against a
// registry that may grow during the scan; structured arguments are
// tokenized recursively.
//
// The output of a run is an ordered stream of ast.Result values. Each
// element is either a token or a recoverable scan error, both carrying a
// precise source location; a malformed construct degrades to one error in
// the stream without discarding the rest of the document.
//
// Typical use:
//
//	eng, err := texel.NewFromString(source, texel.Options{})
//	if err != nil {
//		return err
//	}
//	eng.DefineCommand("emph", []registry.Parameter{
//		{Format: registry.FormatRequired, Type: registry.TypeParsedTokens},
//	})
//	for _, result := range eng.Tokenize() {
//		...
//	}
package texel

import (
	"github.com/msto63/texel/ast"
)

// Version is the texel library version
const Version = "v0.1.0"

// TokenizeString is a convenience that tokenizes an in-memory source with
// a fresh engine. Commands must already live in the registry passed via
// opts; with an empty registry every control sequence is reported as
// undefined.
func TokenizeString(source string, opts Options) ([]ast.Result, error) {
	eng, err := NewFromString(source, opts)
	if err != nil {
		return nil, err
	}
	return eng.Tokenize(), nil
}
