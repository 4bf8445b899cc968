// File: doc.go
// Title: Token Model Package Documentation
// Description: Package documentation for the texel token model: source
//              locations, token variants, group markers, and the recoverable
//              scan error type emitted alongside tokens.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial token model

/*
Package ast defines the data model produced by the texel tokenizer.

Every value the scanner emits is either a Token or a *ScanError, wrapped in a
Result so the output stream preserves source order. Both carry a Location
(file, line, column) pointing into the line they were scanned from; scan
errors additionally carry the full text of the offending line so diagnostics
can be printed without re-reading the source.

Tokens form a closed set of variants: literal text runs (ParsedText, RawText,
Math), group markers (Bgroup, Egroup), resolved command and environment
invocations (Command, Environment), and argument payloads (TokenList,
BoolFlag, KeyValueList, YAMLValue). Command and Environment tokens reference
their shared registry definitions; definitions are immutable after
registration and never copied per use.

GroupType is the closed set of open-scope markers tracked by the scanner's
group stack: a literal brace group, a required or optional argument being
collected, an environment body, and an arbitrary-delimiter span.
*/
package ast
