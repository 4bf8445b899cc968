// File: doc.go
// Title: Command Registry Package Documentation
// Description: Package documentation for the texel command and environment
//              registry that the dispatcher resolves control sequences
//              against during scanning.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial registry implementation

/*
Package registry manages command and environment definitions for the texel
tokenizer.

A definition names a control sequence and declares its parameter list: for
each parameter slot, how the argument is delimited in source text
(ParameterFormat) and how its captured content is interpreted
(ParameterType). Definitions are immutable once registered and are shared by
handle: every Command token produced from an invocation references the same
*CommandDef the registry holds.

Definitions may be registered programmatically or loaded from YAML or TOML
definition files (see Load). Registration is allowed while a scan is in
progress — a macro-definition argument registers the command it defines into
the live registry, and later lookups in the same scan observe it.
*/
package registry
