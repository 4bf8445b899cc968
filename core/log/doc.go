// File: doc.go
// Title: Structured Logging Package Documentation
// Description: Package documentation for the texel structured logging
//              facility used by the tokenizer engine, registry, and CLI.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial logging package

/*
Package log provides structured logging for the texel tokenizer.

The package offers leveled logging with contextual fields, multiple output
formats (JSON, text, console), and a process-wide default logger. Components
receive a *Logger through their Options structs and derive named sub-loggers
with WithName and WithField:

	lg := log.GetDefault().WithName("texel-scanner")
	lg.Debug("argument resolved", log.Fields{"command": name, "parameter": 2})

Loggers are immutable: the With* methods return clones, so a logger handed to
a component cannot be reconfigured behind its back.
*/
package log
