// File: doc.go
// Title: Config Package Documentation
// Description: Package documentation for the texel configuration package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-16
// Modified: 2025-08-16
//
// Change History:
// - 2025-08-16 v0.1.0: Initial documentation

// Package config loads CLI configuration from TOML or YAML files with
// environment variable overrides.
//
// The format is auto-detected from the file extension (.toml, .yaml,
// .yml); values are accessed with dot-notation keys:
//
//	cfg, err := config.Load("texel.toml")
//	level := cfg.GetString("log.level", "info")
//	depth := cfg.GetInt("scan.max_depth", 200)
//
// When an environment prefix is configured, TEXEL_LOG_LEVEL overrides
// log.level, and so on.
package config
