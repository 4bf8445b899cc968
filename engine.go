// File: engine.go
// Title: Tokenizer Engine
// Description: Implements the Engine facade: input binding, registry
//              management, and single-shot tokenization runs with
//              per-run identifiers on the logger.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-16
// Modified: 2025-08-16
//
// Change History:
// - 2025-08-16 v0.1.0: Initial engine

package texel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/core/log"
	"github.com/msto63/texel/registry"
	"github.com/msto63/texel/scanner"
)

// Options configures an Engine
type Options struct {
	// Logger for scan diagnostics; defaults to the package default logger
	Logger *log.Logger

	// Registry of command/environment definitions. A fresh empty registry
	// is created when nil; pass a shared one to reuse definitions across
	// engines.
	Registry registry.Interface

	// MaxDepth bounds recursive argument/environment nesting; 0 selects
	// scanner.DefaultMaxDepth
	MaxDepth int
}

// Engine binds one input to a registry and tokenizes it. The line
// supplier is stateful, so Tokenize drains the input: the first call
// returns the full stream, later calls return an empty one.
type Engine struct {
	reg      registry.Interface
	logger   *log.Logger
	maxDepth int
	file     string
	supply   scanner.LineSupplier
}

// NewFromString creates an engine over a single in-memory source. The
// file identifier of every location is ast.StringSource.
func NewFromString(source string, opts Options) (*Engine, error) {
	return NewFromLines(LinesFromString(source), ast.StringSource, opts)
}

// NewFromLines creates an engine over an external line supplier, for
// streaming or multi-file input
func NewFromLines(lines scanner.LineSupplier, file string, opts Options) (*Engine, error) {
	if lines == nil {
		return nil, errors.New("line supplier cannot be nil")
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth cannot be negative: %d", opts.MaxDepth)
	}

	if file == "" {
		file = ast.StringSource
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Registry == nil {
		opts.Registry = registry.New(registry.Options{Logger: opts.Logger})
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = scanner.DefaultMaxDepth
	}

	eng := &Engine{
		reg:      opts.Registry,
		logger:   opts.Logger.WithName("texel"),
		maxDepth: opts.MaxDepth,
		file:     file,
		supply:   lines,
	}

	// The control space is always defined: a backslash followed by
	// whitespace (or ending a line) resolves to it.
	if _, ok := eng.reg.LookupCommand(scanner.ControlSpace); !ok {
		if err := eng.reg.DefineCommand(scanner.ControlSpace, nil); err != nil {
			return nil, fmt.Errorf("define control space: %w", err)
		}
	}

	return eng, nil
}

// DefineCommand registers a command in the engine's registry
func (e *Engine) DefineCommand(name string, parameters []registry.Parameter) error {
	return e.reg.DefineCommand(name, parameters)
}

// DefineEnvironment registers an environment in the engine's registry
func (e *Engine) DefineEnvironment(name string, parameters []registry.Parameter, bodyType registry.ParameterType) error {
	return e.reg.DefineEnvironment(name, parameters, bodyType)
}

// LoadDefinitions loads a YAML or TOML definition file into the engine's
// registry
func (e *Engine) LoadDefinitions(path string) error {
	return registry.Load(path, e.reg)
}

// Registry exposes the engine's registry, e.g. for sharing or inspection
func (e *Engine) Registry() registry.Interface {
	return e.reg
}

// Tokenize drains the input and returns the ordered token/error stream.
// Each run carries its own run ID on the logger.
func (e *Engine) Tokenize() []ast.Result {
	runID := uuid.New().String()
	logger := e.logger.WithRunID(runID)

	logger.Debug("tokenize run starting", log.Fields{
		"file":     e.file,
		"maxDepth": e.maxDepth,
	})

	cur := scanner.NewCursor(e.file, e.supply)
	sc := scanner.New(cur, scanner.Options{
		Registry: e.reg,
		Logger:   logger,
		MaxDepth: e.maxDepth,
	})
	return sc.Run()
}

// LinesFromString splits an in-memory source into a line supplier. A
// trailing newline does not produce a final empty line.
func LinesFromString(source string) scanner.LineSupplier {
	lines := strings.Split(source, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	i := 0
	return func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		line := strings.TrimSuffix(lines[i], "\r")
		i++
		return line, true
	}
}

// LinesFromReader wraps a reader in a line supplier. Read errors end the
// input early; callers needing error detail should pre-read instead.
func LinesFromReader(r io.Reader) scanner.LineSupplier {
	sc := bufio.NewScanner(r)
	return func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}
}
