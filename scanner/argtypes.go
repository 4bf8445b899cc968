// File: argtypes.go
// Title: Argument Type Handlers
// Description: Converts a captured argument span into its token per the
//              parameter's declared type: verbatim copy, boolean literal,
//              key-value list, macro definition (registered live), math
//              capture, or YAML decoding.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial type handlers

package scanner

import (
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/core/log"
	"github.com/msto63/texel/registry"
)

// convertSpan turns a captured raw span into the argument's token
// according to the parameter type. ParsedTokens spans reach this path
// only for single-character fallbacks and delimited captures, where no
// nested scan applies.
func (s *Scanner) convertSpan(raw string, ptype registry.ParameterType, ctx ast.Context, cmd string, num int) (ast.Token, *ast.ScanError) {
	loc := ctx.Loc

	switch ptype {
	case registry.TypeParsedTokens:
		return ast.ParsedText{Loc: loc, Text: raw}, nil

	case registry.TypeVerbatimText:
		return ast.RawText{Loc: loc, Text: raw}, nil

	case registry.TypeBoolean:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "yes":
			return ast.BoolFlag{Loc: loc, Value: true}, nil
		case "false", "no":
			return ast.BoolFlag{Loc: loc, Value: false}, nil
		default:
			return nil, &ast.ScanError{
				Kind:      ast.ErrInvalidBoolean,
				Context:   ctx,
				Command:   cmd,
				Parameter: num,
				Detail:    strings.TrimSpace(raw),
			}
		}

	case registry.TypeKeyValueList:
		pairs, detail := parseKeyValues(raw)
		if detail != "" {
			return nil, &ast.ScanError{
				Kind:      ast.ErrMalformedKeyValue,
				Context:   ctx,
				Command:   cmd,
				Parameter: num,
				Detail:    detail,
			}
		}
		return ast.KeyValueList{Loc: loc, Pairs: pairs}, nil

	case registry.TypeMacroDefinition:
		return s.defineMacro(raw, ctx, cmd, num)

	case registry.TypeMath:
		return ast.Math{Loc: loc, Content: raw}, nil

	case registry.TypeYAML:
		var value interface{}
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, &ast.ScanError{
				Kind:      ast.ErrInvalidYAML,
				Context:   ctx,
				Command:   cmd,
				Parameter: num,
				Cause:     err,
			}
		}
		return ast.YAMLValue{Loc: loc, Raw: raw, Value: value}, nil

	default:
		return nil, &ast.ScanError{
			Kind:      ast.ErrUnimplemented,
			Context:   ctx,
			Command:   cmd,
			Parameter: num,
		}
	}
}

// parseKeyValues splits a key-value span into pairs. Entries are comma
// separated; braces protect commas and equals signs inside values. A
// bare key without '=' is kept with an empty value. The second return
// value is a non-empty detail string on malformed input.
func parseKeyValues(raw string) ([]ast.KeyValue, string) {
	entries := splitTopLevel(raw, ',')
	pairs := make([]ast.KeyValue, 0, len(entries))

	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue // tolerate trailing commas
		}

		key, value := cutTopLevel(entry, '=')
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, "entry " + strings.TrimSpace(entry) + " has an empty key"
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 && value[0] == '{' && value[len(value)-1] == '}' {
			value = value[1 : len(value)-1]
		}

		pairs = append(pairs, ast.KeyValue{Key: key, Value: value})
	}

	return pairs, ""
}

// splitTopLevel splits on sep outside any brace pair
func splitTopLevel(raw string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, ch := range raw {
		switch ch {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, raw[start:i])
				start = i + utf8.RuneLen(sep)
			}
		}
	}
	return append(parts, raw[start:])
}

// cutTopLevel splits at the first sep outside any brace pair; the second
// part is empty when sep is absent
func cutTopLevel(raw string, sep rune) (string, string) {
	depth := 0
	for i, ch := range raw {
		switch ch {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				return raw[:i], raw[i+utf8.RuneLen(sep):]
			}
		}
	}
	return raw, ""
}

// defineMacro parses a macro prototype and registers the new command into
// the live registry, making it resolvable for the rest of the parse. The
// prototype is the control sequence being defined, optionally followed by
// whitespace-separated parameter slots in "format:type" spelling, e.g.
//
//	\chapter *:boolean []:keyval {}:parsed
//
// The returned token is the raw prototype span.
func (s *Scanner) defineMacro(raw string, ctx ast.Context, cmd string, num int) (ast.Token, *ast.ScanError) {
	proto := strings.TrimSpace(raw)

	malformed := func(detail string, cause error) *ast.ScanError {
		return &ast.ScanError{
			Kind:      ast.ErrMalformedMacro,
			Context:   ctx,
			Command:   cmd,
			Parameter: num,
			Detail:    detail,
			Cause:     cause,
		}
	}

	if !strings.HasPrefix(proto, "\\") {
		return nil, malformed("prototype must start with a backslash", nil)
	}

	rest := proto[1:]
	name := ""
	for _, ch := range rest {
		if !isCommandLetter(ch) {
			break
		}
		name += string(ch)
	}
	if name == "" {
		// Symbol command prototype: the single character after the
		// backslash is the name.
		ch, size := utf8.DecodeRuneInString(rest)
		if size == 0 {
			return nil, malformed("missing command name", nil)
		}
		name = string(ch)
	}

	var params []registry.Parameter
	for _, field := range strings.Fields(rest[len(name):]) {
		spec := strings.SplitN(field, ":", 2)
		if len(spec) != 2 {
			return nil, malformed("parameter slot "+field+" is not format:type", nil)
		}
		format, err := registry.ParseFormat(spec[0])
		if err != nil {
			return nil, malformed("parameter slot "+field, err)
		}
		ptype, err := registry.ParseType(spec[1])
		if err != nil {
			return nil, malformed("parameter slot "+field, err)
		}
		params = append(params, registry.Parameter{Format: format, Type: ptype})
	}

	if err := s.reg.DefineCommand(name, params); err != nil {
		return nil, malformed("registration failed", err)
	}

	s.logger.Debug("macro defined during scan", log.Fields{
		"name":       name,
		"parameters": len(params),
		"location":   ctx.Loc.String(),
	})

	return ast.RawText{Loc: ctx.Loc, Text: proto}, nil
}
