// File: dump.go
// Title: Token Stream Rendering
// Description: Renders token/error streams as an indented text tree and as
//              JSON-friendly objects, for CLI output and the REPL.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-16
// Modified: 2025-08-16
//
// Change History:
// - 2025-08-16 v0.1.0: Initial stream rendering

package ast

import (
	"fmt"
	"strings"
)

// DumpResults renders a result stream as an indented text tree, one
// top-level result per line group
func DumpResults(results []Result) string {
	var sb strings.Builder
	for _, r := range results {
		if r.IsError() {
			fmt.Fprintf(&sb, "error: %s\n", r.Err.Error())
			continue
		}
		dumpToken(&sb, r.Token, 0)
	}
	return sb.String()
}

func dumpToken(sb *strings.Builder, t Token, depth int) {
	indent := strings.Repeat("  ", depth)

	switch tok := t.(type) {
	case ParsedText:
		fmt.Fprintf(sb, "%s%s text %q\n", indent, tok.Loc, tok.Text)
	case RawText:
		fmt.Fprintf(sb, "%s%s raw %q\n", indent, tok.Loc, tok.Text)
	case Math:
		fmt.Fprintf(sb, "%s%s math %q\n", indent, tok.Loc, tok.Content)
	case Bgroup:
		fmt.Fprintf(sb, "%s%s bgroup\n", indent, tok.Loc)
	case Egroup:
		fmt.Fprintf(sb, "%s%s egroup\n", indent, tok.Loc)
	case BoolFlag:
		fmt.Fprintf(sb, "%s%s boolean %v\n", indent, tok.Loc, tok.Value)
	case KeyValueList:
		fmt.Fprintf(sb, "%s%s keyval %s\n", indent, tok.Loc, tok.String())
	case YAMLValue:
		fmt.Fprintf(sb, "%s%s yaml %q\n", indent, tok.Loc, tok.Raw)
	case TokenList:
		fmt.Fprintf(sb, "%s%s tokens\n", indent, tok.Loc)
		for _, child := range tok.Tokens {
			dumpToken(sb, child, depth+1)
		}
	case Command:
		fmt.Fprintf(sb, "%s%s command \\%s\n", indent, tok.Loc, tok.Def.Name)
		for i, arg := range tok.Args {
			fmt.Fprintf(sb, "%s  arg %d:\n", indent, i+1)
			dumpToken(sb, arg, depth+2)
		}
	case Environment:
		fmt.Fprintf(sb, "%s%s environment %s\n", indent, tok.Loc, tok.Def.Name)
		for i, arg := range tok.Args {
			fmt.Fprintf(sb, "%s  arg %d:\n", indent, i+1)
			dumpToken(sb, arg, depth+2)
		}
		fmt.Fprintf(sb, "%s  body:\n", indent)
		for _, child := range tok.Body {
			dumpToken(sb, child, depth+2)
		}
	default:
		fmt.Fprintf(sb, "%s%s %s\n", indent, t.Location(), t.Kind())
	}
}

// ResultJSON converts one result into a JSON-encodable object. Errors use
// their own MarshalJSON shape.
func ResultJSON(r Result) interface{} {
	if r.IsError() {
		return r.Err
	}
	return TokenJSON(r.Token)
}

// TokenJSON converts a token into a JSON-encodable object with nested
// child tokens
func TokenJSON(t Token) map[string]interface{} {
	loc := t.Location()
	obj := map[string]interface{}{
		"kind":   string(t.Kind()),
		"file":   loc.File,
		"line":   loc.Line,
		"column": loc.Column,
	}

	switch tok := t.(type) {
	case ParsedText:
		obj["text"] = tok.Text
	case RawText:
		obj["text"] = tok.Text
	case Math:
		obj["content"] = tok.Content
	case BoolFlag:
		obj["value"] = tok.Value
	case KeyValueList:
		pairs := make([]map[string]string, 0, len(tok.Pairs))
		for _, p := range tok.Pairs {
			pairs = append(pairs, map[string]string{"key": p.Key, "value": p.Value})
		}
		obj["pairs"] = pairs
	case YAMLValue:
		obj["raw"] = tok.Raw
		obj["value"] = tok.Value
	case TokenList:
		obj["tokens"] = tokensJSON(tok.Tokens)
	case Command:
		obj["name"] = tok.Def.Name
		obj["args"] = tokensJSON(tok.Args)
	case Environment:
		obj["name"] = tok.Def.Name
		obj["args"] = tokensJSON(tok.Args)
		obj["body"] = tokensJSON(tok.Body)
	}

	return obj
}

func tokensJSON(tokens []Token) []interface{} {
	out := make([]interface{}, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, TokenJSON(t))
	}
	return out
}
