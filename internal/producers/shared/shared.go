// Package shared holds the text-generation helpers every producer needs:
// the Prisma-to-TypeScript scalar type table, field-line rendering, and
// doc-comment formatting. Keeping this in one place is what lets the DTO
// and service producers stay byte-for-byte consistent about what a
// field's TypeScript type looks like.
package shared

import (
	"fmt"
	"strings"

	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/core/parser"
	"github.com/schemaforge/servergen/internal/core/security"
)

// scalarTSTypes maps every representable Prisma scalar to its TypeScript
// counterpart. BigInt renders as bigint, not number, to keep precision
// honest; Decimal renders as string, matching how Prisma's own generated
// client represents arbitrary-precision decimals over the wire.
var scalarTSTypes = map[string]string{
	"String":   "string",
	"Int":      "number",
	"BigInt":   "bigint",
	"Float":    "number",
	"Decimal":  "string",
	"Boolean":  "boolean",
	"DateTime": "Date",
	"Json":     "unknown",
	"Bytes":    "Buffer",
}

// TSType renders a field's base TypeScript type, before list/nullable
// decoration.
func TSType(f ir.Field) string {
	switch f.Kind() {
	case ir.KindEnum:
		return f.Type()
	case ir.KindObject:
		return f.Type()
	default:
		if t, ok := scalarTSTypes[f.Type()]; ok {
			return t
		}
		return "unknown"
	}
}

// TSFieldType renders the full type expression for a field: base type,
// array suffix for lists, and a `| null` union member for nullable
// scalars.
func TSFieldType(f ir.Field) string {
	base := TSType(f)
	if f.IsList() {
		return base + "[]"
	}
	if f.IsNullable() {
		return base + " | null"
	}
	return base
}

// DocComment renders a sanitized `/** ... */` block for doc, or an empty
// string when there is nothing to document.
func DocComment(indent, doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	return fmt.Sprintf("%s/** %s */\n", indent, security.SanitizeDoc(doc))
}

// InterfaceFieldLine renders one field of a generated interface, including
// its optionality marker and, when present, a trailing default-value
// comment.
func InterfaceFieldLine(f ir.Field, optional bool) string {
	marker := ""
	if optional {
		marker = "?"
	}
	line := fmt.Sprintf("  %s%s: %s;", f.Name(), marker, TSFieldType(f))
	if def, ok := parser.GetDefaultValueString(f); ok {
		line += fmt.Sprintf(" // default: %s", def)
	}
	return line
}

// PascalCase upper-cases the first rune of s, leaving the rest untouched;
// Prisma model names are already PascalCase, but producers call this
// defensively for derived identifiers (e.g. a family name used as a type
// prefix).
func PascalCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// CamelCase lower-cases the first rune of s.
func CamelCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// GeneratedFileHeader is prepended to every producer's output so the host
// can recognize (and, if configured, skip re-formatting) generated files.
const GeneratedFileHeader = "// Code generated by servergen. DO NOT EDIT.\n\n"
