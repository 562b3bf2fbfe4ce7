package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/core/security"
)

// maxSafeInteger/minSafeInteger mirror the boundary a BigInt default must
// stay inside to be representable as a plain numeric literal; beyond this,
// precision would silently be lost.
const (
	maxSafeInteger = 1 << 53
	minSafeInteger = -(1 << 53)
)

// parseRawDefault converts a DMMF `default` value into the closed
// PrismaDefaultValue representation. DMMF represents a function-call
// default ("autoincrement()", "now()", "dbgenerated(...)") as an object
// with "name" and "args" keys, and everything else (string, number, bool,
// array, or a plain enum-member string) as a literal.
func parseRawDefault(raw any) ir.PrismaDefaultValue {
	if raw == nil {
		return ir.PrismaDefaultValue{}
	}
	if obj, ok := raw.(map[string]any); ok {
		if name, hasName := obj["name"].(string); hasName {
			args, _ := obj["args"].([]any)
			return ir.NewExpressionDefault(name, args)
		}
	}
	return ir.NewLiteralDefault(raw)
}

// GetDefaultValueString renders a field's default value as TypeScript
// source text, or reports ok=false when there is nothing safe to render:
// no default, any function-call expression default (autoincrement(),
// uuid(), now(), ...), a non-finite number, a BigInt default outside the safe-integer
// range, or a non-integer value on a BigInt field. The function is total
// (never panics on any Field) and idempotent (same Field always renders
// the same string).
func GetDefaultValueString(f ir.Field) (string, bool) {
	dv := f.Default()
	if dv.IsZero() || dv.Kind() != ir.DefaultLiteral {
		return "", false
	}
	return renderLiteral(dv.Literal(), f)
}

func renderLiteral(lit any, f ir.Field) (string, bool) {
	if f.Kind() == ir.KindEnum {
		name, ok := lit.(string)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s.%s", f.Type(), name), true
	}

	switch v := lit.(type) {
	case string:
		return fmt.Sprintf("\"%s\"", security.EscapeStringLiteral(v)), true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return renderNumber(v, f)
	case int:
		return renderNumber(float64(v), f)
	case []any:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := renderLiteral(elem, f)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return "[" + strings.Join(parts, ", ") + "]", true
	default:
		return "", false
	}
}

func renderNumber(v float64, f ir.Field) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	if f.Type() == "BigInt" {
		if v != math.Trunc(v) {
			return "", false
		}
		if v < minSafeInteger || v > maxSafeInteger {
			return "", false
		}
		return strconv.FormatInt(int64(v), 10), true
	}
	return strconv.FormatFloat(v, 'g', -1, 64), true
}
