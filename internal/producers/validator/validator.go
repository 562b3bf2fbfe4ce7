// Package validator generates the runtime validation schemas (zod) that
// guard each DTO at the HTTP boundary, sharing field-shape logic with the
// dto package's output so the two never drift apart.
package validator

import (
	"fmt"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/core/parser"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// Producer emits one model's validator family.
type Producer struct{}

func (Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	base := "validators/" + model.NameLower()
	return map[string]string{
		base + "/create.validator.ts": buildValidator(model, "Create", model.CreateFields(), false),
		base + "/update.validator.ts": buildValidator(model, "Update", model.UpdateFields(), true),
	}, nil
}

func buildValidator(model ir.Model, verb string, fieldNames []string, forceOptional bool) string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import { z } from \"zod\";\n\n")
	fmt.Fprintf(&b, "export const %s%sSchema = z.object({\n", shared.CamelCase(verb), model.Name())
	for _, name := range fieldNames {
		f, ok := model.Field(name)
		if !ok {
			continue
		}
		b.WriteString("  ")
		b.WriteString(f.Name())
		b.WriteString(": ")
		b.WriteString(zodExpr(f))
		if forceOptional || parser.IsOptionalForCreate(f) {
			b.WriteString(".optional()")
		}
		if f.IsNullable() {
			b.WriteString(".nullable()")
		}
		b.WriteString(",\n")
	}
	b.WriteString("});\n\n")
	fmt.Fprintf(&b, "export type %s%sInput = z.infer<typeof %s%sSchema>;\n",
		shared.PascalCase(verb), model.Name(), shared.CamelCase(verb), model.Name())
	return b.String()
}

func zodExpr(f ir.Field) string {
	switch f.Kind() {
	case ir.KindEnum:
		return fmt.Sprintf("z.nativeEnum(%s)", f.Type())
	case ir.KindObject:
		return "z.unknown()"
	}
	switch f.Type() {
	case "String":
		expr := "z.string()"
		if f.IsList() {
			return "z.array(" + expr + ")"
		}
		return expr
	case "Int":
		return listWrap(f, "z.number().int()")
	case "BigInt":
		return listWrap(f, "z.bigint()")
	case "Float", "Decimal":
		return listWrap(f, "z.number()")
	case "Boolean":
		return listWrap(f, "z.boolean()")
	case "DateTime":
		return listWrap(f, "z.coerce.date()")
	case "Json":
		return listWrap(f, "z.unknown()")
	case "Bytes":
		return listWrap(f, "z.instanceof(Buffer)")
	default:
		return "z.unknown()"
	}
}

func listWrap(f ir.Field, expr string) string {
	if f.IsList() {
		return "z.array(" + expr + ")"
	}
	return expr
}
