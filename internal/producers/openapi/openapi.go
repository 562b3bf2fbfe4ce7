// Package openapi generates a single OpenAPI 3.0 document describing
// every model's CRUD surface. It is a schema-wide producer: the pipeline
// calls it once with the zero Model value after every per-model contract
// phase has run, so every schema component it references already exists
// in the generation context.
package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
)

// Producer emits openapi/openapi.json. It expects to be routed with
// ctx.Schema's own models, read off the context's Schema field, so its
// Produce implementation ignores the single-model argument entirely.
type Producer struct{}

func (Producer) Produce(ctx *gencontext.GenerationContext, _ ir.Model) (map[string]string, error) {
	models := ctx.Schema.Models()
	sort.Slice(models, func(i, j int) bool { return models[i].Name() < models[j].Name() })

	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"openapi\": \"3.0.3\",\n")
	b.WriteString("  \"info\": { \"title\": \"Generated API\", \"version\": \"1.0.0\" },\n")
	b.WriteString("  \"paths\": {\n")
	for i, m := range models {
		writePathItem(&b, m)
		if i != len(models)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("  },\n")
	b.WriteString("  \"components\": { \"schemas\": {\n")
	for i, m := range models {
		writeComponentSchema(&b, m)
		if i != len(models)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("  } }\n")
	b.WriteString("}\n")

	return map[string]string{"openapi/openapi.json": b.String()}, nil
}

func writePathItem(b *strings.Builder, m ir.Model) {
	lower := m.NameLower()
	fmt.Fprintf(b, "    \"/%s\": {\n", lower)
	fmt.Fprintf(b, "      \"post\": { \"operationId\": \"create%s\", \"requestBody\": { \"content\": { \"application/json\": { \"schema\": { \"$ref\": \"#/components/schemas/Create%s\" } } } }, \"responses\": { \"201\": { \"description\": \"created\" } } },\n", m.Name(), m.Name())
	fmt.Fprintf(b, "      \"get\": { \"operationId\": \"list%s\", \"responses\": { \"200\": { \"description\": \"ok\" } } }\n", m.Name())
	fmt.Fprintf(b, "    },\n")
	fmt.Fprintf(b, "    \"/%s/{id}\": {\n", lower)
	fmt.Fprintf(b, "      \"get\": { \"operationId\": \"get%s\", \"responses\": { \"200\": { \"description\": \"ok\" }, \"404\": { \"description\": \"not found\" } } },\n", m.Name())
	fmt.Fprintf(b, "      \"patch\": { \"operationId\": \"update%s\", \"responses\": { \"200\": { \"description\": \"ok\" } } },\n", m.Name())
	fmt.Fprintf(b, "      \"delete\": { \"operationId\": \"delete%s\", \"responses\": { \"204\": { \"description\": \"deleted\" } } }\n", m.Name())
	fmt.Fprintf(b, "    }")
}

func writeComponentSchema(b *strings.Builder, m ir.Model) {
	fmt.Fprintf(b, "    \"%s\": {\n      \"type\": \"object\",\n      \"properties\": {\n", m.Name())
	var props []string
	for _, f := range m.Fields() {
		if f.Kind() == ir.KindObject || f.Kind() == ir.KindUnsupported {
			continue
		}
		props = append(props, fmt.Sprintf("        \"%s\": { \"type\": %q }", f.Name(), jsonSchemaType(f)))
	}
	if len(props) > 0 {
		b.WriteString(strings.Join(props, ",\n"))
		b.WriteString("\n")
	}
	b.WriteString("      }\n    }")
}

func jsonSchemaType(f ir.Field) string {
	switch f.Type() {
	case "Int", "Float", "Decimal", "BigInt":
		return "number"
	case "Boolean":
		return "boolean"
	default:
		return "string"
	}
}
