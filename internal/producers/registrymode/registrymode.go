// Package registrymode implements the alternative generation strategy
// selected by config.UseRegistry: instead of emitting separate DTO,
// validator, and service files per model (phases 3-5's default output),
// it emits one registration entry per model into a single consolidated
// registry.ts that a generic runtime CRUD engine reads at startup. Used
// when a project wants a dynamic route table instead of static
// generated modules.
package registrymode

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// Producer emits one model's registry entry file. When called with the
// zero Model value it emits the aggregating registry/registry.ts that
// imports every entry already registered under the "registry" family.
type Producer struct {
	AllModelNames []string
}

func (p Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	if model.Name() == "" {
		return map[string]string{
			"registry/registry.ts": p.index(),
			"registry/types.ts":    typesFile(),
		}, nil
	}
	analysis, err := ctx.GetAnalysis(model.Name())
	if err != nil {
		return nil, err
	}
	path := "registry/entries/" + model.NameLower() + ".entry.ts"
	return map[string]string{path: entryFile(model, analysis.Capabilities.HasSoftDelete)}, nil
}

func entryFile(model ir.Model, softDelete bool) string {
	name := model.Name()
	lower := model.NameLower()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import type { CrudEntry } from \"../types\";\n\n")

	fields := make([]string, 0, len(model.Fields()))
	for _, f := range model.Fields() {
		if f.Kind() == ir.KindObject {
			continue
		}
		fields = append(fields, f.Name())
	}

	fmt.Fprintf(&b, "export const %sEntry: CrudEntry = {\n", shared.CamelCase(name))
	fmt.Fprintf(&b, "  model: %q,\n", name)
	fmt.Fprintf(&b, "  resourcePath: %q,\n", lower)
	fmt.Fprintf(&b, "  fields: [%s],\n", quoteJoin(fields))
	fmt.Fprintf(&b, "  createFields: [%s],\n", quoteJoin(model.CreateFields()))
	fmt.Fprintf(&b, "  updateFields: [%s],\n", quoteJoin(model.UpdateFields()))
	fmt.Fprintf(&b, "  softDelete: %t,\n", softDelete)
	b.WriteString("};\n")
	return b.String()
}

func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}

func typesFile() string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("export interface CrudEntry {\n")
	b.WriteString("  model: string;\n")
	b.WriteString("  resourcePath: string;\n")
	b.WriteString("  fields: string[];\n")
	b.WriteString("  createFields: string[];\n")
	b.WriteString("  updateFields: string[];\n")
	b.WriteString("  softDelete: boolean;\n")
	b.WriteString("}\n")
	return b.String()
}

func (p Producer) index() string {
	names := append([]string(nil), p.AllModelNames...)
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import type { CrudEntry } from \"./types\";\n")
	for _, n := range names {
		fmt.Fprintf(&b, "import { %sEntry } from \"./entries/%s.entry\";\n", shared.CamelCase(n), strings.ToLower(n))
	}
	b.WriteString("\nexport const registry: Record<string, CrudEntry> = {\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  %s: %sEntry,\n", strings.ToLower(n), shared.CamelCase(n))
	}
	b.WriteString("};\n")
	return b.String()
}
