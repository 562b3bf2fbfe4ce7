// Package service generates the per-model service layer: plain CRUD by
// default, an "enhanced" body (search-, soft-delete-, and junction-aware)
// when the model's UnifiedModelAnalysis capabilities call for it.
package service

import (
	"fmt"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// Producer emits one model's service file. It requires the model's
// analysis to already be in the cache (the analyze-models phase runs
// before the service phase in the canonical order).
type Producer struct{}

func (Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	analysis, err := ctx.GetAnalysis(model.Name())
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("// Code generated by servergen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "import type { Create%sDto } from \"../../contracts/%s/create.dto\";\n", model.Name(), model.NameLower())
	fmt.Fprintf(&b, "import type { Update%sDto } from \"../../contracts/%s/update.dto\";\n", model.Name(), model.NameLower())
	fmt.Fprintf(&b, "import type { %sDto } from \"../../contracts/%s/read.dto\";\n\n", model.Name(), model.NameLower())

	fmt.Fprintf(&b, "export class %sService {\n", model.Name())
	idType := "string"
	if idField, ok := model.IDField(); ok {
		idType = shared.TSType(idField)
	}

	fmt.Fprintf(&b, "  async create(data: Create%sDto): Promise<%sDto> {\n", model.Name(), model.Name())
	b.WriteString("    throw new Error(\"not implemented\");\n  }\n\n")

	if analysis.Capabilities.HasSearch {
		fmt.Fprintf(&b, "  async search(query: string): Promise<%sDto[]> {\n", model.Name())
		fmt.Fprintf(&b, "    // matches against: %s\n", strings.Join(analysis.Capabilities.SearchFields, ", "))
		b.WriteString("    throw new Error(\"not implemented\");\n  }\n\n")
	}

	if analysis.Capabilities.HasFeatured {
		fmt.Fprintf(&b, "  async findFeatured(): Promise<%sDto[]> {\n", model.Name())
		b.WriteString("    throw new Error(\"not implemented\");\n  }\n\n")
	}

	fmt.Fprintf(&b, "  async findById(id: %s): Promise<%sDto | null> {\n", idType, model.Name())
	if analysis.Capabilities.HasSoftDelete {
		fmt.Fprintf(&b, "    // excludes records where %s is set\n", analysis.Special.DeletedAtFieldName)
	}
	b.WriteString("    throw new Error(\"not implemented\");\n  }\n\n")

	fmt.Fprintf(&b, "  async update(id: %s, data: Update%sDto): Promise<%sDto> {\n", idType, model.Name(), model.Name())
	b.WriteString("    throw new Error(\"not implemented\");\n  }\n\n")

	if analysis.Capabilities.HasSoftDelete {
		fmt.Fprintf(&b, "  async softDelete(id: %s): Promise<void> {\n", idType)
		fmt.Fprintf(&b, "    // sets %s instead of removing the row\n", analysis.Special.DeletedAtFieldName)
		b.WriteString("    throw new Error(\"not implemented\");\n  }\n\n")
	} else {
		fmt.Fprintf(&b, "  async delete(id: %s): Promise<void> {\n", idType)
		b.WriteString("    throw new Error(\"not implemented\");\n  }\n\n")
	}

	if analysis.Capabilities.IsJunctionCandidate {
		b.WriteString("  // this model is a junction table; prefer composite-key lookups over a single-id API\n")
	}

	if analysis.Special.SlugFieldName != "" {
		fmt.Fprintf(&b, "  async findBySlug(slug: string): Promise<%sDto | null> {\n", model.Name())
		b.WriteString("    throw new Error(\"not implemented\");\n  }\n\n")
	}

	b.WriteString("}\n")

	path := "services/" + model.NameLower() + "/" + model.NameLower() + ".service.ts"
	return map[string]string{path: b.String()}, nil
}
