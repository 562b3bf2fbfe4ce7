// Package checklist generates a per-model Markdown operational-readiness
// report: what the generator could infer automatically (search,
// soft-delete, junction status) versus what still needs a human
// decision (auth policy, rate limits). This phase is non-blocking.
package checklist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// Producer emits CHECKLIST.<model>.md.
type Producer struct{}

func (Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	analysis, err := ctx.GetAnalysis(model.Name())
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s readiness checklist\n\n", model.Name())

	b.WriteString("## Generated automatically\n\n")
	fmt.Fprintf(&b, "- [x] CRUD service and controller (%s)\n", ctx.Config.Framework())
	if analysis.Capabilities.HasSoftDelete {
		fmt.Fprintf(&b, "- [x] soft-delete via `%s`\n", analysis.Special.DeletedAtFieldName)
	} else {
		b.WriteString("- [ ] soft-delete (no deletedAt-shaped field detected)\n")
	}
	if analysis.Capabilities.HasTimestamps {
		b.WriteString("- [x] createdAt/updatedAt timestamps\n")
	}
	if analysis.Capabilities.HasSearch {
		fmt.Fprintf(&b, "- [x] search across `%s`\n", strings.Join(analysis.Capabilities.SearchFields, "`, `"))
	}
	if analysis.Capabilities.HasFeatured {
		b.WriteString("- [x] featured-items lookup\n")
	}
	if analysis.Special.SlugFieldName != "" {
		fmt.Fprintf(&b, "- [x] slug lookup via `%s`\n", analysis.Special.SlugFieldName)
	}
	if analysis.Capabilities.IsJunctionCandidate {
		b.WriteString("- [x] flagged as a many-to-many junction table\n")
	}

	b.WriteString("\n## Relationships\n\n")
	if len(analysis.Relationships) == 0 {
		b.WriteString("none\n")
	}
	for _, rel := range analysis.Relationships {
		owning := ""
		if rel.IsOwningSide {
			owning = ", owning side"
		}
		fmt.Fprintf(&b, "- `%s` → `%s` (%s%s)\n", rel.FieldName, rel.TargetModel, rel.Cardinality, owning)
	}

	b.WriteString("\n## Needs a human decision\n\n")
	b.WriteString("- [ ] authentication/authorization policy for each route\n")
	b.WriteString("- [ ] rate limiting\n")
	b.WriteString("- [ ] field-level access control on sensitive columns\n")

	writeIntegrationSamples(&b, ctx, model)

	return map[string]string{"CHECKLIST." + model.Name() + ".md": b.String()}, nil
}

// writeIntegrationSamples lists each enabled plugin stub this model's
// service can call, with a synthetic example ID so the sample reads like
// a real request rather than a placeholder. The ID is a name-based (v5)
// UUID derived from the model and plugin name, not a random one, so the
// checklist is byte-identical across runs of the same schema.
func writeIntegrationSamples(b *strings.Builder, ctx *gencontext.GenerationContext, model ir.Model) {
	plugins := append([]string(nil), pluginNames(ctx)...)
	if len(plugins) == 0 {
		return
	}
	sort.Strings(plugins)

	b.WriteString("\n## Integrations\n\n")
	for _, name := range plugins {
		sampleID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(model.Name()+":"+name)).String()
		fmt.Fprintf(b, "- `%s` stub — example call:\n", name)
		fmt.Fprintf(b, "  ```ts\n  get%sClient().charge({ referenceId: \"%s\" });\n  ```\n", shared.PascalCase(name), sampleID)
	}
}

func pluginNames(ctx *gencontext.GenerationContext) []string {
	var names []string
	for _, p := range ctx.Config.Plugins() {
		if p.Enabled {
			names = append(names, p.Name)
		}
	}
	return names
}
