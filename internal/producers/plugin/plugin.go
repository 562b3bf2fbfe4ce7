// Package plugin generates the extra integration stub files declared by
// the run's plugin list (payment, email, AI providers, ...). Plugins are
// data, not code: each PluginConfig names a stub kind and an env var the
// generated stub reads its credentials from.
package plugin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// knownPluginKinds maps a plugin name to the stub template it renders.
// A plugin name outside this set still produces a generic stub; under
// StrictPluginValidation that case is reported as a validation
// diagnostic instead, since an unrecognized plugin kind usually means a
// typo in config rather than intentional extensibility.
var knownPluginKinds = map[string]bool{
	"stripe":   true,
	"sendgrid": true,
	"openai":   true,
	"s3":       true,
}

// Producer emits a schema-wide integration stub per enabled plugin. It
// ignores the per-model argument; the pipeline calls it once.
type Producer struct{}

func (Producer) Produce(ctx *gencontext.GenerationContext, _ ir.Model) (map[string]string, error) {
	out := map[string]string{}
	plugins := append([]config.PluginConfig(nil), ctx.Config.Plugins()...)
	sort.Slice(plugins, func(i, j int) bool { return plugins[i].Name < plugins[j].Name })

	for _, p := range plugins {
		if !p.Enabled {
			continue
		}
		if !knownPluginKinds[p.Name] {
			if ctx.Config.StrictPluginValidation() {
				ctx.ReportError(errs.SeverityValidation, "plugins", fmt.Sprintf("plugin %q is not a recognized integration kind", p.Name))
				continue
			}
			ctx.ReportError(errs.SeverityWarn, "plugins", fmt.Sprintf("plugin %q is not a recognized integration kind, emitting a generic stub", p.Name))
		}
		path := "integrations/" + p.Name + ".integration.ts"
		out[path] = stub(p)
	}
	return out, nil
}

func stub(p config.PluginConfig) string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	fmt.Fprintf(&b, "// integration: %s\n", p.Name)
	fmt.Fprintf(&b, "const apiKey = process.env.%s;\n\n", p.EnvName)
	fmt.Fprintf(&b, "export function get%sClient() {\n", shared.PascalCase(p.Name))
	b.WriteString("  if (!apiKey) {\n")
	fmt.Fprintf(&b, "    throw new Error(\"missing environment variable %s\");\n", p.EnvName)
	b.WriteString("  }\n")
	b.WriteString("  throw new Error(\"not implemented\");\n")
	b.WriteString("}\n")
	return b.String()
}
