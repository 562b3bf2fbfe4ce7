// Package hooks generates frontend data-fetching hooks (React, Vue,
// Svelte, Solid) over the SDK resource for each model. This phase is
// non-blocking: a diagnostic raised here never halts generation, since
// hook output is a convenience layer over the SDK, not part of the core
// contract surface.
package hooks

import (
	"fmt"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// Producer emits one hook file per configured framework for the given
// model.
type Producer struct{}

func (Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	out := map[string]string{}
	for _, fw := range ctx.Config.HooksFrameworks() {
		switch fw {
		case "react":
			out["sdk/hooks/react/use-"+model.NameLower()+".ts"] = reactHook(model)
		case "vue":
			out["sdk/hooks/vue/use-"+model.NameLower()+".ts"] = vueHook(model)
		case "svelte":
			out["sdk/hooks/svelte/"+model.NameLower()+".store.ts"] = svelteStore(model)
		case "solid":
			out["sdk/hooks/solid/use-"+model.NameLower()+".ts"] = solidHook(model)
		}
	}
	return out, nil
}

func reactHook(model ir.Model) string {
	name := model.Name()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import { useEffect, useState } from \"react\";\n")
	fmt.Fprintf(&b, "import type { %sDto } from \"../../contracts/%s/read.dto\";\n", name, model.NameLower())
	fmt.Fprintf(&b, "import type { %sResource } from \"../../sdk/resources/%s.resource\";\n\n", name, model.NameLower())

	fmt.Fprintf(&b, "export function use%s(resource: %sResource, id: string) {\n", name, name)
	fmt.Fprintf(&b, "  const [data, setData] = useState<%sDto | null>(null);\n", name)
	b.WriteString("  const [loading, setLoading] = useState(true);\n\n")
	b.WriteString("  useEffect(() => {\n")
	b.WriteString("    let cancelled = false;\n")
	b.WriteString("    setLoading(true);\n")
	b.WriteString("    resource.get(id).then((result) => {\n")
	b.WriteString("      if (!cancelled) {\n        setData(result);\n        setLoading(false);\n      }\n")
	b.WriteString("    });\n")
	b.WriteString("    return () => {\n      cancelled = true;\n    };\n")
	b.WriteString("  }, [resource, id]);\n\n")
	b.WriteString("  return { data, loading };\n}\n")
	return b.String()
}

func vueHook(model ir.Model) string {
	name := model.Name()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import { ref, onMounted } from \"vue\";\n")
	fmt.Fprintf(&b, "import type { %sDto } from \"../../contracts/%s/read.dto\";\n", name, model.NameLower())
	fmt.Fprintf(&b, "import type { %sResource } from \"../../sdk/resources/%s.resource\";\n\n", name, model.NameLower())

	fmt.Fprintf(&b, "export function use%s(resource: %sResource, id: string) {\n", name, name)
	fmt.Fprintf(&b, "  const data = ref<%sDto | null>(null);\n", name)
	b.WriteString("  const loading = ref(true);\n\n")
	b.WriteString("  onMounted(async () => {\n")
	b.WriteString("    data.value = await resource.get(id);\n")
	b.WriteString("    loading.value = false;\n")
	b.WriteString("  });\n\n")
	b.WriteString("  return { data, loading };\n}\n")
	return b.String()
}

func svelteStore(model ir.Model) string {
	name := model.Name()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import { writable } from \"svelte/store\";\n")
	fmt.Fprintf(&b, "import type { %sDto } from \"../../contracts/%s/read.dto\";\n", name, model.NameLower())
	fmt.Fprintf(&b, "import type { %sResource } from \"../../sdk/resources/%s.resource\";\n\n", name, model.NameLower())

	fmt.Fprintf(&b, "export function create%sStore(resource: %sResource, id: string) {\n", name, name)
	fmt.Fprintf(&b, "  const store = writable<%sDto | null>(null);\n", name)
	b.WriteString("  resource.get(id).then(store.set);\n")
	b.WriteString("  return store;\n}\n")
	return b.String()
}

func solidHook(model ir.Model) string {
	name := model.Name()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import { createSignal, onMount } from \"solid-js\";\n")
	fmt.Fprintf(&b, "import type { %sDto } from \"../../contracts/%s/read.dto\";\n", name, model.NameLower())
	fmt.Fprintf(&b, "import type { %sResource } from \"../../sdk/resources/%s.resource\";\n\n", name, model.NameLower())

	fmt.Fprintf(&b, "export function use%s(resource: %sResource, id: string) {\n", name, name)
	fmt.Fprintf(&b, "  const [data, setData] = createSignal<%sDto | null>(null);\n", name)
	b.WriteString("  onMount(async () => {\n")
	b.WriteString("    setData(await resource.get(id));\n")
	b.WriteString("  });\n")
	b.WriteString("  return data;\n}\n")
	return b.String()
}
