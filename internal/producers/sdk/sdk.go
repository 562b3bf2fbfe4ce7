// Package sdk generates the typed client SDK: one resource module per
// model plus a schema-wide client class that composes them. The
// per-model modules have no dependency on one another, which is what
// lets the sdk phase generate them concurrently.
package sdk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// Producer emits one model's SDK resource module. When called with the
// zero Model value it instead emits the aggregate client and the version
// constant.
type Producer struct {
	AllModelNames []string
	SdkVersion    string
}

const httpClientPath = "sdk/http-client.ts"

func (p Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	if model.Name() == "" {
		return map[string]string{
			"sdk/client.ts":  p.clientIndex(),
			"sdk/version.ts": p.versionFile(),
		}, nil
	}
	out := map[string]string{}
	if !ctx.PathRegistry().Has(httpClientPath) {
		out[httpClientPath] = shared.GeneratedFileHeader +
			"export interface HttpClient {\n  request<T>(method: string, path: string, body?: unknown): Promise<T>;\n}\n"
	}
	path := "sdk/resources/" + model.NameLower() + ".resource.ts"
	out[path] = resourceFile(model)
	return out, nil
}

func resourceFile(model ir.Model) string {
	name := model.Name()
	lower := model.NameLower()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	fmt.Fprintf(&b, "import type { Create%sDto } from \"../../contracts/%s/create.dto\";\n", name, lower)
	fmt.Fprintf(&b, "import type { Update%sDto } from \"../../contracts/%s/update.dto\";\n", name, lower)
	fmt.Fprintf(&b, "import type { %sDto } from \"../../contracts/%s/read.dto\";\n", name, lower)
	fmt.Fprintf(&b, "import type { Query%sDto } from \"../../contracts/%s/query.dto\";\n", name, lower)
	b.WriteString("import type { HttpClient } from \"../http-client\";\n\n")

	fmt.Fprintf(&b, "export class %sResource {\n", name)
	b.WriteString("  constructor(private readonly http: HttpClient) {}\n\n")

	fmt.Fprintf(&b, "  create(data: Create%sDto): Promise<%sDto> {\n", name, name)
	fmt.Fprintf(&b, "    return this.http.request(\"POST\", \"/%s\", data);\n  }\n\n", lower)

	fmt.Fprintf(&b, "  get(id: string): Promise<%sDto> {\n", name)
	fmt.Fprintf(&b, "    return this.http.request(\"GET\", `/%s/${id}`);\n  }\n\n", lower)

	fmt.Fprintf(&b, "  update(id: string, data: Update%sDto): Promise<%sDto> {\n", name, name)
	fmt.Fprintf(&b, "    return this.http.request(\"PATCH\", `/%s/${id}`, data);\n  }\n\n", lower)

	fmt.Fprintf(&b, "  delete(id: string): Promise<void> {\n")
	fmt.Fprintf(&b, "    return this.http.request(\"DELETE\", `/%s/${id}`);\n  }\n\n", lower)

	fmt.Fprintf(&b, "  list(query?: Query%sDto): Promise<%sDto[]> {\n", name, name)
	fmt.Fprintf(&b, "    return this.http.request(\"GET\", \"/%s\", query);\n  }\n", lower)
	b.WriteString("}\n")
	return b.String()
}

func (p Producer) clientIndex() string {
	names := append([]string(nil), p.AllModelNames...)
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	for _, n := range names {
		lower := strings.ToLower(n)
		fmt.Fprintf(&b, "import { %sResource } from \"./resources/%s.resource\";\n", n, lower)
	}
	b.WriteString("import type { HttpClient } from \"./http-client\";\n\n")

	b.WriteString("export class ApiClient {\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  readonly %s: %sResource;\n", shared.CamelCase(n), n)
	}
	b.WriteString("\n  constructor(http: HttpClient) {\n")
	for _, n := range names {
		fmt.Fprintf(&b, "    this.%s = new %sResource(http);\n", shared.CamelCase(n), n)
	}
	b.WriteString("  }\n}\n")
	return b.String()
}

func (p Producer) versionFile() string {
	v := p.SdkVersion
	if v == "" {
		v = "0.0.0"
	}
	return fmt.Sprintf("%sexport const SDK_VERSION = %q;\n", shared.GeneratedFileHeader, v)
}
