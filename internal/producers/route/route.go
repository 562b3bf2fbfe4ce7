// Package route generates the per-model route-registration file wiring
// the controller functions to framework-specific router objects, plus a
// schema-wide index that composes every model's router into one mount
// point.
package route

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// Producer emits one model's route file. When called with the zero Model
// value (Name() == ""), it instead emits the schema-wide index that
// mounts every already-registered model route.
type Producer struct {
	// AllModelNames lists every model in generation order, used only by
	// the index pass.
	AllModelNames []string
}

func (p Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	if model.Name() == "" {
		return map[string]string{"routes/index.ts": p.index()}, nil
	}
	path := "routes/" + model.NameLower() + ".routes.ts"
	return map[string]string{path: routeFile(ctx, model)}, nil
}

func routeFile(ctx *gencontext.GenerationContext, model ir.Model) string {
	name := model.Name()
	lower := model.NameLower()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)

	switch ctx.Config.Framework() {
	case "fastify":
		b.WriteString("import type { FastifyInstance } from \"fastify\";\n")
		fmt.Fprintf(&b, "import * as controller from \"../controllers/%s/%s.controller\";\n\n", lower, lower)
		fmt.Fprintf(&b, "export async function register%sRoutes(app: FastifyInstance) {\n", name)
		fmt.Fprintf(&b, "  app.post(\"/%s\", controller.create%s);\n", lower, name)
		fmt.Fprintf(&b, "  app.get(\"/%s/:id\", controller.get%s);\n", lower, name)
		fmt.Fprintf(&b, "  app.patch(\"/%s/:id\", controller.update%s);\n", lower, name)
		fmt.Fprintf(&b, "  app.delete(\"/%s/:id\", controller.delete%s);\n", lower, name)
		b.WriteString("}\n")
	default:
		b.WriteString("import { Router } from \"express\";\n")
		fmt.Fprintf(&b, "import * as controller from \"../controllers/%s/%s.controller\";\n\n", lower, lower)
		router := shared.CamelCase(name)
		fmt.Fprintf(&b, "export const %sRouter = Router();\n\n", router)
		fmt.Fprintf(&b, "%sRouter.post(\"/\", controller.create%s);\n", router, name)
		fmt.Fprintf(&b, "%sRouter.get(\"/:id\", controller.get%s);\n", router, name)
		fmt.Fprintf(&b, "%sRouter.patch(\"/:id\", controller.update%s);\n", router, name)
		fmt.Fprintf(&b, "%sRouter.delete(\"/:id\", controller.delete%s);\n", router, name)
	}
	return b.String()
}

func (p Producer) index() string {
	names := append([]string(nil), p.AllModelNames...)
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import { Router } from \"express\";\n")
	for _, n := range names {
		lower := shared.CamelCase(n)
		fmt.Fprintf(&b, "import { %sRouter } from \"./%s.routes\";\n", lower, strings.ToLower(n))
	}
	b.WriteString("\nexport const apiRouter = Router();\n\n")
	for _, n := range names {
		lower := shared.CamelCase(n)
		fmt.Fprintf(&b, "apiRouter.use(\"/%s\", %sRouter);\n", strings.ToLower(n), lower)
	}
	return b.String()
}
