// Package producers defines the narrow interface every file-body
// generator implements, plus the Produce-and-route helper phases call.
// Concrete producers live one package per artifact family under
// internal/producers/<family>.
package producers

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
)

// Producer emits one or more generated files for a single model. A
// schema-wide producer (OpenAPI, the SDK version constant) is called once
// with the zero Model value and ignores it.
type Producer interface {
	Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error)
}

// Route calls producer for model and adds every returned file to ctx
// under family, tagging each with source so path collisions name the
// right producer.
func Route(ctx *gencontext.GenerationContext, p Producer, family, source string, model ir.Model) error {
	files, err := p.Produce(ctx, model)
	if err != nil {
		return err
	}
	for path, content := range files {
		ctx.AddFile(family, path, content, source, model.Name())
	}
	return nil
}

// RouteSchemaWide calls Route with the zero Model value, the convention
// schema-wide producers (OpenAPI, the route and registry indexes, the
// plugin stubs) use to
// recognize they were invoked once rather than per-model.
func RouteSchemaWide(ctx *gencontext.GenerationContext, p Producer, family, source string) error {
	return Route(ctx, p, family, source, ir.Model{})
}
