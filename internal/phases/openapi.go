package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers"
	"github.com/schemaforge/servergen/internal/producers/openapi"
)

// OpenAPI sits between routes (7) and the SDK (8): it needs every
// route's path already registered, and the SDK's typed client is most
// useful once the API surface it documents is finalized. Not part of
// the spec's original numbered table; slotted at a half-step so the
// canonical phases never need renumbering.
type OpenAPI struct{}

func (OpenAPI) Name() string   { return "openapi" }
func (OpenAPI) Order() float64 { return 7.5 }

func (OpenAPI) ShouldRun(*gencontext.GenerationContext) bool { return true }

func (OpenAPI) Execute(ctx *gencontext.GenerationContext) error {
	return producers.RouteSchemaWide(ctx, openapi.Producer{}, "openapi", "openapi")
}
