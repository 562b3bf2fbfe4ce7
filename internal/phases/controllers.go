package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers/controller"
)

// Controllers is phase 6: framework-aware CRUD controller bindings.
type Controllers struct{}

func (Controllers) Name() string   { return "controllers" }
func (Controllers) Order() float64 { return 6 }

func (Controllers) ShouldRun(*gencontext.GenerationContext) bool { return true }

func (Controllers) Execute(ctx *gencontext.GenerationContext) error {
	return routeEach(ctx, controller.Producer{}, "controllers", "controllers")
}
