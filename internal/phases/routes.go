package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers"
	"github.com/schemaforge/servergen/internal/producers/route"
)

// Routes is phase 7: per-model route registration plus the aggregate
// index that mounts every router.
type Routes struct{}

func (Routes) Name() string   { return "routes" }
func (Routes) Order() float64 { return 7 }

func (Routes) ShouldRun(*gencontext.GenerationContext) bool { return true }

func (Routes) Execute(ctx *gencontext.GenerationContext) error {
	names := modelNames(ctx)
	p := route.Producer{AllModelNames: names}
	if err := routeEach(ctx, p, "routes", "routes"); err != nil {
		return err
	}
	return producers.RouteSchemaWide(ctx, p, "routes", "routes")
}

func modelNames(ctx *gencontext.GenerationContext) []string {
	models := sortedModels(ctx)
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name()
	}
	return names
}
