package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers/service"
)

// Services is phase 5: standard or enhanced service bodies, depending on
// each model's analyzed capabilities.
type Services struct{}

func (Services) Name() string   { return "services" }
func (Services) Order() float64 { return 5 }

func (Services) ShouldRun(ctx *gencontext.GenerationContext) bool { return !ctx.Config.UseRegistry() }

func (Services) Execute(ctx *gencontext.GenerationContext) error {
	return routeEach(ctx, service.Producer{}, "services", "services")
}
