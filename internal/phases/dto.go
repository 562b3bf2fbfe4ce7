package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers/dto"
)

// Dto is phase 3: one contract family per model, plus a shared
// dto-validator helper emitted once. Skipped entirely in registry mode,
// where registryproducer owns this output instead.
type Dto struct{}

func (Dto) Name() string   { return "dto" }
func (Dto) Order() float64 { return 3 }

func (Dto) ShouldRun(ctx *gencontext.GenerationContext) bool { return !ctx.Config.UseRegistry() }

func (Dto) Execute(ctx *gencontext.GenerationContext) error {
	return routeEach(ctx, dto.Producer{}, "contracts", "dto")
}
