package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers/validator"
)

// Validators is phase 4: zod validator pairs per model, consuming the
// same field buckets as the dto phase.
type Validators struct{}

func (Validators) Name() string   { return "validators" }
func (Validators) Order() float64 { return 4 }

func (Validators) ShouldRun(ctx *gencontext.GenerationContext) bool { return !ctx.Config.UseRegistry() }

func (Validators) Execute(ctx *gencontext.GenerationContext) error {
	return routeEach(ctx, validator.Producer{}, "validators", "validators")
}
