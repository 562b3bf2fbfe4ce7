package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers/hooks"
)

// Hooks is phase 9: multi-framework frontend hooks, gated on the
// configured, already-validated framework list. Non-blocking — a
// producer error here is recorded as a Warn diagnostic, never higher, since
// hook generation is a convenience layer.
type Hooks struct{}

func (Hooks) Name() string   { return "hooks" }
func (Hooks) Order() float64 { return 9 }

func (Hooks) ShouldRun(ctx *gencontext.GenerationContext) bool {
	return len(ctx.Config.HooksFrameworks()) > 0
}

func (Hooks) Execute(ctx *gencontext.GenerationContext) error {
	return routeEachNonBlocking(ctx, hooks.Producer{}, "hooks", "hooks")
}
