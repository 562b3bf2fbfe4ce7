package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers/checklist"
)

// Checklist is phase 11: a per-model operational readiness report.
// Non-blocking by design — it only ever reads analysis already computed
// by phase 1.
type Checklist struct{}

func (Checklist) Name() string   { return "checklist" }
func (Checklist) Order() float64 { return 11 }

func (Checklist) ShouldRun(*gencontext.GenerationContext) bool { return true }

func (Checklist) Execute(ctx *gencontext.GenerationContext) error {
	return routeEachNonBlocking(ctx, checklist.Producer{}, "checklist", "checklist")
}
