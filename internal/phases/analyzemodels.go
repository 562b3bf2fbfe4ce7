package phases

import (
	"fmt"
	"strings"

	"github.com/schemaforge/servergen/internal/core/analyzer"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
)

// AnalyzeModels is phase 1: populates the analysis cache for every model
// and asserts completeness before any generation phase can run. A
// non-empty getMissingAnalysis result is a Fatal diagnostic since it
// means the analyzer itself is broken, not a schema problem.
type AnalyzeModels struct{}

func (AnalyzeModels) Name() string   { return "analyze-models" }
func (AnalyzeModels) Order() float64 { return 1 }

func (AnalyzeModels) ShouldRun(*gencontext.GenerationContext) bool { return true }

func (AnalyzeModels) Execute(ctx *gencontext.GenerationContext) error {
	cache := analyzer.AnalyzeSchema(ctx.Schema)
	ctx.SetCache(cache)

	names := make([]string, 0, len(ctx.Schema.Models()))
	for _, m := range ctx.Schema.Models() {
		names = append(names, m.Name())
	}
	if missing := cache.GetMissingAnalysis(names); len(missing) > 0 {
		ctx.ReportError(errs.SeverityFatal, "analyze-models", fmt.Sprintf("analysis missing for: %s", strings.Join(missing, ", ")))
	}
	return nil
}
