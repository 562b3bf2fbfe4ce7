package phases

import (
	"sort"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers"
)

// sortedModels returns every model in the schema sorted by name, so that
// any error ordering a phase reports is reproducible across runs of an
// identical schema.
func sortedModels(ctx *gencontext.GenerationContext) []ir.Model {
	models := append([]ir.Model(nil), ctx.Schema.Models()...)
	sort.Slice(models, func(i, j int) bool { return models[i].Name() < models[j].Name() })
	return models
}

// routeEach runs p against every model in name order, reporting a
// Validation diagnostic (rather than failing Execute outright) on a
// per-model producer error, so one model's failure doesn't hide
// diagnostics about the rest.
func routeEach(ctx *gencontext.GenerationContext, p producers.Producer, family, source string) error {
	return routeEachSeverity(ctx, p, family, source, errs.SeverityValidation)
}

// routeEachNonBlocking is routeEach for non-blocking phases (hooks,
// plugins, checklist): a producer error becomes a Warn diagnostic, which
// no escalation policy in this package treats as fatal to the run.
func routeEachNonBlocking(ctx *gencontext.GenerationContext, p producers.Producer, family, source string) error {
	return routeEachSeverity(ctx, p, family, source, errs.SeverityWarn)
}

func routeEachSeverity(ctx *gencontext.GenerationContext, p producers.Producer, family, source string, severity errs.Severity) error {
	for _, m := range sortedModels(ctx) {
		if err := producers.Route(ctx, p, family, source, m); err != nil {
			ctx.ReportError(severity, source, m.Name()+": "+err.Error())
		}
	}
	return nil
}
