package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/parser"
)

// ValidateSchema is phase 0.75: the detailed parser validation run,
// executed before any analysis. Its diagnostics carry Error severity, so
// under the strict and fail-fast policies a malformed schema stops the run
// here; the default policy records them and lets the run continue.
type ValidateSchema struct{}

func (ValidateSchema) Name() string   { return "validate-schema" }
func (ValidateSchema) Order() float64 { return 0.75 }

func (ValidateSchema) ShouldRun(*gencontext.GenerationContext) bool { return true }

func (ValidateSchema) Execute(ctx *gencontext.GenerationContext) error {
	for _, d := range parser.Validate(ctx.Schema) {
		ctx.ReportDiagnostic(d)
	}
	return nil
}
