package phases

import (
	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/gencontext"
)

// ValidateConfig is phase 0: typed config normalization's precondition
// check. It reports every diagnostic config.Validate finds against the
// as-given RawConfig. A context built via gencontext.New (config already
// validated and normalized by the caller) has nothing pending, so this
// phase is a no-op for it.
type ValidateConfig struct{}

func (ValidateConfig) Name() string  { return "validate-config" }
func (ValidateConfig) Order() float64 { return 0 }

func (ValidateConfig) ShouldRun(ctx *gencontext.GenerationContext) bool {
	_, pending := ctx.RawConfig()
	return pending
}

func (ValidateConfig) Execute(ctx *gencontext.GenerationContext) error {
	raw, _ := ctx.RawConfig()
	for _, d := range config.Validate(raw) {
		ctx.ReportDiagnostic(d)
	}
	return nil
}
