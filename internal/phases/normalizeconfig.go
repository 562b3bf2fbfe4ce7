package phases

import (
	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/gencontext"
)

// NormalizeConfig is phase 0.5: applies defaults once and installs the
// frozen NormalizedConfig every later phase reads from. Non-blocking by
// itself — validate-config already raised anything that would abort the
// run.
type NormalizeConfig struct{}

func (NormalizeConfig) Name() string   { return "normalize-config" }
func (NormalizeConfig) Order() float64 { return 0.5 }

func (NormalizeConfig) ShouldRun(ctx *gencontext.GenerationContext) bool {
	_, pending := ctx.RawConfig()
	return pending
}

func (NormalizeConfig) Execute(ctx *gencontext.GenerationContext) error {
	raw, _ := ctx.RawConfig()
	ctx.SetNormalizedConfig(config.Normalize(raw))
	return nil
}
