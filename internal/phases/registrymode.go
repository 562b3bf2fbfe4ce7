package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers"
	"github.com/schemaforge/servergen/internal/producers/registrymode"
)

// RegistryMode replaces phases 3-5 (dto/validators/services) with a
// single consolidated registry when config.UseRegistry is set. It runs
// at the same order as the phase it stands in for; ShouldRun on all
// three of Dto/Validators/Services is the exact complement of this
// phase's, so exactly one of the two generation strategies ever touches
// the file builder for a given run.
type RegistryMode struct{}

func (RegistryMode) Name() string   { return "registry-mode" }
func (RegistryMode) Order() float64 { return 3 }

func (RegistryMode) ShouldRun(ctx *gencontext.GenerationContext) bool { return ctx.Config.UseRegistry() }

func (RegistryMode) Execute(ctx *gencontext.GenerationContext) error {
	names := modelNames(ctx)
	p := registrymode.Producer{AllModelNames: names}
	if err := routeEach(ctx, p, "registry", "registry-mode"); err != nil {
		return err
	}
	return producers.RouteSchemaWide(ctx, p, "registry", "registry-mode")
}
