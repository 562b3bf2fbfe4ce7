package phases

import (
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/producers"
	"github.com/schemaforge/servergen/internal/producers/plugin"
)

// Plugins is phase 10: plugin-declared integration stubs. Blocking is
// configurable — the plugin producer itself reports unrecognized plugin
// kinds at Validation severity when StrictPluginValidation is set, Warn
// otherwise, so the policy decides whether that's fatal without this
// phase needing its own branching.
type Plugins struct{}

func (Plugins) Name() string   { return "plugins" }
func (Plugins) Order() float64 { return 10 }

func (Plugins) ShouldRun(ctx *gencontext.GenerationContext) bool { return len(ctx.Config.Plugins()) > 0 }

func (Plugins) Execute(ctx *gencontext.GenerationContext) error {
	return producers.RouteSchemaWide(ctx, plugin.Producer{}, "plugins", "plugins")
}
