package phases

import (
	"fmt"
	"strings"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
)

// NamingConflicts is phase 2: a warn-only scan for filename collisions
// that generation would otherwise only discover file-by-file — two
// models differing only by case, or a plugin name that shadows a model
// name in the routes/services namespace. Nothing here blocks the run;
// every finding is a Warn diagnostic.
type NamingConflicts struct{}

func (NamingConflicts) Name() string   { return "naming-conflicts" }
func (NamingConflicts) Order() float64 { return 2 }

func (NamingConflicts) ShouldRun(*gencontext.GenerationContext) bool { return true }

func (NamingConflicts) Execute(ctx *gencontext.GenerationContext) error {
	seen := map[string]string{}
	for _, m := range ctx.Schema.Models() {
		key := strings.ToLower(m.Name())
		if other, ok := seen[key]; ok {
			ctx.ReportError(errs.SeverityWarn, "naming-conflicts",
				fmt.Sprintf("model %q and %q produce the same lowercase resource path %q", other, m.Name(), key))
			continue
		}
		seen[key] = m.Name()
	}

	for _, p := range ctx.Config.Plugins() {
		key := strings.ToLower(p.Name)
		if model, ok := seen[key]; ok {
			ctx.ReportError(errs.SeverityWarn, "naming-conflicts",
				fmt.Sprintf("plugin %q shares a name with model %q; integration file may shadow generated service output", p.Name, model))
		}
	}
	return nil
}
