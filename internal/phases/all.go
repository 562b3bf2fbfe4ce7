// Package phases implements the canonical phase table: one Phase per
// generation step, assembled into the default pipeline by Default().
package phases

import "github.com/schemaforge/servergen/internal/core/pipeline"

// Default returns every phase in the canonical order table, ready to
// hand to pipeline.New. Ordering within the slice does not matter —
// pipeline.New sorts by Order() — but listing them canonically here
// keeps the phase table legible without opening pipeline.go.
func Default() []pipeline.Phase {
	return []pipeline.Phase{
		ValidateConfig{},
		NormalizeConfig{},
		ValidateSchema{},
		AnalyzeModels{},
		NamingConflicts{},
		Dto{},
		RegistryMode{},
		Validators{},
		Services{},
		Controllers{},
		Routes{},
		OpenAPI{},
		SDK{},
		Hooks{},
		Plugins{},
		Checklist{},
	}
}
