// Package pipeline executes an ordered list of phases, each an
// independently testable transformation over a GenerationContext, with
// per-phase snapshot-bounded rollback.
package pipeline

import "github.com/schemaforge/servergen/internal/core/gencontext"

// Phase is one step of the generation pipeline. Order need not be an
// integer — the canonical phase table uses half-steps (0.5, 0.75) to slot
// config normalization and schema validation between the integer-numbered
// generation phases without renumbering everything else.
type Phase interface {
	Name() string
	Order() float64
	ShouldRun(ctx *gencontext.GenerationContext) bool
	Execute(ctx *gencontext.GenerationContext) error
}

// HookFunc is one before/after hook body.
type HookFunc func(ctx *gencontext.GenerationContext) error

// HookRegistry lets callers extend the pipeline without subclassing a
// phase: hooks registered for a phase name run immediately before/after
// that phase's Execute, inside the same rollback window.
type HookRegistry struct {
	before map[string][]HookFunc
	after  map[string][]HookFunc
}

func NewHookRegistry() *HookRegistry {
	return &HookRegistry{before: map[string][]HookFunc{}, after: map[string][]HookFunc{}}
}

// BeforePhase registers fn to run immediately before the named phase's
// Execute.
func (h *HookRegistry) BeforePhase(name string, fn HookFunc) {
	h.before[name] = append(h.before[name], fn)
}

// AfterPhase registers fn to run immediately after the named phase's
// Execute, only when Execute itself did not return an error.
func (h *HookRegistry) AfterPhase(name string, fn HookFunc) {
	h.after[name] = append(h.after[name], fn)
}

func (h *HookRegistry) runBefore(name string, ctx *gencontext.GenerationContext) error {
	for _, fn := range h.before[name] {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (h *HookRegistry) runAfter(name string, ctx *gencontext.GenerationContext) error {
	for _, fn := range h.after[name] {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}
