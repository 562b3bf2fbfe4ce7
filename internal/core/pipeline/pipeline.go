package pipeline

import (
	"errors"
	"sort"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
)

// Pipeline runs a fixed, ordered set of phases against one
// GenerationContext. It is itself stateless between runs: build a new
// Pipeline (or reuse this one) per generation.
type Pipeline struct {
	phases []Phase
	hooks  *HookRegistry
}

// New builds a pipeline from an unordered phase list, sorting by Order.
// Pass nil for hooks to run with no extension points registered.
func New(phases []Phase, hooks *HookRegistry) *Pipeline {
	sorted := make([]Phase, len(phases))
	copy(sorted, phases)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order() < sorted[j].Order() })
	if hooks == nil {
		hooks = NewHookRegistry()
	}
	return &Pipeline{phases: sorted, hooks: hooks}
}

// Run executes every phase in order. A phase whose ShouldRun returns false
// is skipped entirely — no snapshot is taken, no hooks run. Any phase that
// leaves the collector in a policy-blocking state triggers a full rollback
// of that phase's work (including its hooks') and returns a
// *errs.GenerationFailedError naming the phase and the first blocking
// diagnostic.
func (p *Pipeline) Run(ctx *gencontext.GenerationContext) error {
	for _, phase := range p.phases {
		if !phase.ShouldRun(ctx) {
			continue
		}

		snapshot := ctx.Snapshot()

		execErr := p.runPhase(phase, ctx)
		if execErr != nil {
			ctx.ReportError(errs.SeverityFatal, phase.Name(), execErr.Error())
		}

		if ctx.HasBlockingErrors() {
			cause := firstBlockingCause(ctx, phase.Name(), execErr)
			ctx.Restore(snapshot)
			return &errs.GenerationFailedError{Phase: phase.Name(), Cause: cause}
		}
	}
	return nil
}

func (p *Pipeline) runPhase(phase Phase, ctx *gencontext.GenerationContext) error {
	if err := p.hooks.runBefore(phase.Name(), ctx); err != nil {
		return err
	}
	if err := phase.Execute(ctx); err != nil {
		return err
	}
	return p.hooks.runAfter(phase.Name(), ctx)
}

// firstBlockingCause finds the earliest diagnostic the active policy would
// throw on, so the returned GenerationFailedError wraps a meaningful
// "caused by" rather than just the phase's own Go error (which may be nil
// when the phase succeeded but still reported a blocking diagnostic).
func firstBlockingCause(ctx *gencontext.GenerationContext, phaseName string, execErr error) error {
	policy := ctx.Policy()
	for _, d := range ctx.Collector().All() {
		if policy.ShouldThrow(d) {
			return errors.New(d.String())
		}
	}
	if execErr != nil {
		return execErr
	}
	return errors.New(phaseName + ": blocked by escalation policy")
}
