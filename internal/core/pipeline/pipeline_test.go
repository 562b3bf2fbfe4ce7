package pipeline_test

import (
	"testing"

	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/core/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePhase struct {
	name  string
	order float64
	run   func(ctx *gencontext.GenerationContext) error
}

func (f fakePhase) Name() string  { return f.name }
func (f fakePhase) Order() float64 { return f.order }
func (f fakePhase) ShouldRun(ctx *gencontext.GenerationContext) bool { return true }
func (f fakePhase) Execute(ctx *gencontext.GenerationContext) error { return f.run(ctx) }

func newTestContext() *gencontext.GenerationContext {
	schema := ir.NewSchemaBuilder().Freeze()
	cfg := config.Normalize(config.RawConfig{Framework: "express"})
	return gencontext.New(schema, cfg, errs.DefaultPolicy())
}

func TestPipelineRunsPhasesInOrderRegardlessOfInputOrder(t *testing.T) {
	var executed []string
	phases := []pipeline.Phase{
		fakePhase{name: "second", order: 2, run: func(ctx *gencontext.GenerationContext) error {
			executed = append(executed, "second")
			return nil
		}},
		fakePhase{name: "first", order: 1, run: func(ctx *gencontext.GenerationContext) error {
			executed = append(executed, "first")
			return nil
		}},
	}
	p := pipeline.New(phases, nil)
	require.NoError(t, p.Run(newTestContext()))
	assert.Equal(t, []string{"first", "second"}, executed)
}

func TestPipelineRollsBackOnBlockingDiagnostic(t *testing.T) {
	phases := []pipeline.Phase{
		fakePhase{name: "writes-file", order: 1, run: func(ctx *gencontext.GenerationContext) error {
			ctx.AddFile("contracts", "contracts/user.dto.ts", "ok", "writes-file", "User")
			ctx.ReportDiagnostic(errs.Diagnostic{Severity: errs.SeverityValidation, Phase: "writes-file", Message: "bad schema"})
			return nil
		}},
		fakePhase{name: "never-runs", order: 2, run: func(ctx *gencontext.GenerationContext) error {
			t.Fatal("a phase after a rolled-back phase must not run")
			return nil
		}},
	}
	ctx := newTestContext()
	p := pipeline.New(phases, nil)

	err := p.Run(ctx)
	require.Error(t, err)

	var failed *errs.GenerationFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "writes-file", failed.Phase)

	assert.Empty(t, ctx.Builder().AllFiles(), "the rolled-back phase's file must not survive")
}

func TestPipelineSkipsPhaseWhenShouldRunIsFalse(t *testing.T) {
	ran := false
	phases := []pipeline.Phase{
		skippablePhase{run: func() { ran = true }},
	}
	p := pipeline.New(phases, nil)
	require.NoError(t, p.Run(newTestContext()))
	assert.False(t, ran)
}

type skippablePhase struct{ run func() }

func (s skippablePhase) Name() string   { return "skippable" }
func (s skippablePhase) Order() float64 { return 1 }
func (s skippablePhase) ShouldRun(ctx *gencontext.GenerationContext) bool { return false }
func (s skippablePhase) Execute(ctx *gencontext.GenerationContext) error {
	s.run()
	return nil
}

func TestHookRunsInsidePhaseRollbackWindow(t *testing.T) {
	phases := []pipeline.Phase{
		fakePhase{name: "phase-with-hook", order: 1, run: func(ctx *gencontext.GenerationContext) error {
			ctx.ReportDiagnostic(errs.Diagnostic{Severity: errs.SeverityValidation, Message: "blocked"})
			return nil
		}},
	}
	hooks := pipeline.NewHookRegistry()
	hooks.BeforePhase("phase-with-hook", func(ctx *gencontext.GenerationContext) error {
		ctx.AddFile("contracts", "contracts/hook-file.ts", "from hook", "hook", "")
		return nil
	})

	ctx := newTestContext()
	p := pipeline.New(phases, hooks)
	require.Error(t, p.Run(ctx))

	assert.Empty(t, ctx.Builder().AllFiles(), "a hook's writes must be rolled back along with the phase's")
}
