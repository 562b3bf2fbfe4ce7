package phases

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/sdk"
)

// SDK is phase 8: the only phase that generates per-model work
// concurrently. Each model's resource module is produced by an
// independent task; results are collected into per-model maps and
// merged into the file builder in a single pass, sorted by model name,
// so the emitted file set is identical to a sequential run regardless of
// task completion order.
type SDK struct{}

func (SDK) Name() string   { return "sdk" }
func (SDK) Order() float64 { return 8 }

func (SDK) ShouldRun(*gencontext.GenerationContext) bool { return true }

type sdkResult struct {
	model string
	files map[string]string
	err   error
}

// Execute runs two independent production tasks on an errgroup: the
// per-model resource modules, themselves fanned out across a bounded
// conc pool, and the schema-wide client index and version file, which
// read no per-model state. Both tasks only compute content; ctx is
// written to afterward, in a single-threaded merge, so the two
// concurrent tasks never race on the file builder.
func (SDK) Execute(ctx *gencontext.GenerationContext) error {
	names := modelNames(ctx)
	producer := sdk.Producer{AllModelNames: names, SdkVersion: ctx.Config.SdkVersion()}

	var results []sdkResult
	var schemaWide map[string]string

	var g errgroup.Group
	g.Go(func() error {
		results = produceResources(ctx, producer)
		return nil
	})
	g.Go(func() error {
		files, err := producer.Produce(ctx, ir.Model{})
		if err != nil {
			return err
		}
		schemaWide = files
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].model < results[j].model })
	for _, r := range results {
		if r.err != nil {
			ctx.ReportError(errs.SeverityValidation, "sdk", fmt.Sprintf("%s: %s", r.model, r.err.Error()))
			continue
		}
		paths := make([]string, 0, len(r.files))
		for path := range r.files {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			ctx.AddFile("sdk", path, r.files[path], "sdk", r.model)
		}
	}
	widePaths := make([]string, 0, len(schemaWide))
	for path := range schemaWide {
		widePaths = append(widePaths, path)
	}
	sort.Strings(widePaths)
	for _, path := range widePaths {
		ctx.AddFile("sdk", path, schemaWide[path], "sdk", "")
	}

	return nil
}

func produceResources(ctx *gencontext.GenerationContext, producer sdk.Producer) []sdkResult {
	models := sortedModels(ctx)
	results := make([]sdkResult, len(models))
	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(8)

	for i, m := range models {
		i, m := i, m
		p.Go(func() {
			files, err := producer.Produce(ctx, m)
			mu.Lock()
			results[i] = sdkResult{model: m.Name(), files: files, err: err}
			mu.Unlock()
		})
	}
	p.Wait()
	return results
}
