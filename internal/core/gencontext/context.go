// Package gencontext defines GenerationContext, the single mutation
// surface every phase body touches. Nothing else in a generation run is
// globally reachable: the schema, the analysis cache, the file builder,
// the path registry, and the error collector all live here.
package gencontext

import (
	"github.com/schemaforge/servergen/internal/core/analyzer"
	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/core/registry"
)

// GenerationContext coordinates one generation run end to end.
type GenerationContext struct {
	Schema ir.Schema
	Config config.NormalizedConfig

	rawConfig    config.RawConfig
	hasRawConfig bool

	cache     *analyzer.Cache
	builder   *registry.GeneratedFilesBuilder
	pathReg   *registry.FilePathRegistry
	collector *errs.ErrorCollector
	policy    errs.EscalationPolicy
}

// New builds a GenerationContext around a frozen schema and its
// already-normalized config. The analysis cache starts empty; the
// analyze-models phase is responsible for filling it. Use this when the
// caller has already run config.Validate/config.Normalize itself; the
// pipeline's validate-config and normalize-config phases become no-ops
// for a context built this way.
func New(schema ir.Schema, cfg config.NormalizedConfig, policy errs.EscalationPolicy) *GenerationContext {
	pathReg := registry.NewFilePathRegistry()
	return &GenerationContext{
		Schema:    schema,
		Config:    cfg,
		cache:     analyzer.NewCache(len(schema.Models())),
		builder:   registry.NewGeneratedFilesBuilder(pathReg),
		pathReg:   pathReg,
		collector: errs.NewErrorCollector(),
		policy:    policy,
	}
}

// NewFromRaw builds a GenerationContext whose config still needs
// validating and normalizing by the pipeline's own phase 0/0.5. Config
// stays the zero NormalizedConfig until the normalize-config phase calls
// SetNormalizedConfig.
func NewFromRaw(schema ir.Schema, raw config.RawConfig, policy errs.EscalationPolicy) *GenerationContext {
	c := New(schema, config.NormalizedConfig{}, policy)
	c.rawConfig = raw
	c.hasRawConfig = true
	return c
}

// RawConfig returns the as-given config and whether the context was
// built with one still pending validation/normalization.
func (c *GenerationContext) RawConfig() (config.RawConfig, bool) { return c.rawConfig, c.hasRawConfig }

// SetNormalizedConfig installs the frozen config, called by the
// normalize-config phase once validate-config has reported no blocking
// diagnostics.
func (c *GenerationContext) SetNormalizedConfig(cfg config.NormalizedConfig) { c.Config = cfg }

// SetCache replaces the analysis cache wholesale, used by the
// analyze-models phase once it has analyzed every model.
func (c *GenerationContext) SetCache(cache *analyzer.Cache) { c.cache = cache }

// AddFile routes one generated file through the builder for family,
// reporting a validation diagnostic instead of returning an error on
// collision — collisions are a schema-semantic problem the collector and
// policy are equipped to handle uniformly.
func (c *GenerationContext) AddFile(family, path, content, source, model string) {
	if err := c.builder.AddFile(family, path, content, source, model); err != nil {
		c.collector.Report(errs.SeverityValidation, source, "path-collision", err.Error())
	}
}

// GetAnalysis returns a model's unified analysis, or an error when the
// analyze-models phase has not populated it yet.
func (c *GenerationContext) GetAnalysis(modelName string) (analyzer.UnifiedModelAnalysis, error) {
	return c.cache.GetAnalysis(modelName)
}

// TryGetAnalysis is the non-throwing companion for optional enrichments.
func (c *GenerationContext) TryGetAnalysis(modelName string) (analyzer.UnifiedModelAnalysis, bool) {
	return c.cache.TryGetAnalysis(modelName)
}

// Cache exposes the analysis cache directly for phases that need to assert
// completeness (getMissingAnalysis) rather than look up one model.
func (c *GenerationContext) Cache() *analyzer.Cache { return c.cache }

// Builder exposes the underlying GeneratedFilesBuilder for phases that
// need bulk access to a family's files (e.g. the host writing every
// generated file to disk once the run finishes).
func (c *GenerationContext) Builder() *registry.GeneratedFilesBuilder { return c.builder }

// PathRegistry exposes the registry directly; used sparingly, mostly by
// the pipeline driver for phase-boundary snapshotting.
func (c *GenerationContext) PathRegistry() *registry.FilePathRegistry { return c.pathReg }

// ReportError appends one diagnostic to the collector.
func (c *GenerationContext) ReportError(severity errs.Severity, phase, message string) {
	c.collector.Report(severity, phase, "", message)
}

// ReportDiagnostic appends a fully-formed diagnostic, for phases that have
// model/field context to attach.
func (c *GenerationContext) ReportDiagnostic(d errs.Diagnostic) {
	c.collector.Add(d)
}

// Collector exposes the collector directly for read-only inspection (the
// naming-conflicts phase, for instance, reports warnings without going
// through ReportError's simplified signature).
func (c *GenerationContext) Collector() *errs.ErrorCollector { return c.collector }

// HasBlockingErrors reports whether the active policy considers the
// collector's current contents blocking.
func (c *GenerationContext) HasBlockingErrors() bool {
	return c.policy.HasBlockingErrors(c.collector)
}

// Policy exposes the active escalation policy.
func (c *GenerationContext) Policy() errs.EscalationPolicy { return c.policy }

// phaseSnapshot is the combined (builder, registry, collector mark) state
// the pipeline restores on a rolled-back phase.
type phaseSnapshot struct {
	builder      registry.BuilderSnapshot
	pathRegistry registry.Snapshot
	collectorLen int
}

// Snapshot captures everything a phase might mutate.
func (c *GenerationContext) Snapshot() phaseSnapshot {
	return phaseSnapshot{
		builder:      c.builder.Snapshot(),
		pathRegistry: c.pathReg.Snapshot(),
		collectorLen: c.collector.Len(),
	}
}

// Restore undoes every mutation made since the matching Snapshot call.
func (c *GenerationContext) Restore(s phaseSnapshot) {
	c.builder.Restore(s.builder)
	c.pathReg.Restore(s.pathRegistry)
	c.collector.TruncateTo(s.collectorLen)
}

// Summary is the severity-grouped diagnostics report the host renders at
// the end of a run, successful or not.
type Summary struct {
	Errors   []errs.Diagnostic
	Warnings []errs.Diagnostic
	Infos    []errs.Diagnostic
	FileCount int
}

// Summary groups every collected diagnostic by severity and reports how
// many files the run produced so far.
func (c *GenerationContext) Summary() Summary {
	var s Summary
	for _, d := range c.collector.All() {
		switch {
		case d.Severity >= errs.SeverityError:
			s.Errors = append(s.Errors, d)
		case d.Severity == errs.SeverityWarn:
			s.Warnings = append(s.Warnings, d)
		default:
			s.Infos = append(s.Infos, d)
		}
	}
	s.FileCount = len(c.builder.AllFiles())
	return s
}
