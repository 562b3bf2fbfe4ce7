package parser

import "log/slog"

// Options configures one Parse call.
type Options struct {
	// Logger receives debug-level notices about stages the parser skipped
	// or fields it dropped as unsupported. Nil disables logging.
	Logger *slog.Logger

	// Freeze controls whether Parse runs the enhancement stage that builds
	// the reverse-relation index and the per-model categorization buckets.
	// DefaultOptions sets it true; callers inspecting only raw structure
	// (rare) can set it false to skip that work.
	Freeze bool

	// ThrowOnError runs full validation immediately after parsing and
	// returns a *errs.SchemaValidationFailed instead of a ParsedSchema when
	// any Error-or-worse diagnostic was collected.
	ThrowOnError bool
}

// DefaultOptions returns Freeze true and everything else off; unlike the
// zero Options value, it runs the enhancement stage.
func DefaultOptions() Options {
	return Options{Freeze: true}
}
