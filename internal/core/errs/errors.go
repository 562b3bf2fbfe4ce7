package errs

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaValidationFailed is returned when validation collected at least one
// diagnostic at or above the active policy's threshold before any code was
// generated. Diagnostics holds everything the collector had accumulated at
// the point of failure, not just the one that tipped the policy.
type SchemaValidationFailed struct {
	Diagnostics []Diagnostic
}

func (e *SchemaValidationFailed) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "schema validation failed with %d diagnostic(s)", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		if d.Severity >= SeverityError {
			fmt.Fprintf(&b, "\n  %s", d)
		}
	}
	return b.String()
}

// GenerationFailedError wraps the diagnostic and the phase name that caused
// a mid-pipeline abort, after the affected phase's own changes have already
// been rolled back by the pipeline.
type GenerationFailedError struct {
	Phase string
	Cause error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("generation failed in phase %q: %v", e.Phase, e.Cause)
}

func (e *GenerationFailedError) Unwrap() error { return e.Cause }

// PathCollision is returned by the file-path registry when two producers
// attempt to claim paths that canonicalize to the same output location.
type PathCollision struct {
	Path      string
	Canonical string
	Owner     string
	Attempted string
}

func (e *PathCollision) Error() string {
	return fmt.Sprintf("path collision at %q (canonical %q): already owned by %q, attempted by %q",
		e.Path, e.Canonical, e.Owner, e.Attempted)
}

// ErrAnalysisMissing is the sentinel wrapped by AnalysisMissing so callers
// can match with errors.Is without depending on the model name.
var ErrAnalysisMissing = errors.New("analysis missing for model")

// AnalysisMissing is returned when a phase asks the generation context for
// a model's unified analysis before the analyze-models phase has run, or
// for a model name the schema does not contain.
type AnalysisMissing struct {
	Model string
}

func (e *AnalysisMissing) Error() string {
	return fmt.Sprintf("%v: %q", ErrAnalysisMissing, e.Model)
}

func (e *AnalysisMissing) Is(target error) bool {
	return target == ErrAnalysisMissing
}

// PluginValidationError is returned when a configured plugin entry fails
// config-time validation (missing handler name, malformed env var name,
// unresolvable hook framework).
type PluginValidationError struct {
	Plugin string
	Reason string
}

func (e *PluginValidationError) Error() string {
	return fmt.Sprintf("plugin %q is invalid: %s", e.Plugin, e.Reason)
}
