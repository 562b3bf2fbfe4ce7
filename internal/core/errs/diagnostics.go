// Package errs holds the diagnostic taxonomy the pipeline collects through,
// the escalation policy that decides what a given severity does to the run,
// and the exported error types callers can type-assert against.
package errs

import "fmt"

// Severity classifies a Diagnostic. The ordering below is also the
// escalation ordering: a policy that fails on Warn also fails on everything
// stricter than Warn.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
	SeverityValidation
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	case SeverityValidation:
		return "validation"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported problem or observation. Phase and Code are
// both optional but strongly encouraged: Code lets tests and tooling match
// on a stable identifier instead of message text.
type Diagnostic struct {
	Severity Severity
	Phase    string
	Code     string
	Message  string
	Model    string
	Field    string
}

func (d Diagnostic) String() string {
	where := d.Model
	if d.Field != "" {
		where = fmt.Sprintf("%s.%s", d.Model, d.Field)
	}
	if where == "" {
		return fmt.Sprintf("[%s] %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Severity, where, d.Message)
}

// ErrorCollector accumulates diagnostics for the lifetime of one generation
// run. It never throws on its own: Add only records, Snapshot/Restore let
// the pipeline undo everything a rolled-back phase reported, and whether
// accumulated diagnostics stop the run is entirely up to the
// ErrorEscalationPolicy consulted separately.
type ErrorCollector struct {
	diagnostics []Diagnostic
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// Add records one diagnostic.
func (c *ErrorCollector) Add(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// Report is a convenience wrapper around Add for the common case.
func (c *ErrorCollector) Report(severity Severity, phase, code, message string) {
	c.Add(Diagnostic{Severity: severity, Phase: phase, Code: code, Message: message})
}

// All returns a defensive copy of every diagnostic collected so far, in
// report order.
func (c *ErrorCollector) All() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// BySeverityAtLeast returns every diagnostic at or above the given
// severity, preserving report order.
func (c *ErrorCollector) BySeverityAtLeast(min Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.diagnostics {
		if d.Severity >= min {
			out = append(out, d)
		}
	}
	return out
}

// HasAtLeast reports whether any diagnostic at or above the given severity
// has been collected.
func (c *ErrorCollector) HasAtLeast(min Severity) bool {
	for _, d := range c.diagnostics {
		if d.Severity >= min {
			return true
		}
	}
	return false
}

// Len reports how many diagnostics have been collected so far; used as a
// snapshot mark by the phase pipeline.
func (c *ErrorCollector) Len() int {
	return len(c.diagnostics)
}

// TruncateTo discards every diagnostic collected after mark, restoring the
// collector to the state captured by an earlier Len() call. Used to undo a
// rolled-back phase's reports.
func (c *ErrorCollector) TruncateTo(mark int) {
	if mark < len(c.diagnostics) {
		c.diagnostics = c.diagnostics[:mark]
	}
}
