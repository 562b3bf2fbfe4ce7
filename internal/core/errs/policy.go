package errs

// EscalationPolicy decides whether a given diagnostic requires aborting
// the run, and whether a collector's accumulated diagnostics already
// contain a blocking one. ShouldThrow is a pure function of the diagnostic
// and the policy's own configuration — it never consults the collector —
// so two identical diagnostics always get the same verdict regardless of
// what else has been reported.
//
// Consulted in exactly one place, the GenerationContext; no phase embeds
// its own "should I stop" rule.
type EscalationPolicy interface {
	// ShouldThrow reports whether this one diagnostic, in isolation,
	// requires aborting the run.
	ShouldThrow(d Diagnostic) bool

	// HasBlockingErrors reports whether the collector already holds a
	// diagnostic this policy would throw on.
	HasBlockingErrors(c *ErrorCollector) bool

	// Name identifies the policy for logs and diagnostics summaries.
	Name() string
}

// basePolicy implements HasBlockingErrors in terms of ShouldThrow so every
// concrete policy only has to define the per-diagnostic rule.
type basePolicy struct {
	name        string
	shouldThrow func(Diagnostic) bool
}

func (p basePolicy) Name() string { return p.name }

func (p basePolicy) ShouldThrow(d Diagnostic) bool { return p.shouldThrow(d) }

func (p basePolicy) HasBlockingErrors(c *ErrorCollector) bool {
	for _, d := range c.All() {
		if p.shouldThrow(d) {
			return true
		}
	}
	return false
}

// DefaultPolicy (dev): throws on validation and fatal diagnostics.
// error-severity diagnostics accumulate in the collector and generation
// continues.
func DefaultPolicy() EscalationPolicy {
	return basePolicy{
		name: "default",
		shouldThrow: func(d Diagnostic) bool {
			return d.Severity == SeverityValidation || d.Severity == SeverityFatal
		},
	}
}

// StrictPolicy (prod): throws on the first error, in addition to
// everything DefaultPolicy throws on.
func StrictPolicy() EscalationPolicy {
	return basePolicy{
		name: "strict",
		shouldThrow: func(d Diagnostic) bool {
			return d.Severity >= SeverityError
		},
	}
}

// FailFastPolicy (CI): behaves like StrictPolicy, but additionally throws
// on the first warning whose Code is in the configured critical-category
// set. With no critical codes configured it is identical to StrictPolicy.
func FailFastPolicy(criticalCodes ...string) EscalationPolicy {
	critical := make(map[string]bool, len(criticalCodes))
	for _, code := range criticalCodes {
		critical[code] = true
	}
	return basePolicy{
		name: "fail-fast",
		shouldThrow: func(d Diagnostic) bool {
			if d.Severity >= SeverityError {
				return true
			}
			return d.Severity == SeverityWarn && critical[d.Code]
		},
	}
}
