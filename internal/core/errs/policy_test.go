package errs_test

import (
	"testing"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyOnlyBlocksOnValidationAndFatal(t *testing.T) {
	policy := errs.DefaultPolicy()

	errDiag := errs.Diagnostic{Severity: errs.SeverityError, Phase: "validate-schema", Code: "E001"}
	assert.False(t, policy.ShouldThrow(errDiag), "default policy must not throw on a plain error diagnostic")

	validationDiag := errs.Diagnostic{Severity: errs.SeverityValidation, Phase: "validate-schema", Code: "V001"}
	assert.True(t, policy.ShouldThrow(validationDiag))

	fatalDiag := errs.Diagnostic{Severity: errs.SeverityFatal, Phase: "dto", Code: "F001"}
	assert.True(t, policy.ShouldThrow(fatalDiag))
}

func TestStrictPolicyBlocksOnError(t *testing.T) {
	policy := errs.StrictPolicy()

	c := errs.NewErrorCollector()
	c.Report(errs.SeverityWarn, "validate-schema", "W001", "minor issue")
	require.False(t, policy.HasBlockingErrors(c))

	c.Report(errs.SeverityError, "validate-schema", "E001", "bigger issue")
	assert.True(t, policy.HasBlockingErrors(c))
}

func TestFailFastBlocksOnConfiguredCriticalWarning(t *testing.T) {
	policy := errs.FailFastPolicy("naming-conflict")

	plainWarn := errs.Diagnostic{Severity: errs.SeverityWarn, Code: "unrelated"}
	assert.False(t, policy.ShouldThrow(plainWarn))

	criticalWarn := errs.Diagnostic{Severity: errs.SeverityWarn, Code: "naming-conflict"}
	assert.True(t, policy.ShouldThrow(criticalWarn))
}

func TestFailFastWithNoCriticalCodesBehavesLikeStrict(t *testing.T) {
	failFast := errs.FailFastPolicy()
	strict := errs.StrictPolicy()

	diags := []errs.Diagnostic{
		{Severity: errs.SeverityInfo},
		{Severity: errs.SeverityWarn},
		{Severity: errs.SeverityError},
		{Severity: errs.SeverityValidation},
		{Severity: errs.SeverityFatal},
	}
	for _, d := range diags {
		assert.Equal(t, strict.ShouldThrow(d), failFast.ShouldThrow(d))
	}
}

func TestCollectorSnapshotRestoreIsIdempotent(t *testing.T) {
	c := errs.NewErrorCollector()
	c.Report(errs.SeverityInfo, "p1", "I1", "first")
	mark := c.Len()

	c.Report(errs.SeverityError, "p2", "E1", "second")
	c.Report(errs.SeverityWarn, "p2", "W1", "third")
	require.Len(t, c.All(), 3)

	c.TruncateTo(mark)
	assert.Len(t, c.All(), 1)

	// Truncating again to the same mark must be a no-op, not a panic.
	c.TruncateTo(mark)
	assert.Len(t, c.All(), 1)
}

func TestPolicyDeterminismIsPureFunctionOfDiagnostic(t *testing.T) {
	policy := errs.StrictPolicy()
	d := errs.Diagnostic{Severity: errs.SeverityValidation, Code: "V1", Message: "b"}

	first := policy.ShouldThrow(d)
	second := policy.ShouldThrow(d)
	assert.Equal(t, first, second)
}
