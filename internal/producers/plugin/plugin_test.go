package plugin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/plugin"
)

func newContext(cfg config.NormalizedConfig) *gencontext.GenerationContext {
	schema := ir.NewSchemaBuilder().Freeze()
	return gencontext.New(schema, cfg, errs.DefaultPolicy())
}

func TestKnownPluginEmitsStubWithoutDiagnostic(t *testing.T) {
	cfg := config.Normalize(config.RawConfig{
		Framework: "express",
		Plugins: []config.PluginConfig{
			{Name: "stripe", Enabled: true, EnvName: "STRIPE_SECRET_KEY"},
		},
	})
	ctx := newContext(cfg)

	files, err := plugin.Producer{}.Produce(ctx, ir.Model{})
	require.NoError(t, err)
	require.Contains(t, files, "integrations/stripe.integration.ts")
	assert.Contains(t, files["integrations/stripe.integration.ts"], "STRIPE_SECRET_KEY")
	assert.Empty(t, ctx.Collector().All())
}

func TestUnknownPluginWarnsButStillEmitsUnderLenientValidation(t *testing.T) {
	cfg := config.Normalize(config.RawConfig{
		Framework: "express",
		Plugins: []config.PluginConfig{
			{Name: "custom-crm", Enabled: true, EnvName: "CRM_API_KEY"},
		},
	})
	ctx := newContext(cfg)

	files, err := plugin.Producer{}.Produce(ctx, ir.Model{})
	require.NoError(t, err)
	assert.Contains(t, files, "integrations/custom-crm.integration.ts")

	diags := ctx.Collector().All()
	require.Len(t, diags, 1)
	assert.Equal(t, errs.SeverityWarn, diags[0].Severity)
}

func TestUnknownPluginBlocksUnderStrictValidation(t *testing.T) {
	cfg := config.Normalize(config.RawConfig{
		Framework:              "express",
		StrictPluginValidation: true,
		Plugins: []config.PluginConfig{
			{Name: "custom-crm", Enabled: true, EnvName: "CRM_API_KEY"},
		},
	})
	ctx := newContext(cfg)

	files, err := plugin.Producer{}.Produce(ctx, ir.Model{})
	require.NoError(t, err)
	assert.NotContains(t, files, "integrations/custom-crm.integration.ts")

	diags := ctx.Collector().All()
	require.Len(t, diags, 1)
	assert.Equal(t, errs.SeverityValidation, diags[0].Severity)
}

func TestDisabledPluginIsSkipped(t *testing.T) {
	cfg := config.Normalize(config.RawConfig{
		Framework: "express",
		Plugins: []config.PluginConfig{
			{Name: "stripe", Enabled: false, EnvName: "STRIPE_SECRET_KEY"},
		},
	})
	ctx := newContext(cfg)

	files, err := plugin.Producer{}.Produce(ctx, ir.Model{})
	require.NoError(t, err)
	assert.Empty(t, files)
}
