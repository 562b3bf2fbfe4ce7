package config_test

import (
	"testing"

	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func hasCode(diags []errs.Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestValidateRejectsUnknownFramework(t *testing.T) {
	diags := config.Validate(config.RawConfig{Framework: "django"})
	require.True(t, hasCode(diags, "unknown-framework"))
}

func TestValidateRejectsConflictingErrorPolicy(t *testing.T) {
	diags := config.Validate(config.RawConfig{Framework: "express", FailFast: true, ContinueOnError: true})
	assert.True(t, hasCode(diags, "conflicting-error-policy"))
}

func TestValidateRejectsPlaceholderSdkVersion(t *testing.T) {
	diags := config.Validate(config.RawConfig{Framework: "express", SdkVersion: "0.0.0-dev"})
	assert.True(t, hasCode(diags, "placeholder-sdk-version"))
}

func TestValidateAcceptsRealSemverSdkVersion(t *testing.T) {
	diags := config.Validate(config.RawConfig{Framework: "express", SdkVersion: "1.4.2"})
	assert.False(t, hasCode(diags, "placeholder-sdk-version"))
	assert.False(t, hasCode(diags, "invalid-sdk-version"))
}

func TestValidateRejectsUnknownHookFramework(t *testing.T) {
	diags := config.Validate(config.RawConfig{Framework: "express", HooksFrameworks: []string{"react", "angular"}})
	assert.True(t, hasCode(diags, "unknown-hook-framework"))
}

func TestValidateRejectsEnabledPluginMissingEnvName(t *testing.T) {
	diags := config.Validate(config.RawConfig{
		Framework: "express",
		Plugins:   []config.PluginConfig{{Name: "audit-log", Enabled: true}},
	})
	assert.True(t, hasCode(diags, "plugin-missing-env-name"))
}

func TestRawConfigDecodesFromYamlDocShape(t *testing.T) {
	doc := `
framework: fastify
sdkVersion: "2.0.0"
hooksFrameworks:
  - react
  - vue
plugins:
  - name: stripe
    enabled: true
    envName: STRIPE_SECRET_KEY
`
	var raw config.RawConfig
	require.NoError(t, yaml.Unmarshal([]byte(doc), &raw))

	assert.Equal(t, "fastify", raw.Framework)
	assert.Equal(t, "2.0.0", raw.SdkVersion)
	assert.Equal(t, []string{"react", "vue"}, raw.HooksFrameworks)
	require.Len(t, raw.Plugins, 1)
	assert.Equal(t, "stripe", raw.Plugins[0].Name)
	assert.True(t, raw.Plugins[0].Enabled)
	assert.Equal(t, "STRIPE_SECRET_KEY", raw.Plugins[0].EnvName)
}

func TestNormalizeAppliesDefaultsAndDedupsHooks(t *testing.T) {
	n := config.Normalize(config.RawConfig{
		Framework:       "fastify",
		HooksFrameworks: []string{"vue", "react", "vue"},
	})
	assert.Equal(t, "fastify", n.Framework())
	assert.Equal(t, "0.1.0", n.SdkVersion())
	assert.Equal(t, []string{"react", "vue"}, n.HooksFrameworks())
	assert.Equal(t, "contracts", n.OutputPath("contracts"))
}
