// Package config validates and normalizes the generation run's
// configuration: framework choice, feature toggles, SDK version, output
// paths, and the plugin list. Validation happens once, at phase 0, before
// any other phase touches the config.
package config

import (
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/schemaforge/servergen/internal/core/errs"
)

// supportedFrameworks is the closed set of HTTP frameworks the controller
// and route phases know how to target.
var supportedFrameworks = map[string]bool{"express": true, "fastify": true}

// supportedHookFrameworks is the closed set the hooks phase accepts; the
// spec explicitly places anything outside this set out of scope.
var supportedHookFrameworks = map[string]bool{"react": true, "vue": true, "svelte": true, "solid": true}

// placeholderSdkVersions are version strings that look real but are not —
// left behind by a template or a forgotten release step.
var placeholderSdkVersions = map[string]bool{
	"0.0.0-dev": true,
	"todo":      true,
	"TODO":      true,
	"":          false, // empty is "not set", handled separately from "set but placeholder"
}

// PluginConfig is one entry in the plugin list.
type PluginConfig struct {
	Name    string         `yaml:"name"`
	Enabled bool           `yaml:"enabled"`
	EnvName string         `yaml:"envName"`
	Config  map[string]any `yaml:"config,omitempty"`
}

// RawConfig is the as-given configuration, before defaults are applied.
// The yaml tags give gopkg.in/yaml.v3 the same field names viper's
// mapstructure decode path already infers case-insensitively, so a
// .servergen.yaml file decodes identically through either path.
type RawConfig struct {
	Framework              string            `yaml:"framework"`
	UseEnhancedGenerators  bool              `yaml:"useEnhancedGenerators"`
	UseRegistry            bool              `yaml:"useRegistry"`
	ContinueOnError        bool              `yaml:"continueOnError"`
	FailFast               bool              `yaml:"failFast"`
	StrictPluginValidation bool              `yaml:"strictPluginValidation"`
	HooksFrameworks        []string          `yaml:"hooksFrameworks"`
	SdkVersion             string            `yaml:"sdkVersion"`
	OutputPaths            map[string]string `yaml:"outputPaths"`
	Plugins                []PluginConfig    `yaml:"plugins"`
}

// NormalizedConfig is the frozen, defaulted configuration every phase
// reads from. Construct it only via Normalize, and only after Validate has
// reported no validation-severity diagnostics.
type NormalizedConfig struct {
	framework              string
	useEnhancedGenerators  bool
	useRegistry            bool
	continueOnError        bool
	failFast               bool
	strictPluginValidation bool
	hooksFrameworks        []string
	sdkVersion             string
	outputPaths            map[string]string
	plugins                []PluginConfig
}

func (c NormalizedConfig) Framework() string             { return c.framework }
func (c NormalizedConfig) UseEnhancedGenerators() bool    { return c.useEnhancedGenerators }
func (c NormalizedConfig) UseRegistry() bool              { return c.useRegistry }
func (c NormalizedConfig) ContinueOnError() bool          { return c.continueOnError }
func (c NormalizedConfig) FailFast() bool                 { return c.failFast }
func (c NormalizedConfig) StrictPluginValidation() bool   { return c.strictPluginValidation }
func (c NormalizedConfig) SdkVersion() string             { return c.sdkVersion }

func (c NormalizedConfig) HooksFrameworks() []string {
	out := make([]string, len(c.hooksFrameworks))
	copy(out, c.hooksFrameworks)
	return out
}

func (c NormalizedConfig) OutputPath(family string) string {
	if path, ok := c.outputPaths[family]; ok {
		return path
	}
	return family
}

func (c NormalizedConfig) Plugins() []PluginConfig {
	out := make([]PluginConfig, len(c.plugins))
	copy(out, c.plugins)
	return out
}

// defaultOutputPaths mirrors the artifact families the spec's external
// interface names.
var defaultOutputPaths = map[string]string{
	"contracts":   "contracts",
	"validators":  "validators",
	"services":    "services",
	"controllers": "controllers",
	"routes":      "routes",
	"sdk":         "sdk",
	"openapi":     "openapi",
	"registry":    "registry",
	"hooks":       "hooks",
	"plugins":     "plugins",
	"checklist":   "checklist",
}

// Validate runs every config-time rule and returns the diagnostics found.
// An empty result does not by itself mean the config is safe to normalize
// — callers should check for validation-severity diagnostics specifically,
// which is what phase 0 does via the escalation policy.
func Validate(raw RawConfig) []errs.Diagnostic {
	var diags []errs.Diagnostic

	if !supportedFrameworks[raw.Framework] {
		diags = append(diags, errs.Diagnostic{
			Severity: errs.SeverityValidation,
			Phase:    "validate-config",
			Code:     "unknown-framework",
			Message:  "config.framework must be one of express, fastify, got " + quoteOrEmpty(raw.Framework),
		})
	}

	if raw.FailFast && raw.ContinueOnError {
		diags = append(diags, errs.Diagnostic{
			Severity: errs.SeverityValidation,
			Phase:    "validate-config",
			Code:     "conflicting-error-policy",
			Message:  "config.failFast and config.continueOnError cannot both be set",
		})
	}

	if raw.SdkVersion != "" {
		if isPlaceholderVersion(raw.SdkVersion) {
			diags = append(diags, errs.Diagnostic{
				Severity: errs.SeverityValidation,
				Phase:    "validate-config",
				Code:     "placeholder-sdk-version",
				Message:  "config.sdkVersion is a placeholder value: " + raw.SdkVersion,
			})
		} else if _, err := goversion.NewVersion(raw.SdkVersion); err != nil {
			diags = append(diags, errs.Diagnostic{
				Severity: errs.SeverityValidation,
				Phase:    "validate-config",
				Code:     "invalid-sdk-version",
				Message:  "config.sdkVersion is not a valid semantic version: " + raw.SdkVersion,
			})
		}
	}

	for _, framework := range raw.HooksFrameworks {
		if !supportedHookFrameworks[framework] {
			diags = append(diags, errs.Diagnostic{
				Severity: errs.SeverityValidation,
				Phase:    "validate-config",
				Code:     "unknown-hook-framework",
				Message:  "config.hooksFrameworks contains unsupported framework " + quoteOrEmpty(framework),
			})
		}
	}

	for _, plugin := range raw.Plugins {
		if !plugin.Enabled {
			continue
		}
		if strings.TrimSpace(plugin.EnvName) == "" {
			diags = append(diags, errs.Diagnostic{
				Severity: errs.SeverityValidation,
				Phase:    "validate-config",
				Code:     "plugin-missing-env-name",
				Message:  "plugin " + quoteOrEmpty(plugin.Name) + " is enabled but declares no environment variable name",
			})
		}
	}

	return diags
}

func isPlaceholderVersion(v string) bool {
	lower := strings.ToLower(v)
	return placeholderSdkVersions[v] || lower == "todo" || lower == "0.0.0-dev"
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return `"` + s + `"`
}

// Normalize applies defaults to raw and freezes the result. Call only
// after Validate has reported no validation-severity diagnostic; Normalize
// itself does not re-validate.
func Normalize(raw RawConfig) NormalizedConfig {
	outputPaths := make(map[string]string, len(defaultOutputPaths))
	for family, path := range defaultOutputPaths {
		outputPaths[family] = path
	}
	for family, path := range raw.OutputPaths {
		outputPaths[family] = path
	}

	hooks := append([]string{}, raw.HooksFrameworks...)
	sort.Strings(hooks)
	hooks = dedupSorted(hooks)

	sdkVersion := raw.SdkVersion
	if sdkVersion == "" {
		sdkVersion = "0.1.0"
	}

	plugins := make([]PluginConfig, len(raw.Plugins))
	copy(plugins, raw.Plugins)

	return NormalizedConfig{
		framework:              raw.Framework,
		useEnhancedGenerators:  raw.UseEnhancedGenerators,
		useRegistry:            raw.UseRegistry,
		continueOnError:        raw.ContinueOnError,
		failFast:               raw.FailFast,
		strictPluginValidation: raw.StrictPluginValidation,
		hooksFrameworks:        hooks,
		sdkVersion:             sdkVersion,
		outputPaths:            outputPaths,
		plugins:                plugins,
	}
}

func dedupSorted(sorted []string) []string {
	out := sorted[:0]
	var last string
	first := true
	for _, s := range sorted {
		if first || s != last {
			out = append(out, s)
			last = s
			first = false
		}
	}
	return out
}
