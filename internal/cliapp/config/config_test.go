package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/servergen/internal/cliapp/config"
)

func withMemFs(t *testing.T) afero.Fs {
	t.Helper()
	original := config.AppFs
	fs := afero.NewMemMapFs()
	config.AppFs = fs
	t.Cleanup(func() { config.AppFs = original })
	return fs
}

func TestLoadAppliesDefaultsWhenNoConfigFilePresent(t *testing.T) {
	withMemFs(t)

	raw, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "express", raw.Framework)
	assert.Equal(t, "0.1.0", raw.SdkVersion)
}

func TestLoadReadsExplicitConfigFile(t *testing.T) {
	fs := withMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/project/.servergen.yaml", []byte("framework: fastify\nsdkVersion: \"1.2.3\"\n"), 0o644))

	raw, err := config.Load("/project/.servergen.yaml")
	require.NoError(t, err)
	assert.Equal(t, "fastify", raw.Framework)
	assert.Equal(t, "1.2.3", raw.SdkVersion)
}

func TestLoadReturnsErrorWhenExplicitConfigFileMissing(t *testing.T) {
	withMemFs(t)

	_, err := config.Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
