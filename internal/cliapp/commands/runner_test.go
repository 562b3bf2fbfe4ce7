package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
)

func TestExitCodeForMapsErrorTaxonomy(t *testing.T) {
	assert.Equal(t, 0, exitCodeFor(nil))
	assert.Equal(t, 1, exitCodeFor(&errs.SchemaValidationFailed{}))
	assert.Equal(t, 2, exitCodeFor(&errs.GenerationFailedError{Phase: "dto"}))
	assert.Equal(t, 3, exitCodeFor(assert.AnError))
}

func TestWriteFilesCreatesParentDirectoriesAndContent(t *testing.T) {
	schema := ir.NewSchemaBuilder().Freeze()
	cfg := config.Normalize(config.RawConfig{Framework: "express"})
	ctx := gencontext.New(schema, cfg, errs.DefaultPolicy())
	ctx.AddFile("contracts", "contracts/user/create.dto.ts", "export interface X {}\n", "test", "User")

	fs := afero.NewMemMapFs()
	require.NoError(t, writeFiles(fs, ctx, "/out"))

	content, err := afero.ReadFile(fs, "/out/contracts/user/create.dto.ts")
	require.NoError(t, err)
	assert.Contains(t, string(content), "export interface X")
}

func TestDefaultPipelineIncludesCorePhases(t *testing.T) {
	p := defaultPipeline()
	require.NotNil(t, p)
}
