package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/sdk"
)

func newContext() *gencontext.GenerationContext {
	schema := ir.NewSchemaBuilder().Freeze()
	cfg := config.Normalize(config.RawConfig{Framework: "express"})
	return gencontext.New(schema, cfg, errs.DefaultPolicy())
}

func userModel() ir.Model {
	return ir.NewModel(ir.ModelParams{Name: "User"})
}

func TestResourceFileImportsHttpClientRelatively(t *testing.T) {
	ctx := newContext()
	p := sdk.Producer{AllModelNames: []string{"User"}, SdkVersion: "0.2.0"}

	files, err := p.Produce(ctx, userModel())
	require.NoError(t, err)
	require.Contains(t, files, "sdk/http-client.ts")
	require.Contains(t, files, "sdk/resources/user.resource.ts")
	assert.Contains(t, files["sdk/resources/user.resource.ts"], `from "../http-client"`)
}

func TestHttpClientOnlyEmittedOnce(t *testing.T) {
	ctx := newContext()
	p := sdk.Producer{AllModelNames: []string{"User"}, SdkVersion: "0.2.0"}

	first, err := p.Produce(ctx, userModel())
	require.NoError(t, err)
	for path, content := range first {
		ctx.AddFile("sdk", path, content, "sdk", "User")
	}

	second, err := p.Produce(ctx, userModel())
	require.NoError(t, err)
	assert.NotContains(t, second, "sdk/http-client.ts")
}

func TestClientIndexSortsResourcesByName(t *testing.T) {
	p := sdk.Producer{AllModelNames: []string{"Zebra", "Apple"}, SdkVersion: "0.2.0"}
	files, err := p.Produce(newContext(), ir.Model{})
	require.NoError(t, err)

	client := files["sdk/client.ts"]
	appleIdx := indexOf(client, "AppleResource")
	zebraIdx := indexOf(client, "ZebraResource")
	require.NotEqual(t, -1, appleIdx)
	require.NotEqual(t, -1, zebraIdx)
	assert.Less(t, appleIdx, zebraIdx)
}

func TestVersionFileFallsBackWhenUnset(t *testing.T) {
	p := sdk.Producer{AllModelNames: nil, SdkVersion: ""}
	files, err := p.Produce(newContext(), ir.Model{})
	require.NoError(t, err)
	assert.Contains(t, files["sdk/version.ts"], `"0.0.0"`)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
