package registrymode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/servergen/internal/core/analyzer"
	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/registrymode"
)

func userModel() ir.Model {
	m := ir.NewModel(ir.ModelParams{
		Name: "User",
		Fields: []ir.Field{
			ir.NewField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
			ir.NewField(ir.FieldParams{Name: "email", Type: "String", Kind: ir.KindScalar, IsRequired: true}),
		},
	})
	return m.WithEnhancement(ir.EnhancementParams{
		IDFieldName:  "id",
		ScalarFields: []string{"id", "email"},
		CreateFields: []string{"email"},
		UpdateFields: []string{"email"},
	})
}

func newContextWithAnalysis(model ir.Model) *gencontext.GenerationContext {
	builder := ir.NewSchemaBuilder()
	builder.AddModel(model)
	schema := builder.Freeze()
	cfg := config.Normalize(config.RawConfig{Framework: "express", UseRegistry: true})
	ctx := gencontext.New(schema, cfg, errs.DefaultPolicy())
	ctx.SetCache(analyzer.AnalyzeSchema(schema))
	return ctx
}

func TestEntryFileImportsTypesFromSiblingFile(t *testing.T) {
	model := userModel()
	ctx := newContextWithAnalysis(model)
	p := registrymode.Producer{AllModelNames: []string{"User"}}

	files, err := p.Produce(ctx, model)
	require.NoError(t, err)
	entry := files["registry/entries/user.entry.ts"]
	assert.Contains(t, entry, `from "../types"`)
	assert.Contains(t, entry, "userEntry")
}

func TestIndexImportsTypesFromLocalFile(t *testing.T) {
	p := registrymode.Producer{AllModelNames: []string{"User"}}
	files, err := p.Produce(newContextWithAnalysis(userModel()), ir.Model{})
	require.NoError(t, err)

	require.Contains(t, files, "registry/types.ts")
	index := files["registry/registry.ts"]
	assert.Contains(t, index, `from "./types"`)
	assert.Contains(t, index, "userEntry")
}

func TestMissingAnalysisPropagatesAsError(t *testing.T) {
	model := userModel()
	builder := ir.NewSchemaBuilder()
	builder.AddModel(model)
	schema := builder.Freeze()
	cfg := config.Normalize(config.RawConfig{Framework: "express", UseRegistry: true})
	ctx := gencontext.New(schema, cfg, errs.DefaultPolicy())

	p := registrymode.Producer{AllModelNames: []string{"User"}}
	_, err := p.Produce(ctx, model)
	require.Error(t, err)
}
