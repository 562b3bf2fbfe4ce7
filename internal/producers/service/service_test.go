package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/servergen/internal/core/analyzer"
	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/service"
)

func newAnalyzedContext(model ir.Model) *gencontext.GenerationContext {
	builder := ir.NewSchemaBuilder()
	builder.AddModel(model)
	schema := builder.Freeze()

	cfg := config.Normalize(config.RawConfig{Framework: "express"})
	ctx := gencontext.New(schema, cfg, errs.DefaultPolicy())
	ctx.SetCache(analyzer.AnalyzeSchema(schema))
	return ctx
}

func TestProduceEmitsSearchAndFeaturedMethodsWhenCapable(t *testing.T) {
	model := ir.NewModel(ir.ModelParams{
		Name: "Post",
		Fields: []ir.Field{
			ir.NewField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
			ir.NewField(ir.FieldParams{Name: "title", Type: "String", Kind: ir.KindScalar, IsRequired: true}),
			ir.NewField(ir.FieldParams{Name: "featured", Type: "Boolean", Kind: ir.KindScalar, IsRequired: true}),
		},
	})
	ctx := newAnalyzedContext(model)

	files, err := service.Producer{}.Produce(ctx, model)
	require.NoError(t, err)
	body := files["services/post/post.service.ts"]
	assert.Contains(t, body, "async search(query: string): Promise<PostDto[]>")
	assert.Contains(t, body, "matches against: title")
	assert.Contains(t, body, "async findFeatured(): Promise<PostDto[]>")
}

func TestProduceOmitsSearchAndFeaturedWhenNotCapable(t *testing.T) {
	model := ir.NewModel(ir.ModelParams{
		Name: "Tag",
		Fields: []ir.Field{
			ir.NewField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
		},
	})
	ctx := newAnalyzedContext(model)

	files, err := service.Producer{}.Produce(ctx, model)
	require.NoError(t, err)
	body := files["services/tag/tag.service.ts"]
	assert.NotContains(t, body, "async search(")
	assert.NotContains(t, body, "findFeatured")
}

func TestProduceUsesIdFieldTypeInSignatures(t *testing.T) {
	model := ir.NewModel(ir.ModelParams{
		Name: "Order",
		Fields: []ir.Field{
			ir.NewField(ir.FieldParams{Name: "id", Type: "Int", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
		},
	})
	ctx := newAnalyzedContext(model)

	files, err := service.Producer{}.Produce(ctx, model)
	require.NoError(t, err)
	body := files["services/order/order.service.ts"]
	assert.Contains(t, body, "findById(id: number)")
	assert.Contains(t, body, "update(id: number, data:")
	assert.Contains(t, body, "delete(id: number)")
}
