package phases_test

import (
	"github.com/schemaforge/servergen/internal/core/analyzer"
	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
)

func buildUserModel() ir.Model {
	m := ir.NewModel(ir.ModelParams{
		Name: "User",
		Fields: []ir.Field{
			ir.NewField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
			ir.NewField(ir.FieldParams{Name: "email", Type: "String", Kind: ir.KindScalar, IsRequired: true, IsUnique: true}),
			ir.NewField(ir.FieldParams{Name: "name", Type: "String", Kind: ir.KindScalar, IsNullable: true}),
		},
	})
	return m.WithEnhancement(ir.EnhancementParams{
		IDFieldName:  "id",
		ScalarFields: []string{"id", "email", "name"},
		CreateFields: []string{"email", "name"},
		UpdateFields: []string{"email", "name"},
	})
}

// newAnalyzedContext builds a context around a single-model schema with its
// analysis cache already populated, mirroring what AnalyzeModels produces,
// so phases downstream of it can be tested in isolation.
func newAnalyzedContext(cfg config.NormalizedConfig) *gencontext.GenerationContext {
	user := buildUserModel()
	builder := ir.NewSchemaBuilder()
	builder.AddModel(user)
	schema := builder.Freeze()

	ctx := gencontext.New(schema, cfg, errs.DefaultPolicy())
	ctx.SetCache(analyzer.AnalyzeSchema(schema))
	return ctx
}

func defaultTestConfig() config.NormalizedConfig {
	return config.Normalize(config.RawConfig{Framework: "express"})
}
