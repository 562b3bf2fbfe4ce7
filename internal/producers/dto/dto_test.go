package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/dto"
)

func buildUserModel() ir.Model {
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

func newContext() *gencontext.GenerationContext {
	schema := ir.NewSchemaBuilder().Freeze()
	cfg := config.Normalize(config.RawConfig{Framework: "express"})
	return gencontext.New(schema, cfg, errs.DefaultPolicy())
}

func TestProduceEmitsSharedHelperOnlyOnce(t *testing.T) {
	ctx := newContext()
	model := buildUserModel()

	first, err := dto.Producer{}.Produce(ctx, model)
	require.NoError(t, err)
	require.Contains(t, first, "contracts/shared/base.dto.ts")
	for path, content := range first {
		ctx.AddFile("contracts", path, content, "dto", model.Name())
	}

	second, err := dto.Producer{}.Produce(ctx, model)
	require.NoError(t, err)
	assert.NotContains(t, second, "contracts/shared/base.dto.ts", "once the path is claimed a second Produce call must not re-emit it")
}

func TestCreateDtoOnlyIncludesCreateFields(t *testing.T) {
	ctx := newContext()
	model := buildUserModel()

	files, err := dto.Producer{}.Produce(ctx, model)
	require.NoError(t, err)

	create := files["contracts/user/create.dto.ts"]
	assert.Contains(t, create, "CreateUserDto")
	assert.Contains(t, create, "email")
	assert.NotContains(t, create, "id:")
}

func TestBulkDtoUsesIdFieldType(t *testing.T) {
	ctx := newContext()
	model := buildUserModel()

	files, err := dto.Producer{}.Produce(ctx, model)
	require.NoError(t, err)

	bulk := files["contracts/user/bulk.dto.ts"]
	assert.Contains(t, bulk, "ids: string[];")
}
