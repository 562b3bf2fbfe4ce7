package analyzer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/schemaforge/servergen/internal/core/analyzer"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildField(p ir.FieldParams) ir.Field { return ir.NewField(p) }

func TestAnalyzeDetectsManyToManyPartners(t *testing.T) {
	post := ir.NewModel(ir.ModelParams{
		Name: "Post",
		Fields: []ir.Field{
			buildField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
			buildField(ir.FieldParams{Name: "tags", Type: "Tag", Kind: ir.KindObject, IsList: true, RelationName: "PostTags"}),
		},
	})
	tag := ir.NewModel(ir.ModelParams{
		Name: "Tag",
		Fields: []ir.Field{
			buildField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
			buildField(ir.FieldParams{Name: "posts", Type: "Post", Kind: ir.KindObject, IsList: true, RelationName: "PostTags"}),
		},
	})

	builder := ir.NewSchemaBuilder()
	builder.AddModel(post)
	builder.AddModel(tag)
	schema := builder.Freeze()

	analysis := analyzer.Analyze(post, schema)
	require.Len(t, analysis.Relationships, 1)
	assert.Equal(t, analyzer.ManyToMany, analysis.Relationships[0].Cardinality)
}

func TestAnalyzeJunctionCandidate(t *testing.T) {
	membership := ir.NewModel(ir.ModelParams{
		Name: "TeamMembership",
		Fields: []ir.Field{
			buildField(ir.FieldParams{Name: "teamId", Type: "String", Kind: ir.KindScalar, IsRequired: true, IsPartOfCompositeKey: true}),
			buildField(ir.FieldParams{Name: "userId", Type: "String", Kind: ir.KindScalar, IsRequired: true, IsPartOfCompositeKey: true}),
			buildField(ir.FieldParams{
				Name: "team", Type: "Team", Kind: ir.KindObject, IsRequired: true,
				RelationFromFields: []string{"teamId"}, RelationToFields: []string{"id"},
			}),
			buildField(ir.FieldParams{
				Name: "user", Type: "User", Kind: ir.KindObject, IsRequired: true,
				RelationFromFields: []string{"userId"}, RelationToFields: []string{"id"},
			}),
		},
		PrimaryKey: []string{"teamId", "userId"},
	})

	builder := ir.NewSchemaBuilder()
	builder.AddModel(membership)
	schema := builder.Freeze()

	analysis := analyzer.Analyze(membership, schema)
	assert.True(t, analysis.Capabilities.IsJunctionCandidate)
}

func TestAnalyzeSoftDeleteAndTimestamps(t *testing.T) {
	model := ir.NewModel(ir.ModelParams{
		Name: "Article",
		Fields: []ir.Field{
			buildField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
			buildField(ir.FieldParams{Name: "createdAt", Type: "DateTime", Kind: ir.KindScalar, IsRequired: true}),
			buildField(ir.FieldParams{Name: "updatedAt", Type: "DateTime", Kind: ir.KindScalar, IsRequired: true, IsUpdatedAt: true}),
			buildField(ir.FieldParams{Name: "deletedAt", Type: "DateTime", Kind: ir.KindScalar, IsNullable: true}),
		},
	})
	builder := ir.NewSchemaBuilder()
	builder.AddModel(model)
	schema := builder.Freeze()

	analysis := analyzer.Analyze(model, schema)
	assert.True(t, analysis.Capabilities.HasTimestamps)
	assert.True(t, analysis.Capabilities.HasSoftDelete)
	assert.Equal(t, "deletedAt", analysis.Special.DeletedAtFieldName)
}

func TestAnalyzeSearchFeaturedAndForeignKeyCapabilities(t *testing.T) {
	author := ir.NewModel(ir.ModelParams{
		Name: "Author",
		Fields: []ir.Field{
			buildField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
		},
	})
	post := ir.NewModel(ir.ModelParams{
		Name: "Post",
		Fields: []ir.Field{
			buildField(ir.FieldParams{Name: "id", Type: "String", Kind: ir.KindScalar, IsID: true, IsRequired: true}),
			buildField(ir.FieldParams{Name: "title", Type: "String", Kind: ir.KindScalar, IsRequired: true}),
			buildField(ir.FieldParams{Name: "body", Type: "String", Kind: ir.KindScalar, IsRequired: true}),
			buildField(ir.FieldParams{Name: "featured", Type: "Boolean", Kind: ir.KindScalar, IsRequired: true}),
			buildField(ir.FieldParams{
				Name: "author", Type: "Author", Kind: ir.KindObject, IsRequired: true,
				RelationFromFields: []string{"authorId"}, RelationToFields: []string{"id"},
			}),
		},
	})

	builder := ir.NewSchemaBuilder()
	builder.AddModel(author)
	builder.AddModel(post)
	schema := builder.Freeze()

	analysis := analyzer.Analyze(post, schema)
	want := analyzer.Capabilities{
		HasSearch:    true,
		HasFeatured:  true,
		SearchFields: []string{"title", "body"},
		ForeignKeys:  []string{"authorId"},
	}
	if diff := cmp.Diff(want, analysis.Capabilities); diff != "" {
		t.Errorf("capabilities mismatch (-want +got):\n%s", diff)
	}
}

func TestCacheGetAnalysisMissing(t *testing.T) {
	cache := analyzer.NewCache(1)
	_, err := cache.GetAnalysis("Ghost")
	require.Error(t, err)
	var missing *errs.AnalysisMissing
	require.ErrorAs(t, err, &missing)
	assert.ErrorIs(t, err, errs.ErrAnalysisMissing)
}

func TestCacheGetMissingAnalysis(t *testing.T) {
	cache := analyzer.NewCache(2)
	cache.Set("User", analyzer.UnifiedModelAnalysis{ModelName: "User"})

	missing := cache.GetMissingAnalysis([]string{"User", "Post"})
	assert.Equal(t, []string{"Post"}, missing)
}
