package parser_test

import (
	"testing"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/guards"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/core/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarField(name, typeName string, required bool) map[string]any {
	return map[string]any{
		"name": name, "type": typeName, "kind": "scalar",
		"isList": false, "isRequired": required,
		"hasDefaultValue": false, "isUnique": false, "isId": false,
		"isReadOnly": false, "isUpdatedAt": false,
	}
}

func idField() map[string]any {
	f := scalarField("id", "String", true)
	f["isId"] = true
	f["hasDefaultValue"] = true
	f["default"] = map[string]any{"name": "cuid", "args": []any{}}
	return f
}

func relationField(name, targetModel string, required, list bool, from, to []string) map[string]any {
	return map[string]any{
		"name": name, "type": targetModel, "kind": "object",
		"isList": list, "isRequired": required,
		"hasDefaultValue": false, "isUnique": false, "isId": false,
		"isReadOnly": false, "isUpdatedAt": false,
		"relationFromFields": toAny(from), "relationToFields": toAny(to),
		"relationName": name + "Relation",
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func dmmf(models []any, enums []any) guards.RawDMMF {
	return guards.RawDMMF{
		"datamodel": map[string]any{"models": models, "enums": enums},
	}
}

func TestParseRejectsMissingDatamodel(t *testing.T) {
	_, _, err := parser.Parse(guards.RawDMMF{}, parser.DefaultOptions())
	require.Error(t, err)
	var malformed *guards.MalformedDMMFError
	assert.ErrorAs(t, err, &malformed)
}

func TestParseSimpleModel(t *testing.T) {
	raw := dmmf([]any{
		map[string]any{
			"name": "User",
			"fields": []any{
				idField(),
				scalarField("email", "String", true),
			},
		},
	}, nil)

	schema, _, err := parser.Parse(raw, parser.DefaultOptions())
	require.NoError(t, err)

	user, ok := schema.Model("User")
	require.True(t, ok)
	assert.Equal(t, "user", user.NameLower())

	idF, ok := user.IDField()
	require.True(t, ok)
	assert.Equal(t, "id", idF.Name())
	assert.True(t, idF.HasDbDefault())

	assert.NotContains(t, user.CreateFields(), "id", "an id with a db-managed default must be excluded from create")
	assert.Contains(t, user.CreateFields(), "email")
}

func TestParseReadsSameSchemaTwiceIdentically(t *testing.T) {
	raw := dmmf([]any{
		map[string]any{"name": "User", "fields": []any{idField()}},
	}, nil)

	schemaA, _, err := parser.Parse(raw, parser.DefaultOptions())
	require.NoError(t, err)
	schemaB, _, err := parser.Parse(raw, parser.DefaultOptions())
	require.NoError(t, err)

	userA, _ := schemaA.Model("User")
	userB, _ := schemaB.Model("User")
	assert.Equal(t, userA.Fields(), userB.Fields())
}

func TestModelFieldsAreDefensiveCopies(t *testing.T) {
	raw := dmmf([]any{
		map[string]any{"name": "User", "fields": []any{idField()}},
	}, nil)
	schema, _, err := parser.Parse(raw, parser.DefaultOptions())
	require.NoError(t, err)

	user, _ := schema.Model("User")
	first := user.Fields()
	first[0] = ir.Field{}
	second := user.Fields()
	assert.Equal(t, "id", second[0].Name(), "mutating a returned slice must not affect the model")
}

func TestValidateReportsEmptyEnumByName(t *testing.T) {
	raw := dmmf(nil, []any{
		map[string]any{"name": "Role", "values": []any{}},
	})
	schema, _, err := parser.Parse(raw, parser.DefaultOptions())
	require.NoError(t, err)

	diags := parser.Validate(schema)
	require.Len(t, diags, 1)
	assert.Equal(t, errs.SeverityError, diags[0].Severity)
	assert.Equal(t, "empty-enum", diags[0].Code)
	assert.Contains(t, diags[0].Message, "Role")
}

func TestValidateFlagsRequiredSelfRelationOwningFK(t *testing.T) {
	raw := dmmf([]any{
		map[string]any{
			"name": "Category",
			"fields": []any{
				idField(),
				relationField("parent", "Category", true, false, []string{"parentId"}, []string{"id"}),
				scalarField("parentId", "String", true),
			},
		},
	}, nil)
	schema, _, err := parser.Parse(raw, parser.DefaultOptions())
	require.NoError(t, err)

	diags := parser.Validate(schema)
	require.NotEmpty(t, diags)
	assert.Equal(t, "required-self-relation", diags[0].Code)
}

func TestValidateDetectsCircularRequiredRelations(t *testing.T) {
	raw := dmmf([]any{
		map[string]any{
			"name": "A",
			"fields": []any{
				idField(),
				relationField("b", "B", true, false, []string{"bId"}, []string{"id"}),
				scalarField("bId", "String", true),
			},
		},
		map[string]any{
			"name": "B",
			"fields": []any{
				idField(),
				relationField("a", "A", true, false, []string{"aId"}, []string{"id"}),
				scalarField("aId", "String", true),
			},
		},
	}, nil)
	schema, _, err := parser.Parse(raw, parser.DefaultOptions())
	require.NoError(t, err)

	diags := parser.Validate(schema)
	var cycleCount int
	for _, d := range diags {
		if d.Code == "circular-required-relation" {
			cycleCount++
		}
	}
	assert.Equal(t, 1, cycleCount, "the A<->B cycle must be reported exactly once regardless of which node the DFS starts from")
}

func TestGetDefaultValueStringIsTotalAndIdempotent(t *testing.T) {
	raw := dmmf([]any{
		map[string]any{
			"name": "Post",
			"fields": []any{
				idField(),
				func() map[string]any {
					f := scalarField("views", "Int", true)
					f["hasDefaultValue"] = true
					f["default"] = float64(0)
					return f
				}(),
			},
		},
	}, nil)
	schema, _, err := parser.Parse(raw, parser.DefaultOptions())
	require.NoError(t, err)

	post, _ := schema.Model("Post")
	views, _ := post.Field("views")
	s1, ok1 := parser.GetDefaultValueString(views)
	s2, ok2 := parser.GetDefaultValueString(views)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, "0", s1)

	idF, _ := post.Field("id")
	_, ok := parser.GetDefaultValueString(idF)
	assert.False(t, ok, "a db-managed cuid() default must not render")
}
