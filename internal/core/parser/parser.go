// Package parser converts a raw, already JSON-decoded DMMF document into
// the frozen ir.Schema, deriving cross-references and running validation.
// Nothing here accepts a fixed DMMF struct: every raw shape is guarded by
// the guards package before parser code reads a field off it, so a
// malformed document fails with a precise reason instead of a silent
// zero-valued struct.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/guards"
	"github.com/schemaforge/servergen/internal/core/ir"
)

// knownScalarTypes is the closed set of Prisma scalar type names the
// parser can represent directly; anything else (custom database-native
// types wrapped in Unsupported(...), for instance) becomes KindUnsupported
// and is dropped from every generation bucket.
var knownScalarTypes = map[string]bool{
	"String":   true,
	"Int":      true,
	"BigInt":   true,
	"Float":    true,
	"Decimal":  true,
	"Boolean":  true,
	"DateTime": true,
	"Json":     true,
	"Bytes":    true,
}

// Parse converts raw into a frozen ir.Schema. It fails fast with a
// *guards.MalformedDMMFError when the document doesn't have the minimum
// `datamodel.models`/`datamodel.enums` shape. When opts.ThrowOnError is
// set, it additionally runs full validation and returns a
// *errs.SchemaValidationFailed for any Error-or-worse diagnostic.
func Parse(raw guards.RawDMMF, opts Options) (ir.Schema, []errs.Diagnostic, error) {
	rawModels, rawEnums, err := guards.RequireDatamodel(raw)
	if err != nil {
		return ir.Schema{}, nil, err
	}

	enums, enumNames, err := parseEnums(rawEnums)
	if err != nil {
		return ir.Schema{}, nil, err
	}

	builder := ir.NewSchemaBuilder()
	for _, e := range enums {
		builder.AddEnum(e)
	}

	models, err := parseModels(rawModels, enumNames)
	if err != nil {
		return ir.Schema{}, nil, err
	}
	for _, m := range models {
		builder.AddModel(m)
	}

	schema := builder.Freeze()

	if opts.Freeze {
		schema = enhanceSchema(schema, opts.Logger)
	}

	var diags []errs.Diagnostic
	if opts.ThrowOnError {
		diags = Validate(schema)
		if hasErrorOrWorse(diags) {
			return ir.Schema{}, diags, &errs.SchemaValidationFailed{Diagnostics: diags}
		}
	}

	return schema, diags, nil
}

func hasErrorOrWorse(diags []errs.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity >= errs.SeverityError {
			return true
		}
	}
	return false
}

// parseEnums parses every raw enum entry, retaining empty enums so
// validation can report them by name rather than silently dropping them.
func parseEnums(rawEnums []any) ([]ir.Enum, map[string]bool, error) {
	enums := make([]ir.Enum, 0, len(rawEnums))
	names := make(map[string]bool, len(rawEnums))
	for i, raw := range rawEnums {
		name, values, ok := guards.AsEnum(raw)
		if !ok {
			return nil, nil, &guards.MalformedDMMFError{
				Reason: fmt.Sprintf("datamodel.enums[%d] is missing a name or values array", i),
			}
		}
		enums = append(enums, ir.NewEnum(name, values))
		names[name] = true
	}
	return enums, names, nil
}

// parseModels parses every raw model entry and its fields. Kind resolution
// checks the enum name table first, then the DMMF-declared relation kind,
// then the known-scalar table, falling back to KindUnsupported.
func parseModels(rawModels []any, enumNames map[string]bool) ([]ir.Model, error) {
	models := make([]ir.Model, 0, len(rawModels))
	for i, raw := range rawModels {
		obj, rawFields, ok := guards.AsModel(raw)
		if !ok {
			return nil, &guards.MalformedDMMFError{
				Reason: fmt.Sprintf("datamodel.models[%d] is missing a name or fields array", i),
			}
		}
		name := obj["name"].(string)

		compositePK := extractCompositePK(obj)
		fields := make([]ir.Field, 0, len(rawFields))
		for j, rawField := range rawFields {
			field, err := buildField(rawField, name, enumNames, compositePK)
			if err != nil {
				return nil, fmt.Errorf("model %q field[%d]: %w", name, j, err)
			}
			fields = append(fields, field)
		}

		dbName, _ := obj["dbName"].(string)
		doc, _ := obj["documentation"].(string)

		models = append(models, ir.NewModel(ir.ModelParams{
			Name:          name,
			DbName:        dbName,
			Fields:        fields,
			PrimaryKey:    compositePK,
			UniqueFields:  extractUniqueFields(obj),
			Documentation: doc,
		}))
	}
	return models, nil
}

func buildField(raw any, modelName string, enumNames map[string]bool, compositePK []string) (ir.Field, error) {
	rf, ok := guards.AsField(raw)
	if !ok {
		return ir.Field{}, &guards.MalformedDMMFError{Reason: "field is missing required attributes"}
	}

	name, _ := rf.String("name")
	typeName, _ := rf.String("type")
	rawKind, _ := rf.String("kind")
	doc, _ := rf.String("documentation")

	isRequired := rf.Bool("isRequired")
	isList := rf.Bool("isList")
	isUnique := rf.Bool("isUnique")
	isID := rf.Bool("isId")
	isReadOnly := rf.Bool("isReadOnly")
	isUpdatedAt := rf.Bool("isUpdatedAt")
	hasDefaultValue := rf.Bool("hasDefaultValue")

	kind := resolveKind(rawKind, typeName, enumNames)

	var defaultValue ir.PrismaDefaultValue
	if hasDefaultValue {
		if rawDefault, ok := rf.Any("default"); ok {
			defaultValue = parseRawDefault(rawDefault)
		}
	}

	var relationFromFields, relationToFields []string
	var relationName string
	isSelfRelation := false
	if kind == ir.KindObject && rf.IsObjectField() {
		relationFromFields = stringSliceAttr(rf, "relationFromFields")
		relationToFields = stringSliceAttr(rf, "relationToFields")
		relationName, _ = rf.String("relationName")
		isSelfRelation = typeName == modelName
	}

	isPartOfCompositeKey := len(compositePK) > 1 && containsString(compositePK, name)

	return ir.NewField(ir.FieldParams{
		Name:                 name,
		Type:                 typeName,
		Kind:                 kind,
		IsRequired:           isRequired,
		IsNullable:           IsNullable(isRequired, isList),
		IsOptional:           !isRequired,
		IsList:               isList,
		IsID:                 isID,
		IsUnique:             isUnique,
		IsPartOfCompositeKey: isPartOfCompositeKey,
		IsReadOnly:           isReadOnly,
		IsUpdatedAt:          isUpdatedAt,
		IsSelfRelation:       isSelfRelation,
		HasDefaultValue:      hasDefaultValue,
		HasDbDefault:         hasDefaultValue && defaultValue.IsDbManaged(),
		Default:              defaultValue,
		RelationFromFields:   relationFromFields,
		RelationToFields:     relationToFields,
		RelationName:         relationName,
		Documentation:        doc,
	}), nil
}

func resolveKind(rawKind, typeName string, enumNames map[string]bool) ir.FieldKind {
	if enumNames[typeName] {
		return ir.KindEnum
	}
	switch rawKind {
	case "object":
		return ir.KindObject
	case "enum":
		return ir.KindEnum
	}
	if knownScalarTypes[typeName] {
		return ir.KindScalar
	}
	return ir.KindUnsupported
}

// enhanceSchema runs the single-pass categorization over every model:
// locate the id field, detect self-relations, and bucket fields into
// scalarFields/relationFields/createFields/updateFields.
func enhanceSchema(schema ir.Schema, logger *slog.Logger) ir.Schema {
	builder := ir.NewSchemaBuilder()
	for _, e := range schema.Enums() {
		builder.AddEnum(e)
	}
	models := schema.Models()
	for i, m := range models {
		enhanced := enhanceModel(m)
		models[i] = enhanced
		builder.AddModel(enhanced)
	}
	if logger != nil {
		logger.Debug("enhanced schema", "models", len(models))
	}
	return builder.Freeze()
}

func enhanceModel(m ir.Model) ir.Model {
	var idFieldName string
	hasSelfRelation := false
	var scalarFields, relationFields, createFields, updateFields []string

	for _, f := range m.Fields() {
		if f.Kind() == ir.KindUnsupported {
			continue
		}
		if f.IsID() && idFieldName == "" {
			idFieldName = f.Name()
		}
		if f.IsSelfRelation() {
			hasSelfRelation = true
		}

		if f.Kind() == ir.KindObject {
			relationFields = append(relationFields, f.Name())
			continue
		}
		scalarFields = append(scalarFields, f.Name())

		excluded := f.IsID() || f.IsReadOnly() || f.IsUpdatedAt() ||
			(f.HasDbDefault() && ir.IsSystemTimestampName(f.Name()))
		if !excluded {
			createFields = append(createFields, f.Name())
			updateFields = append(updateFields, f.Name())
		}
	}

	return m.WithEnhancement(ir.EnhancementParams{
		IDFieldName:     idFieldName,
		HasSelfRelation: hasSelfRelation,
		ScalarFields:    scalarFields,
		RelationFields:  relationFields,
		CreateFields:    createFields,
		UpdateFields:    updateFields,
	})
}

func extractCompositePK(obj map[string]any) []string {
	if pk, ok := obj["primaryKey"].(map[string]any); ok {
		if fields, ok := pk["fields"].([]any); ok {
			return toStringSlice(fields)
		}
	}
	if idFields, ok := obj["idFields"].([]any); ok {
		return toStringSlice(idFields)
	}
	return nil
}

func extractUniqueFields(obj map[string]any) [][]string {
	raw, ok := obj["uniqueFields"].([]any)
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(raw))
	for _, group := range raw {
		if g, ok := group.([]any); ok {
			out = append(out, toStringSlice(g))
		}
	}
	return out
}

func stringSliceAttr(rf guards.RawField, key string) []string {
	v, ok := rf.Any(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	return toStringSlice(items)
}

func toStringSlice(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
