// Package analyzer computes, exactly once per model, every analysis a
// downstream generation phase may need — relationship cardinality, special
// fields, and capability flags — replacing what would otherwise be several
// independent scans over the same field list.
package analyzer

import "github.com/schemaforge/servergen/internal/core/ir"

// Cardinality is the closed set of relationship shapes the analyzer
// recognizes.
type Cardinality string

const (
	OneToOne   Cardinality = "one-to-one"
	OneToMany  Cardinality = "one-to-many"
	ManyToOne  Cardinality = "many-to-one"
	ManyToMany Cardinality = "many-to-many"
)

// Relationship describes one object field's resolved cardinality.
type Relationship struct {
	FieldName            string
	TargetModel          string
	Cardinality          Cardinality
	IsOwningSide         bool
	IsImplicitManyToMany bool
}

// SpecialFields names the model's recognized well-known fields, each empty
// when the model doesn't have one.
type SpecialFields struct {
	IDFieldName        string
	SlugFieldName      string
	CreatedAtFieldName string
	UpdatedAtFieldName string
	DeletedAtFieldName string
}

// Capabilities are boolean flags and derived field sets from SpecialFields
// and the model's shape, cheap enough to store rather than recompute per
// phase.
type Capabilities struct {
	HasTimestamps       bool
	HasSoftDelete       bool
	IsJunctionCandidate bool
	HasSearch           bool
	HasFeatured         bool
	SearchFields        []string
	ForeignKeys         []string
}

// UnifiedModelAnalysis is the complete, single-pass result for one model.
type UnifiedModelAnalysis struct {
	ModelName     string
	Relationships []Relationship
	Special       SpecialFields
	Capabilities  Capabilities
}

// Analyze walks model's fields exactly once and produces its complete
// analysis. schema is consulted only to classify each relationship's
// cardinality (looking up the field's target model and, for many-to-many
// detection, the partner field on that target) — never to analyze any
// other model's fields.
func Analyze(model ir.Model, schema ir.Schema) UnifiedModelAnalysis {
	result := UnifiedModelAnalysis{ModelName: model.Name()}

	var requiredOwningRelations int
	onlyCompositeOrReadOnlyScalars := true
	var searchFields, foreignKeys []string
	var hasFeatured bool

	for _, f := range model.Fields() {
		if f.Kind() == ir.KindUnsupported {
			continue
		}

		if f.Kind() == ir.KindObject {
			result.Relationships = append(result.Relationships, classifyRelationship(f, model, schema))
			if len(f.RelationFromFields()) > 0 {
				foreignKeys = append(foreignKeys, f.RelationFromFields()...)
			}
			if f.IsRequired() && !f.IsList() && len(f.RelationFromFields()) > 0 {
				requiredOwningRelations++
			}
			continue
		}

		if !f.IsPartOfCompositeKey() && !f.IsReadOnly() {
			onlyCompositeOrReadOnlyScalars = false
		}

		if f.Type() == "String" && !f.IsID() && !f.IsList() && !f.IsPartOfCompositeKey() {
			searchFields = append(searchFields, f.Name())
		}
		if f.Name() == "featured" && f.Type() == "Boolean" {
			hasFeatured = true
		}

		switch {
		case f.IsID() && result.Special.IDFieldName == "":
			result.Special.IDFieldName = f.Name()
		case f.Name() == "slug" && f.IsUnique():
			result.Special.SlugFieldName = f.Name()
		case f.Name() == "createdAt":
			result.Special.CreatedAtFieldName = f.Name()
		case f.Name() == "updatedAt" || f.IsUpdatedAt():
			result.Special.UpdatedAtFieldName = f.Name()
		case f.Name() == "deletedAt" && f.IsNullable():
			result.Special.DeletedAtFieldName = f.Name()
		}
	}

	result.Capabilities = Capabilities{
		HasTimestamps:       result.Special.CreatedAtFieldName != "" && result.Special.UpdatedAtFieldName != "",
		HasSoftDelete:       result.Special.DeletedAtFieldName != "",
		IsJunctionCandidate: requiredOwningRelations == 2 && onlyCompositeOrReadOnlyScalars,
		HasSearch:           len(searchFields) > 0,
		HasFeatured:         hasFeatured,
		SearchFields:        searchFields,
		ForeignKeys:         foreignKeys,
	}

	return result
}

func classifyRelationship(f ir.Field, model ir.Model, schema ir.Schema) Relationship {
	owning := len(f.RelationFromFields()) > 0
	rel := Relationship{
		FieldName:            f.Name(),
		TargetModel:          f.Type(),
		IsOwningSide:         owning,
		IsImplicitManyToMany: f.IsImplicitManyToMany(),
	}

	switch {
	case f.IsList() && !owning:
		if isManyToManyPartner(f, model, schema) {
			rel.Cardinality = ManyToMany
		} else {
			rel.Cardinality = OneToMany
		}
	case !f.IsList() && owning:
		if isUniqueForeignKey(f, model) {
			rel.Cardinality = OneToOne
		} else {
			rel.Cardinality = ManyToOne
		}
	case !f.IsList() && !owning:
		rel.Cardinality = OneToOne
	default:
		// A list field that also owns its foreign key columns does not
		// occur in well-formed DMMF; treat it as many-to-many rather than
		// guessing at a scalar cardinality that cannot apply to a list.
		rel.Cardinality = ManyToMany
	}
	return rel
}

// isManyToManyPartner reports whether the reverse side of f's relation is
// itself a non-owning list field, the signature of an implicit many-to-many
// join Prisma manages without a visible junction model.
func isManyToManyPartner(f ir.Field, model ir.Model, schema ir.Schema) bool {
	target, ok := schema.Model(f.Type())
	if !ok {
		return false
	}
	for _, tf := range target.Fields() {
		if tf.Kind() == ir.KindObject && tf.Type() == model.Name() && tf.RelationName() == f.RelationName() {
			return tf.IsList() && len(tf.RelationFromFields()) == 0
		}
	}
	return false
}

// isUniqueForeignKey reports whether the owning side's foreign key columns
// are themselves constrained unique (a single unique/id scalar, or an
// exact match to a declared composite unique group), which marks the
// relation one-to-one rather than many-to-one.
func isUniqueForeignKey(f ir.Field, model ir.Model) bool {
	from := f.RelationFromFields()
	if len(from) == 1 {
		if scalar, ok := model.Field(from[0]); ok && (scalar.IsUnique() || scalar.IsID()) {
			return true
		}
	}
	for _, group := range model.UniqueFields() {
		if sameFieldSet(group, from) {
			return true
		}
	}
	return false
}

func sameFieldSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, x := range a {
		seen[x] = true
	}
	for _, y := range b {
		if !seen[y] {
			return false
		}
	}
	return true
}
