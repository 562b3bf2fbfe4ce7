package ir

import "strings"

// Field is one frozen model field. Construct it with NewField and never
// mutate it afterward; the parser is the only code allowed to build one.
type Field struct {
	name      string
	nameLower string
	typeName  string
	kind      FieldKind

	isRequired               bool
	isNullable               bool
	isOptional               bool
	isList                   bool
	isID                     bool
	isUnique                 bool
	isPartOfCompositeKey     bool
	isReadOnly               bool
	isUpdatedAt              bool
	isSelfRelation           bool

	hasDefaultValue bool
	hasDbDefault    bool
	defaultValue    PrismaDefaultValue

	relationFromFields []string
	relationToFields   []string
	relationName       string

	documentation string
}

// FieldParams is the input to construction; every derived boolean the parser
// computes (nameLower, isReadOnly, hasDbDefault, ...) is supplied already
// resolved so Field itself stays a pure data holder.
type FieldParams struct {
	Name          string
	Type          string
	Kind          FieldKind
	IsRequired    bool
	IsNullable    bool
	IsOptional    bool
	IsList        bool
	IsID          bool
	IsUnique      bool
	IsPartOfCompositeKey bool
	IsReadOnly    bool
	IsUpdatedAt   bool
	IsSelfRelation bool

	HasDefaultValue bool
	HasDbDefault    bool
	Default         PrismaDefaultValue

	RelationFromFields []string
	RelationToFields   []string
	RelationName       string

	Documentation string
}

// NewField freezes a FieldParams into a Field. Only the parser package calls
// this.
func NewField(p FieldParams) Field {
	return Field{
		name:                 p.Name,
		nameLower:            strings.ToLower(p.Name),
		typeName:             p.Type,
		kind:                 p.Kind,
		isRequired:           p.IsRequired,
		isNullable:           p.IsNullable,
		isOptional:           p.IsOptional,
		isList:               p.IsList,
		isID:                 p.IsID,
		isUnique:             p.IsUnique,
		isPartOfCompositeKey: p.IsPartOfCompositeKey,
		isReadOnly:           p.IsReadOnly,
		isUpdatedAt:          p.IsUpdatedAt,
		isSelfRelation:       p.IsSelfRelation,
		hasDefaultValue:      p.HasDefaultValue,
		hasDbDefault:         p.HasDbDefault,
		defaultValue:         p.Default,
		relationFromFields:   cloneStrings(p.RelationFromFields),
		relationToFields:     cloneStrings(p.RelationToFields),
		relationName:         p.RelationName,
		documentation:        p.Documentation,
	}
}

func (f Field) Name() string      { return f.name }
func (f Field) NameLower() string { return f.nameLower }
func (f Field) Type() string      { return f.typeName }
func (f Field) Kind() FieldKind   { return f.kind }

func (f Field) IsRequired() bool             { return f.isRequired }
func (f Field) IsNullable() bool             { return f.isNullable }
func (f Field) IsOptional() bool             { return f.isOptional }
func (f Field) IsList() bool                 { return f.isList }
func (f Field) IsID() bool                   { return f.isID }
func (f Field) IsUnique() bool               { return f.isUnique }
func (f Field) IsPartOfCompositeKey() bool   { return f.isPartOfCompositeKey }
func (f Field) IsReadOnly() bool             { return f.isReadOnly }
func (f Field) IsUpdatedAt() bool            { return f.isUpdatedAt }
func (f Field) IsSelfRelation() bool         { return f.isSelfRelation }

func (f Field) HasDefaultValue() bool       { return f.hasDefaultValue }
func (f Field) HasDbDefault() bool          { return f.hasDbDefault }
func (f Field) Default() PrismaDefaultValue { return f.defaultValue }

// RelationFromFields returns a defensive copy; empty for non-relation fields
// and for the "many" side of an implicit many-to-many relation.
func (f Field) RelationFromFields() []string { return cloneStrings(f.relationFromFields) }
func (f Field) RelationToFields() []string   { return cloneStrings(f.relationToFields) }
func (f Field) RelationName() string         { return f.relationName }

func (f Field) Documentation() string { return f.documentation }

// IsImplicitManyToMany reports the spec's edge case: a list relation field
// with no declared relationFromFields.
func (f Field) IsImplicitManyToMany() bool {
	return f.kind == KindObject && f.isList && len(f.relationFromFields) == 0
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
