package parser

import "github.com/schemaforge/servergen/internal/core/ir"

// GetField looks up a field by name on a model, the exported equivalent of
// the spec's `getField(model, name)` helper.
func GetField(model ir.Model, name string) (ir.Field, bool) {
	return model.Field(name)
}

// GetRelationTarget resolves the model a relation field points at, using
// the schema's model index. Returns false for non-object fields or a field
// whose declared type does not name a known model.
func GetRelationTarget(field ir.Field, schema ir.Schema) (ir.Model, bool) {
	if field.Kind() != ir.KindObject {
		return ir.Model{}, false
	}
	return schema.Model(field.Type())
}

// IsNullable reports whether a field's type should carry `| null` in
// generated TypeScript. List fields are never nullable in Prisma: an empty
// array represents absence, not null.
func IsNullable(isRequired, isList bool) bool {
	return !isRequired && !isList
}

// IsClientManagedDefault reports whether a field's default is evaluated by
// the generated client rather than the database. A literal default is
// always client-managed, and so is now(): Prisma's client computes the
// timestamp itself. autoincrement(), uuid(), cuid() and dbgenerated(...)
// are the only database-managed expressions.
func IsClientManagedDefault(dv ir.PrismaDefaultValue) bool {
	if dv.Kind() == ir.DefaultLiteral {
		return true
	}
	return dv.Kind() == ir.DefaultExpression && !ir.IsDbManagedExpression(dv.Name())
}

// IsOptionalForCreate reports whether a field may be omitted from a create
// payload: it is not required, it is a list (always defaults to empty), it
// carries any default value (client- or database-managed), or the database
// populates it on update (@updatedAt).
func IsOptionalForCreate(f ir.Field) bool {
	if !f.IsRequired() || f.IsList() {
		return true
	}
	if f.HasDefaultValue() {
		return true
	}
	return f.IsUpdatedAt()
}
