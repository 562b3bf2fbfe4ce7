// Package ir defines the frozen intermediate representation produced by the
// DMMF parser and consumed by every later pipeline phase.
package ir

// FieldKind is the closed set of field kinds a parsed field can carry.
type FieldKind string

const (
	KindScalar      FieldKind = "scalar"
	KindObject      FieldKind = "object"
	KindEnum        FieldKind = "enum"
	KindUnsupported FieldKind = "unsupported"
)

// DefaultKind distinguishes a client-visible literal default from a
// function-call expression default (autoincrement, uuid, now, ...); only
// some expressions are database-evaluated, see dbManagedExpressions.
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	DefaultLiteral
	DefaultExpression
)

// dbManagedExpressions are the default-value expression names Prisma
// documents as database-managed: the database computes the value, so the
// field is omitted on create and, for IDs and @updatedAt, read-only.
//
// now() is deliberately absent: Prisma's client evaluates now() itself and
// sends the timestamp on create, so a createdAt/updatedAt field defaulted
// with now() stays client-visible rather than falling into the
// system-timestamp exclusion below.
var dbManagedExpressions = map[string]bool{
	"autoincrement": true,
	"uuid":          true,
	"cuid":          true,
	"dbgenerated":   true,
}

// IsDbManagedExpression reports whether an expression default name is
// database-managed per the closed set above.
func IsDbManagedExpression(name string) bool {
	return dbManagedExpressions[name]
}

// systemTimestampFields are the field names the parser treats specially when
// deciding create/update eligibility for a DB-managed default.
var systemTimestampFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"deletedAt": true,
}

// IsSystemTimestampName reports whether name is one of the closed set of
// system-timestamp field names.
func IsSystemTimestampName(name string) bool {
	return systemTimestampFields[name]
}
