package ir

// PrismaDefaultValue is the closed representation of a field's @default(...)
// value: either a literal the target language can embed directly, or a named
// expression (autoincrement(), now(), uuid(), cuid(), dbgenerated(...), or an
// enum member reference) with its argument list.
//
// A PrismaDefaultValue is frozen at construction: Args and a Literal slice
// value are copied into private backing arrays that Clone() duplicates again
// for every caller, so two callers can never see one another's mutations.
type PrismaDefaultValue struct {
	kind    DefaultKind
	literal any
	name    string
	args    []any
}

// NewLiteralDefault builds a frozen literal default value.
func NewLiteralDefault(value any) PrismaDefaultValue {
	return PrismaDefaultValue{kind: DefaultLiteral, literal: freezeAny(value)}
}

// NewExpressionDefault builds a frozen expression default value, e.g.
// name="dbgenerated", args=["gen_random_uuid()"].
func NewExpressionDefault(name string, args []any) PrismaDefaultValue {
	frozenArgs := make([]any, len(args))
	for i, a := range args {
		frozenArgs[i] = freezeAny(a)
	}
	return PrismaDefaultValue{kind: DefaultExpression, name: name, args: frozenArgs}
}

// Kind reports which variant of default this is.
func (d PrismaDefaultValue) Kind() DefaultKind { return d.kind }

// IsZero reports whether this represents "no default".
func (d PrismaDefaultValue) IsZero() bool { return d.kind == DefaultNone }

// Literal returns a defensive copy of the literal value (nil for non-literal
// defaults).
func (d PrismaDefaultValue) Literal() any { return freezeAny(d.literal) }

// Name returns the expression name (empty for literal/none defaults).
func (d PrismaDefaultValue) Name() string { return d.name }

// Args returns a defensive copy of the expression arguments.
func (d PrismaDefaultValue) Args() []any {
	out := make([]any, len(d.args))
	for i, a := range d.args {
		out[i] = freezeAny(a)
	}
	return out
}

// IsDbManaged reports whether this default is evaluated by the database
// rather than the client (autoincrement, uuid, cuid, dbgenerated). now() is
// client-managed: Prisma's client computes it and sends it on create.
func (d PrismaDefaultValue) IsDbManaged() bool {
	return d.kind == DefaultExpression && IsDbManagedExpression(d.name)
}

// freezeAny deep-copies the small set of shapes PrismaDefaultValue literals
// can take ([]any and map[string]any slices/maps; everything else is a
// Go value type and is already immutable by copy).
func freezeAny(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = freezeAny(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = freezeAny(e)
		}
		return out
	default:
		return v
	}
}
