package ir

import "strings"

// Model is a frozen parsed model. Before WithEnhancement runs, the
// categorization buckets and idField are empty; ParsedSchema never exposes
// an un-enhanced model to a phase, only to the parser's own validation pass.
type Model struct {
	name          string
	nameLower     string
	dbName        string
	fields        []Field
	primaryKey    []string
	uniqueFields  [][]string
	documentation string

	enhanced        bool
	idFieldName     string
	hasSelfRelation bool
	scalarFields    []string
	relationFields  []string
	createFields    []string
	updateFields    []string
}

// ModelParams is the parser's construction input for an un-enhanced model.
type ModelParams struct {
	Name          string
	DbName        string
	Fields        []Field
	PrimaryKey    []string
	UniqueFields  [][]string
	Documentation string
}

// NewModel freezes a ModelParams into a Model. Call WithEnhancement afterward to
// populate the derived buckets before the model reaches any phase.
func NewModel(p ModelParams) Model {
	fields := make([]Field, len(p.Fields))
	copy(fields, p.Fields)
	uniq := make([][]string, len(p.UniqueFields))
	for i, u := range p.UniqueFields {
		uniq[i] = cloneStrings(u)
	}
	return Model{
		name:          p.Name,
		nameLower:     lowerName(p.Name),
		dbName:        p.DbName,
		fields:        fields,
		primaryKey:    cloneStrings(p.PrimaryKey),
		uniqueFields:  uniq,
		documentation: p.Documentation,
	}
}

func (m Model) Name() string      { return m.name }
func (m Model) NameLower() string { return m.nameLower }
func (m Model) DbName() string    { return m.dbName }

// Fields returns a defensive copy of every parsed field, including
// unsupported ones (the enhancement step is what filters those out of the
// categorization buckets — Fields() itself is the raw parse result).
func (m Model) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

func (m Model) Field(name string) (Field, bool) {
	for _, f := range m.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return Field{}, false
}

func (m Model) PrimaryKey() []string { return cloneStrings(m.primaryKey) }

func (m Model) UniqueFields() [][]string {
	out := make([][]string, len(m.uniqueFields))
	for i, u := range m.uniqueFields {
		out[i] = cloneStrings(u)
	}
	return out
}

func (m Model) Documentation() string { return m.documentation }

func (m Model) IsEnhanced() bool { return m.enhanced }

// IDField returns the model's id field, if enhancement located one.
func (m Model) IDField() (Field, bool) {
	if m.idFieldName == "" {
		return Field{}, false
	}
	return m.Field(m.idFieldName)
}

func (m Model) HasSelfRelation() bool { return m.hasSelfRelation }

// ScalarFields, RelationFields, CreateFields, UpdateFields return the field
// *names* in the categorization bucket, in stable (declaration) order.
func (m Model) ScalarFields() []string   { return cloneStrings(m.scalarFields) }
func (m Model) RelationFields() []string { return cloneStrings(m.relationFields) }
func (m Model) CreateFields() []string   { return cloneStrings(m.createFields) }
func (m Model) UpdateFields() []string   { return cloneStrings(m.updateFields) }

// EnhancementParams carries the results of the single-pass categorization
// the parser's enhance stage computes.
type EnhancementParams struct {
	IDFieldName     string
	HasSelfRelation bool
	ScalarFields    []string
	RelationFields  []string
	CreateFields    []string
	UpdateFields    []string
}

// WithEnhancement returns a new, enhanced Model value; Model itself stays
// immutable, so enhancement is modeled as "build a new frozen value" rather
// than in-place mutation.
func (m Model) WithEnhancement(e EnhancementParams) Model {
	m.enhanced = true
	m.idFieldName = e.IDFieldName
	m.hasSelfRelation = e.HasSelfRelation
	m.scalarFields = cloneStrings(e.ScalarFields)
	m.relationFields = cloneStrings(e.RelationFields)
	m.createFields = cloneStrings(e.CreateFields)
	m.updateFields = cloneStrings(e.UpdateFields)
	return m
}

func lowerName(s string) string {
	return strings.ToLower(s)
}
