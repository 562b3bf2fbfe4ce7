package ir

// Schema is the frozen root of the intermediate representation: every
// Model and Enum the parser produced, plus two derived indexes
// (modelMap/enumMap by name) and the reverse-relation index. Nothing in
// Schema is ever mutated after Freeze() returns it.
type Schema struct {
	models []Model
	enums  []Enum

	modelIndex map[string]int
	enumIndex  map[string]int

	// reverseRelationMap maps a target model name to the fields (on other
	// models) whose relation points at it.
	reverseRelationMap map[string][]Field
}

// SchemaBuilder accumulates models/enums during parsing and freezes them
// into a Schema. It is not itself part of the frozen IR.
type SchemaBuilder struct {
	models []Model
	enums  []Enum
}

func NewSchemaBuilder() *SchemaBuilder { return &SchemaBuilder{} }

func (b *SchemaBuilder) AddModel(m Model) { b.models = append(b.models, m) }
func (b *SchemaBuilder) AddEnum(e Enum)   { b.enums = append(b.enums, e) }

func (b *SchemaBuilder) Models() []Model {
	out := make([]Model, len(b.models))
	copy(out, b.models)
	return out
}

func (b *SchemaBuilder) Enums() []Enum {
	out := make([]Enum, len(b.enums))
	copy(out, b.enums)
	return out
}

// ReplaceModel swaps the model at the given index (used by the enhancement
// stage, which produces a new, enhanced Model value per the immutable-model
// design in model.go).
func (b *SchemaBuilder) ReplaceModel(i int, m Model) { b.models[i] = m }

// Freeze builds the final reverse-relation index and returns the immutable
// Schema. Called exactly once, at the end of parsing.
func (b *SchemaBuilder) Freeze() Schema {
	models := make([]Model, len(b.models))
	copy(models, b.models)
	enums := make([]Enum, len(b.enums))
	copy(enums, b.enums)

	modelIndex := make(map[string]int, len(models))
	for i, m := range models {
		modelIndex[m.Name()] = i
	}
	enumIndex := make(map[string]int, len(enums))
	for i, e := range enums {
		enumIndex[e.Name()] = i
	}

	reverse := map[string][]Field{}
	for _, m := range models {
		for _, f := range m.Fields() {
			if f.Kind() != KindObject {
				continue
			}
			reverse[f.Type()] = append(reverse[f.Type()], f)
		}
	}

	return Schema{
		models:             models,
		enums:              enums,
		modelIndex:         modelIndex,
		enumIndex:          enumIndex,
		reverseRelationMap: reverse,
	}
}

// Models returns a defensive copy of every model, in declaration order.
func (s Schema) Models() []Model {
	out := make([]Model, len(s.models))
	copy(out, s.models)
	return out
}

// Enums returns a defensive copy of every enum, in declaration order.
func (s Schema) Enums() []Enum {
	out := make([]Enum, len(s.enums))
	copy(out, s.enums)
	return out
}

// Model looks up a model by name.
func (s Schema) Model(name string) (Model, bool) {
	i, ok := s.modelIndex[name]
	if !ok {
		return Model{}, false
	}
	return s.models[i], true
}

// Enum looks up an enum by name.
func (s Schema) Enum(name string) (Enum, bool) {
	i, ok := s.enumIndex[name]
	if !ok {
		return Enum{}, false
	}
	return s.enums[i], true
}

// ReverseRelations returns, for a target model name, every field on other
// models whose relation points at it. Frozen: callers get a fresh copy.
func (s Schema) ReverseRelations(modelName string) []Field {
	fields := s.reverseRelationMap[modelName]
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
