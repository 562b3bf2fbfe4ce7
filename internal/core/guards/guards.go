// Package guards type-checks a raw, already JSON-decoded DMMF document
// before the parser is allowed to touch it. Nothing downstream of the
// guards ever sees an untyped map again.
package guards

import "fmt"

// RawDMMF is the JSON shape the parser's entry point receives: a decoded
// `map[string]any`, never a fixed struct, because a struct decode would
// silently zero-value a malformed document instead of letting the guards
// reject it with a precise message.
type RawDMMF = map[string]any

// MalformedDMMFError reports that the top-level DMMF document did not have
// the minimum required shape.
type MalformedDMMFError struct {
	Reason string
}

func (e *MalformedDMMFError) Error() string {
	return fmt.Sprintf("malformed DMMF document: %s", e.Reason)
}

// RequireDatamodel validates that raw has a `datamodel` object whose
// `models` and `enums` are both arrays, and returns those two arrays.
func RequireDatamodel(raw RawDMMF) (models []any, enums []any, err error) {
	datamodelAny, ok := raw["datamodel"]
	if !ok {
		return nil, nil, &MalformedDMMFError{Reason: "missing top-level \"datamodel\" object"}
	}
	datamodel, ok := datamodelAny.(map[string]any)
	if !ok {
		return nil, nil, &MalformedDMMFError{Reason: "\"datamodel\" is not an object"}
	}

	modelsAny, ok := datamodel["models"]
	if !ok {
		return nil, nil, &MalformedDMMFError{Reason: "missing \"datamodel.models\" array"}
	}
	models, ok = modelsAny.([]any)
	if !ok {
		return nil, nil, &MalformedDMMFError{Reason: "\"datamodel.models\" is not an array"}
	}

	enumsAny, ok := datamodel["enums"]
	if !ok {
		return nil, nil, &MalformedDMMFError{Reason: "missing \"datamodel.enums\" array"}
	}
	enums, ok = enumsAny.([]any)
	if !ok {
		return nil, nil, &MalformedDMMFError{Reason: "\"datamodel.enums\" is not an array"}
	}

	return models, enums, nil
}

// RawField is a type-checked view over one field object. IsField rejects
// anything missing the minimum attribute set spec.md §6 names.
type RawField struct {
	Object map[string]any
}

// requiredFieldKeys are the attributes every field, scalar or relation, must
// carry for the field to be considered well-formed.
var requiredFieldKeys = []string{
	"name", "type", "kind", "isList", "isRequired",
	"hasDefaultValue", "isUnique", "isId", "isReadOnly", "isUpdatedAt",
}

// AsField validates that raw is an object carrying the minimum required
// field keys, returning a RawField view for the parser to read typed
// accessors off of.
func AsField(raw any) (RawField, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return RawField{}, false
	}
	for _, key := range requiredFieldKeys {
		if _, ok := obj[key]; !ok {
			return RawField{}, false
		}
	}
	return RawField{Object: obj}, true
}

// IsObjectField reports whether a validated RawField additionally carries
// relation metadata (relationFromFields/relationToFields/relationName),
// which every "object" kind field must have per spec.md §6.
func (f RawField) IsObjectField() bool {
	_, hasFrom := f.Object["relationFromFields"]
	_, hasTo := f.Object["relationToFields"]
	_, hasName := f.Object["relationName"]
	return hasFrom && hasTo && hasName
}

func (f RawField) String(key string) (string, bool) {
	v, ok := f.Object[key].(string)
	return v, ok
}

func (f RawField) Bool(key string) bool {
	v, _ := f.Object[key].(bool)
	return v
}

func (f RawField) Any(key string) (any, bool) {
	v, ok := f.Object[key]
	return v, ok
}

// AsModel validates that raw is an object carrying a name and a fields
// array.
func AsModel(raw any) (map[string]any, []any, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, false
	}
	if _, ok := obj["name"].(string); !ok {
		return nil, nil, false
	}
	fields, ok := obj["fields"].([]any)
	if !ok {
		return nil, nil, false
	}
	return obj, fields, true
}

// AsEnum validates that raw is an object carrying a name and a values array
// (the values array is allowed to be empty — the parser retains empty enums
// so validation can report them).
func AsEnum(raw any) (name string, values []string, ok bool) {
	obj, isObj := raw.(map[string]any)
	if !isObj {
		return "", nil, false
	}
	name, hasName := obj["name"].(string)
	if !hasName {
		return "", nil, false
	}
	rawValues, hasValues := obj["values"].([]any)
	if !hasValues {
		return "", nil, false
	}
	values = make([]string, 0, len(rawValues))
	for _, rv := range rawValues {
		switch t := rv.(type) {
		case string:
			values = append(values, t)
		case map[string]any:
			// Prisma DMMF enum values may be {name: "..."} objects.
			if n, ok := t["name"].(string); ok {
				values = append(values, n)
			}
		}
	}
	return name, values, true
}
