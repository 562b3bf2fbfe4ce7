package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/ir"
)

// Validate runs every validation rule against a parsed schema and returns
// the collected diagnostics in a stable, deterministic order: enum rules,
// then per-model rules in declaration order, then the global circular-
// relation pass last.
func Validate(schema ir.Schema) []errs.Diagnostic {
	var diags []errs.Diagnostic

	for _, e := range schema.Enums() {
		if len(e.Values()) == 0 {
			diags = append(diags, errs.Diagnostic{
				Severity: errs.SeverityError,
				Phase:    "parse",
				Code:     "empty-enum",
				Message:  fmt.Sprintf("enum %q has no values", e.Name()),
				Model:    e.Name(),
			})
		}
	}

	for _, m := range schema.Models() {
		diags = append(diags, validateModel(m, schema)...)
	}

	for _, cycle := range detectRequiredRelationCycles(schema) {
		diags = append(diags, errs.Diagnostic{
			Severity: errs.SeverityError,
			Phase:    "parse",
			Code:     "circular-required-relation",
			Message:  fmt.Sprintf("circular chain of required relations: %s", cycle),
		})
	}

	return diags
}

func validateModel(m ir.Model, schema ir.Schema) []errs.Diagnostic {
	var diags []errs.Diagnostic

	if _, ok := m.IDField(); !ok {
		pk := m.PrimaryKey()
		if len(pk) == 0 {
			diags = append(diags, errs.Diagnostic{
				Severity: errs.SeverityError,
				Phase:    "parse",
				Code:     "missing-id-field",
				Message:  fmt.Sprintf("model %q has no id field or primary key", m.Name()),
				Model:    m.Name(),
			})
		} else {
			for _, name := range pk {
				if _, ok := m.Field(name); !ok {
					diags = append(diags, errs.Diagnostic{
						Severity: errs.SeverityError,
						Phase:    "parse",
						Code:     "missing-composite-pk-field",
						Message:  fmt.Sprintf("model %q declares primary key field %q which does not exist", m.Name(), name),
						Model:    m.Name(),
						Field:    name,
					})
				}
			}
		}
	}

	for _, f := range m.Fields() {
		if f.Kind() != ir.KindObject {
			continue
		}

		if len(f.RelationFromFields()) > 0 && len(f.RelationToFields()) == 0 {
			diags = append(diags, errs.Diagnostic{
				Severity: errs.SeverityError,
				Phase:    "parse",
				Code:     "incomplete-relation",
				Message:  fmt.Sprintf("relation %q on model %q declares relationFromFields but no relationToFields", f.Name(), m.Name()),
				Model:    m.Name(),
				Field:    f.Name(),
			})
		} else if target, ok := schema.Model(f.Type()); ok {
			for _, rtf := range f.RelationToFields() {
				if _, ok := target.Field(rtf); !ok {
					diags = append(diags, errs.Diagnostic{
						Severity: errs.SeverityError,
						Phase:    "parse",
						Code:     "dangling-relation-target",
						Message: fmt.Sprintf("relation %q on model %q references field %q on model %q, which does not exist",
							f.Name(), m.Name(), rtf, f.Type()),
						Model: m.Name(),
						Field: f.Name(),
					})
				}
			}
		}

		if f.IsSelfRelation() && f.IsRequired() && !f.IsNullable() && len(f.RelationFromFields()) > 0 {
			diags = append(diags, errs.Diagnostic{
				Severity: errs.SeverityError,
				Phase:    "parse",
				Code:     "required-self-relation",
				Message: fmt.Sprintf(
					"relation %q on model %q is a required self-relation that owns its foreign key; "+
						"make the foreign key scalar optional or give it a default to break the creation cycle",
					f.Name(), m.Name()),
				Model: m.Name(),
				Field: f.Name(),
			})
		}
	}

	return diags
}

// detectRequiredRelationCycles runs one global DFS over the graph of
// required, to-one object relations, reporting each distinct cycle exactly
// once. Cycles are deduplicated by a canonical, sorted-node key so the
// same cycle reached from two different starting models is reported once.
func detectRequiredRelationCycles(schema ir.Schema) []string {
	graph := map[string][]string{}
	var order []string
	for _, m := range schema.Models() {
		order = append(order, m.Name())
		for _, f := range m.Fields() {
			if f.Kind() == ir.KindObject && f.IsRequired() && !f.IsList() {
				graph[m.Name()] = append(graph[m.Name()], f.Type())
			}
		}
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	var stack []string
	seen := map[string]bool{}
	var cycles []string

	var visit func(node string)
	visit = func(node string) {
		color[node] = gray
		stack = append(stack, node)
		for _, next := range graph[node] {
			switch color[next] {
			case white:
				visit(next)
			case gray:
				idx := indexOf(stack, next)
				if idx < 0 {
					continue
				}
				path := append(append([]string{}, stack[idx:]...), next)
				key := canonicalCycleKey(path)
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, strings.Join(path, " -> "))
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[node] = black
	}

	for _, name := range order {
		if color[name] == white {
			visit(name)
		}
	}

	return cycles
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}

func canonicalCycleKey(path []string) string {
	nodes := append([]string{}, path[:len(path)-1]...)
	sort.Strings(nodes)
	return strings.Join(nodes, ",")
}

// ValidateDetailedResult is the richer companion to Validate, grouping messages
// by severity the way the legacy string-based API expects.
type ValidateDetailedResult struct {
	Errors   []string
	Warnings []string
	Infos    []string
	All      []string
	IsValid  bool
}

// ValidateDetailedSchema runs Validate and formats the result for display.
func ValidateDetailedSchema(schema ir.Schema) ValidateDetailedResult {
	diags := Validate(schema)
	result := ValidateDetailedResult{IsValid: true}
	for _, d := range diags {
		line := d.String()
		result.All = append(result.All, line)
		switch {
		case d.Severity >= errs.SeverityError:
			result.Errors = append(result.Errors, line)
			result.IsValid = false
		case d.Severity == errs.SeverityWarn:
			result.Warnings = append(result.Warnings, line)
		default:
			result.Infos = append(result.Infos, line)
		}
	}
	return result
}

// ValidateLegacy returns just the message strings, matching the spec's
// legacy `validate(schema): string[]` signature.
func ValidateLegacy(schema ir.Schema) []string {
	diags := Validate(schema)
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}
