// Package dto generates the per-model create/update/read/query/bulk
// request and response shapes every downstream layer (validators,
// services, controllers, the SDK) builds on.
package dto

import (
	"fmt"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/core/parser"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

const sharedHelperPath = "contracts/shared/base.dto.ts"

// Producer emits one model's DTO family.
type Producer struct{}

func (Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	out := map[string]string{}

	if !ctx.PathRegistry().Has(sharedHelperPath) {
		out[sharedHelperPath] = sharedHelperText()
	}

	base := "contracts/" + model.NameLower()
	out[base+"/create.dto.ts"] = createDTO(model)
	out[base+"/update.dto.ts"] = updateDTO(model)
	out[base+"/read.dto.ts"] = readDTO(model)
	out[base+"/query.dto.ts"] = queryDTO(model)
	out[base+"/bulk.dto.ts"] = bulkDTO(model)

	return out, nil
}

func sharedHelperText() string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("export interface PaginatedResult<T> {\n")
	b.WriteString("  items: T[];\n")
	b.WriteString("  total: number;\n")
	b.WriteString("  skip: number;\n")
	b.WriteString("  take: number;\n")
	b.WriteString("}\n\n")
	b.WriteString("export interface SortOrder {\n")
	b.WriteString("  field: string;\n")
	b.WriteString("  direction: \"asc\" | \"desc\";\n")
	b.WriteString("}\n")
	return b.String()
}

func createDTO(model ir.Model) string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	fmt.Fprintf(&b, "export interface Create%sDto {\n", model.Name())
	for _, name := range model.CreateFields() {
		f, ok := model.Field(name)
		if !ok {
			continue
		}
		b.WriteString(shared.InterfaceFieldLine(f, parser.IsOptionalForCreate(f)))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func updateDTO(model ir.Model) string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	fmt.Fprintf(&b, "export interface Update%sDto {\n", model.Name())
	for _, name := range model.UpdateFields() {
		f, ok := model.Field(name)
		if !ok {
			continue
		}
		b.WriteString(shared.InterfaceFieldLine(f, true))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func readDTO(model ir.Model) string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	fmt.Fprintf(&b, "export interface %sDto {\n", model.Name())
	for _, f := range model.Fields() {
		if f.Kind() == ir.KindUnsupported || f.Kind() == ir.KindObject {
			continue
		}
		b.WriteString(shared.DocComment("  ", f.Documentation()))
		b.WriteString(shared.InterfaceFieldLine(f, false))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func queryDTO(model ir.Model) string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import type { SortOrder } from \"../shared/base.dto\";\n\n")
	fmt.Fprintf(&b, "export interface Query%sDto {\n", model.Name())
	for _, name := range model.ScalarFields() {
		f, ok := model.Field(name)
		if !ok {
			continue
		}
		b.WriteString(shared.InterfaceFieldLine(f, true))
		b.WriteString("\n")
	}
	b.WriteString("  skip?: number;\n")
	b.WriteString("  take?: number;\n")
	b.WriteString("  orderBy?: SortOrder[];\n")
	b.WriteString("}\n")
	return b.String()
}

func bulkDTO(model ir.Model) string {
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	fmt.Fprintf(&b, "import type { Create%sDto } from \"./create.dto\";\n\n", model.Name())
	fmt.Fprintf(&b, "export interface BulkCreate%sDto {\n", model.Name())
	fmt.Fprintf(&b, "  items: Create%sDto[];\n", model.Name())
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "export interface BulkDelete%sDto {\n", model.Name())
	if idField, ok := model.IDField(); ok {
		fmt.Fprintf(&b, "  ids: %s[];\n", shared.TSType(idField))
	} else {
		b.WriteString("  ids: string[];\n")
	}
	b.WriteString("}\n")
	return b.String()
}
