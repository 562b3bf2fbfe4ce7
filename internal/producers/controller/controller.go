// Package controller generates the HTTP layer binding validators and the
// service to framework routes. Body shape is framework-aware: Express
// controllers take (req, res, next); Fastify controllers take (request,
// reply).
package controller

import (
	"fmt"
	"strings"

	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/producers/shared"
)

// Producer emits one model's controller file, shaped by ctx.Config.Framework().
type Producer struct{}

func (Producer) Produce(ctx *gencontext.GenerationContext, model ir.Model) (map[string]string, error) {
	var body string
	switch ctx.Config.Framework() {
	case "fastify":
		body = fastifyController(model)
	default:
		body = expressController(model)
	}
	path := "controllers/" + model.NameLower() + "/" + model.NameLower() + ".controller.ts"
	return map[string]string{path: body}, nil
}

func expressController(model ir.Model) string {
	name := model.Name()
	lower := model.NameLower()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import type { Request, Response, NextFunction } from \"express\";\n")
	fmt.Fprintf(&b, "import { %sService } from \"../../services/%s/%s.service\";\n", name, lower, lower)
	fmt.Fprintf(&b, "import { create%sSchema, update%sSchema } from \"../../validators/%s/create.validator\";\n\n", name, name, lower)

	fmt.Fprintf(&b, "const service = new %sService();\n\n", name)

	fmt.Fprintf(&b, "export async function create%s(req: Request, res: Response, next: NextFunction) {\n", name)
	b.WriteString("  try {\n")
	fmt.Fprintf(&b, "    const input = create%sSchema.parse(req.body);\n", name)
	b.WriteString("    const result = await service.create(input);\n")
	b.WriteString("    res.status(201).json(result);\n")
	b.WriteString("  } catch (err) {\n    next(err);\n  }\n}\n\n")

	fmt.Fprintf(&b, "export async function get%s(req: Request, res: Response, next: NextFunction) {\n", name)
	b.WriteString("  try {\n")
	b.WriteString("    const result = await service.findById(req.params.id);\n")
	b.WriteString("    if (!result) {\n      res.status(404).json({ message: \"not found\" });\n      return;\n    }\n")
	b.WriteString("    res.status(200).json(result);\n")
	b.WriteString("  } catch (err) {\n    next(err);\n  }\n}\n\n")

	fmt.Fprintf(&b, "export async function update%s(req: Request, res: Response, next: NextFunction) {\n", name)
	b.WriteString("  try {\n")
	fmt.Fprintf(&b, "    const input = update%sSchema.parse(req.body);\n", name)
	b.WriteString("    const result = await service.update(req.params.id, input);\n")
	b.WriteString("    res.status(200).json(result);\n")
	b.WriteString("  } catch (err) {\n    next(err);\n  }\n}\n\n")

	fmt.Fprintf(&b, "export async function delete%s(req: Request, res: Response, next: NextFunction) {\n", name)
	b.WriteString("  try {\n")
	b.WriteString("    await service.delete(req.params.id);\n")
	b.WriteString("    res.status(204).send();\n")
	b.WriteString("  } catch (err) {\n    next(err);\n  }\n}\n")

	return b.String()
}

func fastifyController(model ir.Model) string {
	name := model.Name()
	lower := model.NameLower()
	var b strings.Builder
	b.WriteString(shared.GeneratedFileHeader)
	b.WriteString("import type { FastifyRequest, FastifyReply } from \"fastify\";\n")
	fmt.Fprintf(&b, "import { %sService } from \"../../services/%s/%s.service\";\n", name, lower, lower)
	fmt.Fprintf(&b, "import { create%sSchema, update%sSchema } from \"../../validators/%s/create.validator\";\n\n", name, name, lower)

	fmt.Fprintf(&b, "const service = new %sService();\n\n", name)

	fmt.Fprintf(&b, "export async function create%s(request: FastifyRequest, reply: FastifyReply) {\n", name)
	fmt.Fprintf(&b, "  const input = create%sSchema.parse(request.body);\n", name)
	b.WriteString("  const result = await service.create(input);\n")
	b.WriteString("  return reply.status(201).send(result);\n}\n\n")

	fmt.Fprintf(&b, "export async function get%s(request: FastifyRequest<{ Params: { id: string } }>, reply: FastifyReply) {\n", name)
	b.WriteString("  const result = await service.findById(request.params.id);\n")
	b.WriteString("  if (!result) {\n    return reply.status(404).send({ message: \"not found\" });\n  }\n")
	b.WriteString("  return reply.status(200).send(result);\n}\n\n")

	fmt.Fprintf(&b, "export async function update%s(request: FastifyRequest<{ Params: { id: string } }>, reply: FastifyReply) {\n", name)
	fmt.Fprintf(&b, "  const input = update%sSchema.parse(request.body);\n", name)
	b.WriteString("  const result = await service.update(request.params.id, input);\n")
	b.WriteString("  return reply.status(200).send(result);\n}\n\n")

	fmt.Fprintf(&b, "export async function delete%s(request: FastifyRequest<{ Params: { id: string } }>, reply: FastifyReply) {\n", name)
	b.WriteString("  await service.delete(request.params.id);\n")
	b.WriteString("  return reply.status(204).send();\n}\n")

	return b.String()
}
