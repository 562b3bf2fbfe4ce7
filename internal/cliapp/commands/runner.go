package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/core/guards"
	"github.com/schemaforge/servergen/internal/core/ir"
	"github.com/schemaforge/servergen/internal/core/parser"
	"github.com/schemaforge/servergen/internal/core/pipeline"
	"github.com/schemaforge/servergen/internal/phases"
)

// loadDMMF reads path (or stdin, for "-") and decodes it into a
// map[string]any, never a fixed struct — the guards package is what
// rejects a malformed shape, not the JSON decoder's zero-value behavior.
func loadDMMF(path string) (guards.RawDMMF, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = os.ReadFile("/dev/stdin")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading DMMF source: %w", err)
	}
	var raw guards.RawDMMF
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("DMMF source is not valid JSON: %w", err)
	}
	return raw, nil
}

// parseSchema runs the DMMF parser with logging wired to logger and
// returns the frozen schema plus parse-time diagnostics.
func parseSchema(raw guards.RawDMMF, logger *slog.Logger) (ir.Schema, []errs.Diagnostic, error) {
	opts := parser.DefaultOptions()
	opts.Logger = logger
	return parser.Parse(raw, opts)
}

// exitCodeFor maps the error taxonomy to the host's process exit codes:
// 0 success, 1 schema/config validation failure, 2 generation failure,
// 3 unexpected internal error.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case *errs.SchemaValidationFailed:
		return 1
	case *errs.GenerationFailedError:
		return 2
	default:
		return 3
	}
}

// writeFiles flushes every file the builder accumulated to dst, creating
// parent directories as needed. Called only after the pipeline returns a
// non-error file map, so a failed run never leaves a partial tree.
func writeFiles(dst afero.Fs, ctx *gencontext.GenerationContext, outDir string) error {
	files := ctx.Builder().AllFiles()
	for _, path := range ctx.Builder().OrderedPaths() {
		full := filepath.Join(outDir, path)
		if err := dst.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(full), err)
		}
		if err := afero.WriteFile(dst, full, []byte(files[path]), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", full, err)
		}
	}
	return nil
}

// defaultPipeline builds the canonical pipeline with no extension hooks.
func defaultPipeline() *pipeline.Pipeline {
	return pipeline.New(phases.Default(), nil)
}
