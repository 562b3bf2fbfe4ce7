package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemaforge/servergen/internal/cliapp/config"
	"github.com/schemaforge/servergen/internal/cliapp/ui"
	coreconfig "github.com/schemaforge/servergen/internal/core/config"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/parser"
	"github.com/schemaforge/servergen/internal/debug"
)

var validateDmmfPath string

var validateCmd = &cobra.Command{
	Use:   "validate [dmmf-path]",
	Short: "validate a DMMF document and config without generating files",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateDmmfPath, "dmmf", "d", "dmmf.json", "path to the DMMF document, or - for stdin")
}

func runValidate(cmd *cobra.Command, args []string) error {
	dmmfPath := dmmfPathArg(validateDmmfPath, args)

	ui.PrintHeader("servergen", "Validate")

	raw, err := loadDMMF(dmmfPath)
	if err != nil {
		return err
	}

	schema, parseDiags, err := parseSchema(raw, debug.Logger())
	if err != nil {
		ui.PrintError("schema is invalid: %v", err)
		return err
	}

	rawConfig, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	configDiags := coreconfig.Validate(rawConfig)

	schemaDiags := parser.Validate(schema)

	allDiags := append(append(append([]errs.Diagnostic{}, parseDiags...), schemaDiags...), configDiags...)

	var blocking bool
	for _, d := range allDiags {
		if d.Severity >= errs.SeverityError {
			blocking = true
		}
	}

	if len(allDiags) > 0 {
		ui.PrintDiagnostics(allDiags)
	}

	if blocking {
		ui.PrintError("validation failed")
		os.Exit(1)
		return nil
	}

	ui.PrintSuccess("valid: %d model(s)", len(schema.Models()))
	fmt.Println()
	ui.PrintSection("Models")
	names := make([]string, 0, len(schema.Models()))
	for _, m := range schema.Models() {
		names = append(names, m.Name())
	}
	ui.PrintList(names)
	return nil
}
