package commands

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/schemaforge/servergen/internal/cliapp/config"
	"github.com/schemaforge/servergen/internal/cliapp/ui"
	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/gencontext"
	"github.com/schemaforge/servergen/internal/debug"
)

var (
	generateDmmfPath string
	generateOutDir   string
)

var generateCmd = &cobra.Command{
	Use:   "generate [dmmf-path]",
	Short: "generate a TypeScript server from a Prisma DMMF document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateDmmfPath, "dmmf", "d", "dmmf.json", "path to the DMMF document, or - for stdin")
	generateCmd.Flags().StringVarP(&generateOutDir, "out", "o", "./generated", "output directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dmmfPath := dmmfPathArg(generateDmmfPath, args)

	ui.PrintHeader("servergen", "Generate")
	spinner, _ := ui.PrintSpinner("loading DMMF document...")

	raw, err := loadDMMF(dmmfPath)
	if err != nil {
		spinner.Stop()
		return err
	}

	schema, parseDiags, err := parseSchema(raw, debug.Logger())
	if err != nil {
		spinner.Stop()
		return err
	}
	if len(parseDiags) > 0 {
		spinner.Stop()
		ui.PrintWarning("schema parsed with diagnostics:")
		ui.PrintDiagnostics(parseDiags)
		spinner, _ = ui.PrintSpinner("generating...")
	}

	rawConfig, err := config.Load(cfgFile)
	if err != nil {
		spinner.Stop()
		return err
	}

	ctx := gencontext.NewFromRaw(schema, rawConfig, errs.DefaultPolicy())
	for _, d := range parseDiags {
		ctx.ReportDiagnostic(d)
	}

	debug.ForPhase("pipeline").Debug("starting generation run", "framework", rawConfig.Framework, "outDir", generateOutDir)
	runErr := defaultPipeline().Run(ctx)
	spinner.Stop()

	summary := ctx.Summary()
	if len(summary.Warnings) > 0 {
		ui.PrintWarning("%d warning(s)", len(summary.Warnings))
		ui.PrintDiagnostics(summary.Warnings)
	}

	if runErr != nil {
		ui.PrintError("generation failed: %v", runErr)
		ui.PrintDiagnostics(summary.Errors)
		os.Exit(exitCodeFor(runErr))
		return nil
	}

	if err := writeFiles(afero.NewOsFs(), ctx, generateOutDir); err != nil {
		ui.PrintError("writing output: %v", err)
		os.Exit(3)
		return nil
	}

	ui.PrintSuccess("generated %d files in %s", summary.FileCount, generateOutDir)
	return nil
}

func dmmfPathArg(flagValue string, args []string) string {
	if flagValue != "" && flagValue != "dmmf.json" {
		return flagValue
	}
	if len(args) > 0 {
		return args[0]
	}
	return "dmmf.json"
}
