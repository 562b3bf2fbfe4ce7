package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/schemaforge/servergen/internal/cliapp/config"
	"github.com/schemaforge/servergen/internal/cliapp/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [project-dir]",
	Short: "scaffold a starter .servergen.yaml and .env.example",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

const starterConfig = `# servergen configuration
framework: express   # or fastify
sdkVersion: "0.1.0"

# hooksFrameworks:
#   - react
#   - vue

# plugins:
#   - name: stripe
#     envName: STRIPE_SECRET_KEY

# useRegistry: false
`

const starterEnvExample = `# Environment variables read by enabled plugins.
# STRIPE_SECRET_KEY=
`

func runInit(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	ui.PrintHeader("servergen", "Init")
	fs := config.AppFs

	if projectDir != "." {
		if err := fs.MkdirAll(projectDir, 0o755); err != nil {
			return fmt.Errorf("creating project directory: %w", err)
		}
		ui.PrintInfo("created project directory: %s", projectDir)
	}

	configPath := filepath.Join(projectDir, ".servergen.yaml")
	if exists, _ := afero.Exists(fs, configPath); exists {
		ui.PrintWarning("config already exists, skipping: %s", configPath)
	} else {
		if err := afero.WriteFile(fs, configPath, []byte(starterConfig), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", configPath, err)
		}
		ui.PrintSuccess("created %s", configPath)
	}

	envPath := filepath.Join(projectDir, ".env.example")
	if exists, _ := afero.Exists(fs, envPath); exists {
		ui.PrintWarning(".env.example already exists, skipping")
	} else {
		if err := afero.WriteFile(fs, envPath, []byte(starterEnvExample), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", envPath, err)
		}
		ui.PrintSuccess("created %s", envPath)
	}

	fmt.Println()
	ui.PrintSection("Next steps")
	ui.PrintList([]string{
		"export a DMMF document from your Prisma schema to dmmf.json",
		"edit .servergen.yaml to pick a framework and enable hooks/plugins",
		"run: servergen generate",
	})
	return nil
}
