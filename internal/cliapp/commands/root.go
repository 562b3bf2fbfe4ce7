// Package commands implements servergen's CLI surface: generate,
// validate, init, and version.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemaforge/servergen/internal/cliapp/version"
	"github.com/schemaforge/servergen/internal/debug"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "servergen",
	Short: "servergen - generate a typed TypeScript server from a Prisma DMMF document",
	Long: `servergen turns a Prisma DMMF document into a complete TypeScript
server application: DTOs, validators, a service layer, HTTP controllers
and routes, an OpenAPI document, and a typed client SDK.`,
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			os.Setenv("NO_COLOR", "1")
		}
		debug.Init(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.servergen.yaml or $HOME/.servergen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			if verbose {
				fmt.Println(info.FullString())
			} else {
				fmt.Println(info.String())
			}
		},
	}

	rootCmd.AddCommand(versionCmd, generateCmd, validateCmd, initCmd)
}
