// Package cmd implements the dplc command-line tool: a cobra root plus one
// subcommand per pipeline stage (lex, parse, validate, compile).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:     "dplc",
	Short:   "DPL compiler",
	Long:    `dplc compiles DPL source into a Minecraft datapack: .mcfunction command files and JSON descriptors.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
`))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
