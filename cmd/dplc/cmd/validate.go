package cmd

import (
	"fmt"
	"os"

	"github.com/dplc/dpl/internal/diag"
	"github.com/dplc/dpl/internal/ident"
	"github.com/dplc/dpl/internal/lexer"
	"github.com/dplc/dpl/internal/parser"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Run the lexer, parser, and validator over a DPL file without generating output",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	source := string(content)

	toks, lexDiags := lexer.Lex(source)
	script, parseDiags := parser.Parse(toks)

	all := append(append([]diag.Diagnostic{}, lexDiags...), parseDiags...)
	if script == nil {
		fmt.Fprintln(os.Stderr, diag.FormatAll(all, source))
		return fmt.Errorf("parsing failed")
	}

	all = append(all, ident.Validate(script)...)
	if len(all) > 0 {
		fmt.Fprintln(os.Stderr, diag.FormatAll(all, source))
	}
	if hasError(all) {
		return fmt.Errorf("validation failed")
	}
	fmt.Println("ok")
	return nil
}
