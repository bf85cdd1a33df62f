package cmd

import (
	"fmt"
	"os"

	"github.com/dplc/dpl/internal/diag"
	"github.com/dplc/dpl/internal/lexer"
	"github.com/dplc/dpl/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a DPL file and print a summary of its pack declarations",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	source := string(content)

	toks, lexDiags := lexer.Lex(source)
	script, parseDiags := parser.Parse(toks)

	all := append(append([]diag.Diagnostic{}, lexDiags...), parseDiags...)
	if len(all) > 0 {
		fmt.Fprintln(os.Stderr, diag.FormatAll(all, source))
	}
	if script == nil {
		return fmt.Errorf("parsing failed")
	}

	for _, pack := range script.Packs {
		fmt.Printf("pack %q namespace %s: %d globals, %d functions, %d items, %d recipes, %d advancements, %d tags\n",
			pack.Title, pack.NamespaceLower, len(pack.Globals), len(pack.Functions),
			len(pack.Items), len(pack.Recipes), len(pack.Advancements), len(pack.Tags))
	}
	if hasError(all) {
		return fmt.Errorf("parsing produced errors")
	}
	return nil
}
