package cmd

import (
	"fmt"
	"os"

	"github.com/dplc/dpl/internal/diag"
	"github.com/dplc/dpl/internal/lexer"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a DPL file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	source := string(content)

	toks, diags := lexer.Lex(source)
	for _, t := range toks {
		if showPos {
			fmt.Printf("[%-10s] %q @%d:%d\n", t.Kind, t.Value, t.Pos.Line, t.Pos.Col)
		} else {
			fmt.Printf("[%-10s] %q\n", t.Kind, t.Value)
		}
	}
	if len(diags) > 0 {
		fmt.Fprintln(os.Stderr, diag.FormatAll(diags, source))
		return fmt.Errorf("lexing produced %d diagnostic(s)", len(diags))
	}
	return nil
}
