package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dplc/dpl/internal/compiler"
	"github.com/dplc/dpl/internal/diag"
	"github.com/spf13/cobra"
)

var (
	outDir string
	dryRun bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a DPL source file into a Minecraft datapack",
	Long: `Compile reads a DPL source file, runs it through the full pipeline
(lex, parse, validate, generate), and writes every output file under
--out.

Examples:
  # Compile and write the datapack tree
  dplc compile script.dpl -o build/

  # Compile and print diagnostics plus the paths that would be written,
  # without writing files
  dplc compile script.dpl --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&outDir, "out", "o", "build", "output directory for the generated datapack")
	compileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "run the pipeline and print diagnostics and output paths without writing files")
}

func runCompile(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	result := compiler.Compile(source)

	if len(result.Diagnostics) > 0 {
		fmt.Fprintln(os.Stderr, diag.FormatAll(result.Diagnostics, source))
	}
	if hasError(result.Diagnostics) {
		return fmt.Errorf("compilation failed with errors")
	}

	if dryRun {
		for _, f := range result.Files {
			fmt.Println(f.Path)
		}
		return nil
	}

	for _, f := range result.Files {
		dest := filepath.Join(outDir, f.Path)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", dest, err)
		}
		if err := os.WriteFile(dest, []byte(f.Contents), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %d files to %s\n", len(result.Files), outDir)
	}
	return nil
}

func hasError(items []diag.Diagnostic) bool {
	for _, d := range items {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}
