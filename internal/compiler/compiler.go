// Package compiler implements the compilation driver: it runs lex, parse,
// validate, and generate in sequence, concatenating every stage's
// diagnostics in stage order, and short-circuits early on a fatal failure
// so a broken earlier stage never feeds bad input into the next one.
package compiler

import (
	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/diag"
	"github.com/dplc/dpl/internal/generator"
	"github.com/dplc/dpl/internal/ident"
	"github.com/dplc/dpl/internal/lexer"
	"github.com/dplc/dpl/internal/parser"
)

// Result is the public shape of the compiler's entry point: the generated
// file set, every diagnostic collected across stages, and the cross-pack
// symbol index.
type Result struct {
	Files       []ast.GeneratedFile
	Diagnostics []diag.Diagnostic
	Symbols     ast.SymbolIndex
}

// Compile runs the full pipeline over source. Each stage's diagnostics are
// appended in stage order; a fatal condition in an earlier stage (lexer
// error, nil AST, or any validator Error) stops the pipeline before the
// next stage runs.
func Compile(source string) Result {
	var all []diag.Diagnostic

	toks, lexDiags := lexer.Lex(source)
	all = append(all, lexDiags...)
	if hasError(lexDiags) {
		return Result{Diagnostics: all, Symbols: ast.NewSymbolIndex()}
	}

	script, parseDiags := parser.Parse(toks)
	all = append(all, parseDiags...)
	if script == nil {
		return Result{Diagnostics: all, Symbols: ast.NewSymbolIndex()}
	}

	validateDiags := ident.Validate(script)
	all = append(all, validateDiags...)
	if hasError(validateDiags) {
		return Result{Diagnostics: all, Symbols: ast.NewSymbolIndex()}
	}

	genResult := generator.Generate(script)
	all = append(all, genResult.Diagnostics...)

	return Result{Files: genResult.Files, Diagnostics: all, Symbols: genResult.Symbols}
}

func hasError(items []diag.Diagnostic) bool {
	for _, d := range items {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}
