package ident

import (
	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/diag"
)

// Validate checks namespace character class and uniqueness, and function-
// name character class, across every pack in a script. Any Error recorded
// here aborts generation, since a malformed namespace or name would produce
// an invalid resource location in every file derived from it.
func Validate(script *ast.Script) []diag.Diagnostic {
	var bag diag.Bag
	seen := map[string]bool{}

	for _, pack := range script.Packs {
		if !ValidNamespace(pack.NamespaceLower) {
			bag.Errorf(pack.Pos, "namespace %q does not match [a-z0-9_.-]+", pack.NamespaceLower)
		}
		if seen[pack.NamespaceLower] {
			bag.Errorf(pack.Pos, "duplicate namespace %q", pack.NamespaceLower)
		}
		seen[pack.NamespaceLower] = true

		fnSeen := map[string]bool{}
		for _, fn := range pack.Functions {
			if !ValidFunctionName(fn.LoweredName) {
				bag.Errorf(fn.Pos, "function name %q does not match [a-z0-9_/.+-]+", fn.LoweredName)
			}
			if fnSeen[fn.LoweredName] {
				bag.Errorf(fn.Pos, "duplicate function name %q in pack %q", fn.LoweredName, pack.NamespaceLower)
			}
			fnSeen[fn.LoweredName] = true
		}
	}
	return bag.Items()
}
