package generator

import (
	"fmt"
	"strings"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/token"
)

// normalizeSelector wraps a bare (non-'@') identifier into a named-entity
// selector: anything not already starting with '@' is treated as a name
// and wrapped in `@e[limit=1,name=...]`.
func normalizeSelector(sel string) string {
	if strings.HasPrefix(sel, "@") {
		return sel
	}
	return fmt.Sprintf(`@e[limit=1,name=%q]`, sel)
}

// entSelectorText extracts the literal selector text from either a bare
// string literal or an `Ent.Get("...")` call.
func entSelectorText(e ast.Expr) (string, bool) {
	switch n := e.(type) {
	case *ast.LiteralString:
		return n.Value, true
	case *ast.Call:
		if n.Name == "Get" && len(n.Args) == 1 {
			if recv, ok := targetName(n.Target); ok && recv == "Ent" {
				if lit, ok := n.Args[0].(*ast.LiteralString); ok {
					return lit.Value, true
				}
			}
		}
	}
	return "", false
}

// assignEnt lowers an `Ent` assignment: selector normalization, a storage
// write, a once-per-variable binder function, and the as-bind invocation.
func (g *Generator) assignEnt(fc *funcCtx, name string, init ast.Expr, pos token.Position) {
	raw, ok := entSelectorText(init)
	if !ok {
		g.diags.Errorf(pos, "Ent initializer must be Ent.Get(selector) or a string literal")
		return
	}
	sel := normalizeSelector(raw)
	path := storageNS(fc.pc.ns)
	g.emit(fc, `data modify storage %s %s set value "%s"`, path, name, escapeSNBTString(sel))

	g.ensureEntBinder(fc.pc, name)
	g.emit(fc, "execute as %s run function %s:%s with storage %s entity @s",
		sel, fc.pc.ns, entBinderName(name), path)
}

// ensureEntBinder synthesizes, once per variable per pack, the macro
// function that merges the bound UUID under storage.
func (g *Generator) ensureEntBinder(pc *packCtx, name string) {
	if pc.entBound[name] {
		return
	}
	pc.entBound[name] = true
	path := funcPath(pc.ns, entBinderName(name))
	body := fmt.Sprintf(`$data merge storage %s {"%s":{"uuid":"$(UUID)"}}`, storageNS(pc.ns), name)
	g.b.SetFull(path, body+"\n")
}
