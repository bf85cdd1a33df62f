package generator

import (
	"fmt"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/token"
)

// emitArrayDecl lowers an array declaration: remove and re-assign an empty
// list, then set each index to a literal compatible with the array's
// element kind. A non-literal element, or any element of an unsupported
// kind (e.g. Ent), is an Error.
func (g *Generator) emitArrayDecl(fc *funcCtx, vt ast.VarType, name string, init ast.Expr, pos token.Position) {
	path := storageNS(fc.pc.ns)
	g.emit(fc, "data remove storage %s %s", path, name)
	g.emit(fc, "data modify storage %s %s set value []", path, name)
	if init == nil {
		return
	}
	arr, ok := init.(*ast.ArrayLit)
	if !ok {
		g.diags.Errorf(pos, "array initializer for %q must be an array literal", name)
		return
	}
	for i, elem := range arr.Elements {
		lit, ok := snbtElementLiteral(vt.Kind, elem)
		if !ok {
			g.diags.Errorf(elem.Position(), "array element %d is not a literal compatible with %s", i, vt.Kind)
			continue
		}
		g.emit(fc, "data modify storage %s %s[%d] set value %s", path, name, i, lit)
	}
}

// snbtElementLiteral renders a single array element as SNBT text if it is
// a literal of the expected kind.
func snbtElementLiteral(kind ast.VarKind, e ast.Expr) (string, bool) {
	switch kind {
	case ast.KindInt:
		if lit, ok := e.(*ast.LiteralNumber); ok {
			return fmt.Sprintf("%d", int64(lit.Value)), true
		}
	case ast.KindFloat:
		if lit, ok := e.(*ast.LiteralNumber); ok {
			return lit.Raw + "f", true
		}
	case ast.KindDouble:
		if lit, ok := e.(*ast.LiteralNumber); ok {
			return lit.Raw + "d", true
		}
	case ast.KindBool:
		if lit, ok := e.(*ast.LiteralNumber); ok {
			if lit.Value == 0 {
				return "0b", true
			}
			return "1b", true
		}
	case ast.KindString:
		if lit, ok := e.(*ast.LiteralString); ok {
			return `"` + escapeSNBTString(lit.Value) + `"`, true
		}
	}
	return "", false
}
