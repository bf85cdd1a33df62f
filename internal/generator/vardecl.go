package generator

import (
	"fmt"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/token"
)

// varScoreName resolves the scoreboard holder a variable's score lives
// under, honoring any mangling a caller has already pinned (e.g. a
// for-loop's forLocalScore) before falling back to global/local
// conventions.
func (g *Generator) varScoreName(fc *funcCtx, name string) string {
	if s, ok := fc.localScor[name]; ok {
		return s
	}
	if _, isGlobal := fc.pc.globals[name]; isGlobal {
		return globalScore(fc.pc.ns, name)
	}
	s := localScore(fc.fnName, name)
	fc.localScor[name] = s
	return s
}

// emitVarDecl lowers a typed declaration with optional initializer, used
// for both pack globals (via the __init function) and in-body locals.
// Every declaration here already carries a resolved type; an untyped
// VarDecl cannot occur because the parser rejects it earlier.
func (g *Generator) emitVarDecl(fc *funcCtx, vt ast.VarType, name string, init ast.Expr, pos token.Position) {
	fc.locals[name] = vt

	if vt.Array {
		g.emitArrayDecl(fc, vt, name, init, pos)
		return
	}

	switch vt.Kind {
	case ast.KindInt, ast.KindBool:
		score := g.varScoreName(fc, name)
		if init == nil {
			g.emit(fc, "scoreboard players set %s %s 0", score, objective)
			return
		}
		tmp := g.lowerExpr(fc, init)
		g.emit(fc, "scoreboard players operation %s %s = %s %s", score, objective, tmp, objective)
	case ast.KindFloat, ast.KindDouble:
		g.emitFloatDecl(fc, vt, name, init, pos)
	case ast.KindString:
		g.emitStringDecl(fc, name, init, pos)
	case ast.KindEnt:
		if init != nil {
			g.assignEnt(fc, name, init, pos)
		}
	}
}

func storageSuffix(k ast.VarKind) string {
	if k == ast.KindDouble {
		return "double"
	}
	return "float"
}

// floatLitSuffix is the SNBT numeric-literal suffix for a float/double
// value, e.g. `1.5f` vs `1.5d`.
func floatLitSuffix(k ast.VarKind) string {
	if k == ast.KindDouble {
		return "d"
	}
	return "f"
}

// emitFloatDecl writes a float/double global or local into storage. A
// literal initializer writes the exact decimal text; a computed one widens
// the rounded-integer scoreboard result back into storage, since that's
// the only precision intermediate arithmetic offers.
func (g *Generator) emitFloatDecl(fc *funcCtx, vt ast.VarType, name string, init ast.Expr, pos token.Position) {
	path := storageNS(fc.pc.ns)
	if init == nil {
		g.emit(fc, "data modify storage %s %s set value 0%s", path, name, floatLitSuffix(vt.Kind))
		return
	}
	if lit, ok := init.(*ast.LiteralNumber); ok {
		g.emit(fc, "data modify storage %s %s set value %s%s", path, name, lit.Raw, floatLitSuffix(vt.Kind))
		return
	}
	tmp := g.lowerExpr(fc, init)
	g.emit(fc, "execute store result storage %s %s %s 1 run scoreboard players get %s %s",
		path, name, storageSuffix(vt.Kind), tmp, objective)
}

// emitStringDecl writes a string global or local. Static concatenations are
// folded at compile time; a macro string literal is stored verbatim
// (including its '$' marker) since expansion only happens at a Run/Say
// macro call site.
func (g *Generator) emitStringDecl(fc *funcCtx, name string, init ast.Expr, pos token.Position) {
	path := storageNS(fc.pc.ns)
	if init == nil {
		g.emit(fc, `data modify storage %s %s set value ""`, path, name)
		return
	}
	s, ok := foldStaticString(init)
	if !ok {
		g.diags.Errorf(pos, "string initializer for %q is not a compile-time constant", name)
		return
	}
	g.emit(fc, `data modify storage %s %s set value "%s"`, path, name, escapeSNBTString(s))
}

// foldStaticString evaluates a string expression (literal or `+`
// concatenation of literals) at compile time.
func foldStaticString(e ast.Expr) (string, bool) {
	switch n := e.(type) {
	case *ast.LiteralString:
		return n.Value, true
	case *ast.Binary:
		if n.Op != "+" {
			return "", false
		}
		l, ok := foldStaticString(n.Left)
		if !ok {
			return "", false
		}
		r, ok := foldStaticString(n.Right)
		if !ok {
			return "", false
		}
		return l + r, true
	default:
		return "", false
	}
}

func escapeSNBTString(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

// emit appends a formatted command line to the function currently being
// built.
func (g *Generator) emit(fc *funcCtx, format string, args ...any) {
	g.b.Emit(fc.path, fmt.Sprintf(format, args...))
}
