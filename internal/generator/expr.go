package generator

import (
	"github.com/dplc/dpl/internal/ast"
)

var binOpToScoreOp = map[string]string{"+": "+=", "-": "-=", "*": "*=", "/": "/=", "%": "%="}

// lowerExpr is the recursive single-result numeric emitter: it always
// produces a fresh temporary score T and emits the commands that
// populate it, even for a bare variable read, so every call site gets a
// uniform handle regardless of the expression shape.
func (g *Generator) lowerExpr(fc *funcCtx, e ast.Expr) string {
	t := fc.nextTmp()
	switch n := e.(type) {
	case *ast.LiteralNumber:
		g.emit(fc, "scoreboard players set %s %s %d", t, objective, int64(n.Value))
	case *ast.VarRef:
		g.lowerVarRead(fc, n, t)
	case *ast.Binary:
		l := g.lowerExpr(fc, n.Left)
		r := g.lowerExpr(fc, n.Right)
		op := binOpToScoreOp[n.Op]
		g.emit(fc, "scoreboard players operation %s %s %s %s %s", l, objective, op, r, objective)
		g.emit(fc, "scoreboard players operation %s %s = %s %s", t, objective, l, objective)
	case *ast.Call:
		g.lowerCall(fc, n, t)
	case *ast.Member:
		g.diags.Errorf(n.Pos, "member expression %q is not valid in a numeric context", n.Name)
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
	case *ast.ArrayLit:
		g.diags.Errorf(n.Pos, "array literal is not valid in a numeric context")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
	default:
		g.diags.Errorf(e.Position(), "expression is not valid in a numeric context")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
	}
	return t
}

func (g *Generator) lowerVarRead(fc *funcCtx, ref *ast.VarRef, t string) {
	vt, ok := fc.resolveType(ref.Name)
	if !ok {
		g.diags.Errorf(ref.Pos, "undefined variable %q", ref.Name)
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	switch vt.Kind {
	case ast.KindInt, ast.KindBool:
		score := g.varScoreName(fc, ref.Name)
		g.emit(fc, "scoreboard players operation %s %s = %s %s", t, objective, score, objective)
	case ast.KindFloat, ast.KindDouble:
		g.emit(fc, "execute store result score %s %s run data get storage %s %s 1", t, objective, storageNS(fc.pc.ns), ref.Name)
	default:
		g.diags.Errorf(ref.Pos, "variable %q of type %s is not valid in a numeric context", ref.Name, vt.Kind)
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
	}
}

func targetName(e ast.Expr) (string, bool) {
	if v, ok := e.(*ast.VarRef); ok {
		return v.Name, true
	}
	return "", false
}

// lowerCall dispatches the special namespaced-helper call forms:
// Random.value, Math.Min/Max/Pow/Root, and the
// Ent.Get(selector).GetData(field) chain.
func (g *Generator) lowerCall(fc *funcCtx, call *ast.Call, t string) {
	if call.Target != nil {
		if name, ok := targetName(call.Target); ok {
			switch {
			case name == "Random" && call.Name == "value":
				g.lowerRandomValue(fc, call, t)
				return
			case name == "Math":
				g.lowerMathCall(fc, call, t)
				return
			}
		}
		if inner, ok := call.Target.(*ast.Call); ok && inner.Name == "Get" {
			if recv, ok := targetName(inner.Target); ok && recv == "Ent" && call.Name == "GetData" {
				g.lowerEntGetData(fc, inner, call, t)
				return
			}
		}
	}
	g.diags.Errorf(call.Pos, "unknown function %q in numeric context", call.Name)
	g.emit(fc, "scoreboard players set %s %s 0", t, objective)
}

func literalIntArg(e ast.Expr) (int64, bool) {
	lit, ok := e.(*ast.LiteralNumber)
	if !ok {
		return 0, false
	}
	return int64(lit.Value), true
}

// lowerRandomValue handles `Random.value(min, max)`: literal bounds
// compile to a `random value` command; non-literal bounds degrade to
// 0..100 with a Warning.
func (g *Generator) lowerRandomValue(fc *funcCtx, call *ast.Call, t string) {
	if len(call.Args) != 2 {
		g.diags.Errorf(call.Pos, "Random.value expects 2 arguments")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	min, minOK := literalIntArg(call.Args[0])
	max, maxOK := literalIntArg(call.Args[1])
	if !minOK || !maxOK {
		g.diags.Warningf(call.Pos, "Random.value bounds are not literals; degrading to 0..100")
		min, max = 0, 100
	}
	g.emit(fc, "execute store result score %s %s run random value %d..%d", t, objective, min, max)
}

// lowerMathCall handles Math.Min/Max/Pow/Root.
func (g *Generator) lowerMathCall(fc *funcCtx, call *ast.Call, t string) {
	switch call.Name {
	case "Min", "Max":
		g.lowerMathMinMax(fc, call, t)
	case "Pow":
		g.lowerMathPow(fc, call, t)
	case "Root":
		g.lowerMathRoot(fc, call, t)
	case "PI":
		// Math.PI collapses to the integer approximation 3, since there is
		// no fixed-point or float scoreboard type to hold the real value.
		g.diags.Infof(call.Pos, "Math.PI collapsed to integer approximation 3")
		g.emit(fc, "scoreboard players set %s %s 3", t, objective)
	default:
		g.diags.Errorf(call.Pos, "unknown Math function %q", call.Name)
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
	}
}

func (g *Generator) lowerMathMinMax(fc *funcCtx, call *ast.Call, t string) {
	if len(call.Args) != 2 {
		g.diags.Errorf(call.Pos, "Math.%s expects 2 arguments", call.Name)
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	a := g.lowerExpr(fc, call.Args[0])
	b := g.lowerExpr(fc, call.Args[1])
	g.emit(fc, "scoreboard players operation %s %s = %s %s", t, objective, a, objective)
	cmp := "<"
	if call.Name == "Max" {
		cmp = ">"
	}
	g.emit(fc, "execute if score %s %s %s %s %s run scoreboard players operation %s %s = %s %s",
		b, objective, cmp, t, objective, t, objective, b, objective)
}

// lowerMathPow unrolls `Math.Pow(base, k)` into k-1 multiplications for a
// literal exponent in [0, 10].
func (g *Generator) lowerMathPow(fc *funcCtx, call *ast.Call, t string) {
	if len(call.Args) != 2 {
		g.diags.Errorf(call.Pos, "Math.Pow expects 2 arguments")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	k, ok := literalIntArg(call.Args[1])
	if !ok {
		g.diags.Errorf(call.Pos, "Math.Pow exponent must be a literal")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	if k < 0 || k > 10 {
		g.diags.Warningf(call.Pos, "Math.Pow exponent %d out of range [0,10]; clamping", k)
		if k < 0 {
			k = 0
		} else {
			k = 10
		}
	}
	base := g.lowerExpr(fc, call.Args[0])
	if k == 0 {
		g.emit(fc, "scoreboard players set %s %s 1", t, objective)
		return
	}
	g.emit(fc, "scoreboard players operation %s %s = %s %s", t, objective, base, objective)
	for i := int64(1); i < k; i++ {
		g.emit(fc, "scoreboard players operation %s %s *= %s %s", t, objective, base, objective)
	}
}

// lowerMathRoot approximates `Math.Root(n, k)` via an unrolled linear
// search over candidates 0..100 whose k-th power is <= n. The candidate
// powers are computed at compile time since k must be a literal; only n is
// evaluated at runtime.
func (g *Generator) lowerMathRoot(fc *funcCtx, call *ast.Call, t string) {
	if len(call.Args) != 2 {
		g.diags.Errorf(call.Pos, "Math.Root expects 2 arguments")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	k, ok := literalIntArg(call.Args[1])
	if !ok || k <= 0 {
		g.diags.Errorf(call.Pos, "Math.Root index must be a positive literal")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	n := g.lowerExpr(fc, call.Args[0])
	g.emit(fc, "scoreboard players set %s %s 0", t, objective)
	for c := int64(0); c <= 100; c++ {
		p := intPow(c, k)
		g.emit(fc, "execute if score %s %s matches %d.. run scoreboard players set %s %s %d", n, objective, p, t, objective, c)
	}
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

// lowerEntGetData handles the `Ent.Get(selector).GetData(field)` chain.
// Both the selector and the field must be literal strings: commands are
// static text, so a selector resolved at runtime has no syntax to splice
// into `execute as <sel>`.
func (g *Generator) lowerEntGetData(fc *funcCtx, getCall *ast.Call, outer *ast.Call, t string) {
	if len(getCall.Args) != 1 || len(outer.Args) != 1 {
		g.diags.Errorf(outer.Pos, "Ent.Get(selector).GetData(field) expects one argument each")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	selLit, ok := getCall.Args[0].(*ast.LiteralString)
	if !ok {
		g.diags.Errorf(getCall.Pos, "Ent.Get selector must be a literal string")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	fieldLit, ok := outer.Args[0].(*ast.LiteralString)
	if !ok {
		g.diags.Errorf(outer.Pos, "GetData field must be a literal string")
		g.emit(fc, "scoreboard players set %s %s 0", t, objective)
		return
	}
	sel := normalizeSelector(selLit.Value)
	g.emit(fc, "execute as %s store result score %s %s run data get entity @s %s 1", sel, t, objective, fieldLit.Value)
}
