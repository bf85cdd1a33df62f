package generator

import (
	"fmt"
	"strings"

	"github.com/dplc/dpl/internal/ast"
)

// emitStmts lowers a statement list in order, dispatching each statement
// kind to its dedicated lowering.
func (g *Generator) emitStmts(fc *funcCtx, stmts []ast.Stmt) {
	for _, s := range stmts {
		g.emitStmt(fc, s)
	}
}

func (g *Generator) emitStmt(fc *funcCtx, s ast.Stmt) {
	switch n := s.(type) {
	case *ast.SayStmt:
		g.emitSay(fc, n)
	case *ast.RunStmt:
		g.emitRun(fc, n)
	case *ast.VarDecl:
		g.emitVarDecl(fc, n.Type, n.Name, n.Init, n.Pos)
	case *ast.AssignStmt:
		g.emitAssign(fc, n)
	case *ast.CallStmt:
		g.emitCallStmt(fc, n)
	case *ast.IfStmt:
		g.emitIfStmt(fc, n)
	case *ast.ExecStmt:
		g.emitExecStmt(fc, n)
	case *ast.ForStmt:
		g.emitForStmt(fc, n)
	case *ast.WhileStmt:
		g.emitWhileStmt(fc, n)
	default:
		g.diags.Errorf(s.Position(), "unsupported statement")
	}
}

// emitAssign lowers `=`/`+=`/`-=`/`*=`/`/=`/`%=`. Scoreboard compound
// operators are used verbatim for int/bool; float and
// double route through a storage round-trip since `scoreboard players
// operation` only ever touches integer scores.
func (g *Generator) emitAssign(fc *funcCtx, a *ast.AssignStmt) {
	vt, ok := fc.resolveType(a.Name)
	if !ok {
		g.diags.Errorf(a.Pos, "undefined variable %q", a.Name)
		return
	}
	switch vt.Kind {
	case ast.KindInt, ast.KindBool:
		score := g.varScoreName(fc, a.Name)
		tmp := g.lowerExpr(fc, a.Value)
		g.emit(fc, "scoreboard players operation %s %s %s %s %s", score, objective, a.Op, tmp, objective)
	case ast.KindFloat, ast.KindDouble:
		g.emitFloatAssign(fc, vt, a)
	case ast.KindString:
		if a.Op != "=" {
			g.diags.Errorf(a.Pos, "string variables only support '=' assignment")
			return
		}
		s, ok := foldStaticString(a.Value)
		if !ok {
			g.diags.Errorf(a.Pos, "string assignment to %q is not a compile-time constant", a.Name)
			return
		}
		g.emit(fc, `data modify storage %s %s set value "%s"`, storageNS(fc.pc.ns), a.Name, escapeSNBTString(s))
	case ast.KindEnt:
		if a.Op != "=" {
			g.diags.Errorf(a.Pos, "Ent variables only support '=' assignment")
			return
		}
		g.assignEnt(fc, a.Name, a.Value, a.Pos)
	}
}

func (g *Generator) emitFloatAssign(fc *funcCtx, vt ast.VarType, a *ast.AssignStmt) {
	path := storageNS(fc.pc.ns)
	if a.Op == "=" {
		if lit, ok := a.Value.(*ast.LiteralNumber); ok {
			g.emit(fc, "data modify storage %s %s set value %s%s", path, a.Name, lit.Raw, floatLitSuffix(vt.Kind))
			return
		}
		tmp := g.lowerExpr(fc, a.Value)
		g.emit(fc, "execute store result storage %s %s %s 1 run scoreboard players get %s %s",
			path, a.Name, storageSuffix(vt.Kind), tmp, objective)
		return
	}
	cur := fc.nextTmp()
	g.emit(fc, "execute store result score %s %s run data get storage %s %s 1", cur, objective, path, a.Name)
	rhs := g.lowerExpr(fc, a.Value)
	g.emit(fc, "scoreboard players operation %s %s %s %s %s", cur, objective, a.Op, rhs, objective)
	g.emit(fc, "execute store result storage %s %s %s 1 run scoreboard players get %s %s",
		path, a.Name, storageSuffix(vt.Kind), cur, objective)
}

// emitCallStmt invokes a user-declared function, optionally qualified by
// another pack's title.
func (g *Generator) emitCallStmt(fc *funcCtx, c *ast.CallStmt) {
	ns := fc.pc.ns
	if c.PackQualifier != "" {
		other, ok := g.packNS[c.PackQualifier]
		if !ok {
			g.diags.Errorf(c.Pos, "unknown pack %q", c.PackQualifier)
			return
		}
		ns = other
	}
	g.emit(fc, "function %s:%s", ns, strings.ToLower(c.Name))
}

// emitIfStmt lowers an if/else-if/else chain via a single-use ifdone flag,
// so exactly one branch's body runs even when its condition expands into
// several `||` variants.
func (g *Generator) emitIfStmt(fc *funcCtx, ifs *ast.IfStmt) {
	n := fc.pc.ifCounter
	fc.pc.ifCounter++
	flag := ifDoneFlag(fc.pc.ns, n)
	g.emit(fc, "scoreboard players set %s %s 0", flag, objective)
	g.emitIfBranch(fc, ifs, flag)
}

// emitIfBranch emits one link of the if/else-if chain and recurses into
// the else branch, if any.
func (g *Generator) emitIfBranch(fc *funcCtx, ifs *ast.IfStmt, flag string) {
	ns := fc.pc.ns
	bodyName := fmt.Sprintf("__if_%d_body", fc.pc.ifBodyCounter)
	fc.pc.ifBodyCounter++
	bodyPath := funcPath(ns, bodyName)
	g.b.EnsureFile(bodyPath)
	bodyFc := g.newFuncCtx(fc.pc, bodyName, bodyPath)
	copyForLocals(fc, bodyFc)
	g.emit(bodyFc, "scoreboard players set %s %s 1", flag, objective)
	g.emitStmts(bodyFc, ifs.Body)

	if ifs.Negate {
		condFlag := g.emitCondFlag(fc, ifs.Cond)
		g.emit(fc, "execute if score %s %s matches 0 if score %s %s matches 0 run function %s:%s",
			flag, objective, condFlag, objective, ns, bodyName)
	} else {
		for _, v := range g.condToVariants(fc, ifs.Cond) {
			guards := renderGuards(v)
			if guards == "" {
				g.emit(fc, "execute if score %s %s matches 0 run function %s:%s", flag, objective, ns, bodyName)
			} else {
				g.emit(fc, "execute if score %s %s matches 0 %s run function %s:%s", flag, objective, guards, ns, bodyName)
			}
		}
	}

	if ifs.Else == nil {
		return
	}
	if ifs.Else.If != nil {
		g.emitIfBranch(fc, ifs.Else.If, flag)
		return
	}
	elseName := fmt.Sprintf("__if_%d_body", fc.pc.ifBodyCounter)
	fc.pc.ifBodyCounter++
	elsePath := funcPath(ns, elseName)
	g.b.EnsureFile(elsePath)
	elseFc := g.newFuncCtx(fc.pc, elseName, elsePath)
	copyForLocals(fc, elseFc)
	g.emit(elseFc, "scoreboard players set %s %s 1", flag, objective)
	g.emitStmts(elseFc, ifs.Else.Block)
	g.emit(fc, "execute if score %s %s matches 0 run function %s:%s", flag, objective, ns, elseName)
}

// emitCondFlag evaluates cond into a fresh scoreboard flag, 1 if any
// `||`-variant matches and 0 otherwise. Used for `unless`, where De
// Morgan's negation of an arbitrary `&&`/`||` tree has no single guard
// fragment to invert directly.
func (g *Generator) emitCondFlag(fc *funcCtx, cond ast.Cond) string {
	flag := fc.nextTmp()
	g.emit(fc, "scoreboard players set %s %s 0", flag, objective)
	for _, v := range g.condToVariants(fc, cond) {
		guards := renderGuards(v)
		if guards == "" {
			g.emit(fc, "scoreboard players set %s %s 1", flag, objective)
		} else {
			g.emit(fc, "execute %s run scoreboard players set %s %s 1", guards, flag, objective)
		}
	}
	return flag
}

func renderExecModifiers(mods []ast.ExecModifier) string {
	parts := make([]string, 0, len(mods))
	for _, m := range mods {
		parts = append(parts, m.Kind+" "+strings.Join(m.Args, " "))
	}
	return strings.Join(parts, " ")
}

// emitExecStmt lowers an `execute` block: the shared body is synthesized
// once, and each variant independently dispatches into it, since unlike an
// if-chain, execute variants are not mutually exclusive.
func (g *Generator) emitExecStmt(fc *funcCtx, ex *ast.ExecStmt) {
	pc := fc.pc
	name := fmt.Sprintf("__exec_%d", pc.execCounter)
	pc.execCounter++
	path := funcPath(pc.ns, name)
	g.b.EnsureFile(path)
	bodyFc := g.newFuncCtx(pc, name, path)
	copyForLocals(fc, bodyFc)
	g.emitStmts(bodyFc, ex.Body)

	variants := ex.Variants
	if len(variants) == 0 {
		variants = [][]ast.ExecModifier{{}}
	}
	for _, variant := range variants {
		frag := renderExecModifiers(variant)
		if frag == "" {
			g.emit(fc, "function %s:%s", pc.ns, name)
		} else {
			g.emit(fc, "execute %s run function %s:%s", frag, pc.ns, name)
		}
	}
}

// emitForInit lowers a for-header's init clause, pinning a declared loop
// variable to its `__<fn>_for<idx>_<var>` score on fc so the entry/step
// helpers can inherit the binding via copyForLocals.
func (g *Generator) emitForInit(fc *funcCtx, idx int, init ast.Stmt) {
	switch s := init.(type) {
	case nil:
		return
	case *ast.VarDecl:
		if s.Type.Kind != ast.KindInt && s.Type.Kind != ast.KindBool {
			g.diags.Errorf(s.Pos, "for-loop variable %q must be int or bool", s.Name)
			return
		}
		score := forLocalScore(fc.fnName, idx, s.Name)
		fc.locals[s.Name] = s.Type
		fc.localScor[s.Name] = score
		if s.Init == nil {
			g.emit(fc, "scoreboard players set %s %s 0", score, objective)
			return
		}
		tmp := g.lowerExpr(fc, s.Init)
		g.emit(fc, "scoreboard players operation %s %s = %s %s", score, objective, tmp, objective)
	case *ast.AssignStmt:
		g.emitAssign(fc, s)
	default:
		g.diags.Errorf(init.Position(), "unsupported for-loop init statement")
	}
}

// emitForStmt synthesizes the entry/step helper pair: entry checks the
// condition and dispatches into step; step runs the body, the increment,
// and recurses back into entry.
func (g *Generator) emitForStmt(fc *funcCtx, fs *ast.ForStmt) {
	pc := fc.pc
	idx := pc.forCounter
	pc.forCounter++

	if fs.Init != nil {
		g.emitForInit(fc, idx, fs.Init)
	}

	ns := pc.ns
	entryName := forEntryName(idx)
	stepName := forStepName(idx)

	entryPath := funcPath(ns, entryName)
	g.b.EnsureFile(entryPath)
	entryFc := g.newFuncCtx(pc, entryName, entryPath)
	copyForLocals(fc, entryFc)
	g.emitLoopGuard(entryFc, fs.Cond, ns, stepName)

	stepPath := funcPath(ns, stepName)
	g.b.EnsureFile(stepPath)
	stepFc := g.newFuncCtx(pc, stepName, stepPath)
	copyForLocals(fc, stepFc)
	g.emitStmts(stepFc, fs.Body)
	if fs.Incr != nil {
		g.emitStmt(stepFc, fs.Incr)
	}
	g.emit(stepFc, "function %s:%s", ns, entryName)

	g.emit(fc, "function %s:%s", ns, entryName)
}

// emitWhileStmt synthesizes the while-loop analogue of emitForStmt.
func (g *Generator) emitWhileStmt(fc *funcCtx, ws *ast.WhileStmt) {
	pc := fc.pc
	idx := pc.whileCounter
	pc.whileCounter++

	ns := pc.ns
	entryName := whileEntryName(idx)
	stepName := whileStepName(idx)

	entryPath := funcPath(ns, entryName)
	g.b.EnsureFile(entryPath)
	entryFc := g.newFuncCtx(pc, entryName, entryPath)
	copyForLocals(fc, entryFc)
	g.emitLoopGuard(entryFc, ws.Cond, ns, stepName)

	stepPath := funcPath(ns, stepName)
	g.b.EnsureFile(stepPath)
	stepFc := g.newFuncCtx(pc, stepName, stepPath)
	copyForLocals(fc, stepFc)
	g.emitStmts(stepFc, ws.Body)
	g.emit(stepFc, "function %s:%s", ns, entryName)

	g.emit(fc, "function %s:%s", ns, entryName)
}

// emitLoopGuard emits, in entryFc, one `execute ... run function ns:step`
// line per `||`-variant of cond (a direct score comparison for the common
// single-variant case).
func (g *Generator) emitLoopGuard(entryFc *funcCtx, cond ast.Cond, ns, stepName string) {
	for _, variant := range g.condToVariants(entryFc, cond) {
		guards := renderGuards(variant)
		if guards == "" {
			g.emit(entryFc, "function %s:%s", ns, stepName)
		} else {
			g.emit(entryFc, "execute %s run function %s:%s", guards, ns, stepName)
		}
	}
}
