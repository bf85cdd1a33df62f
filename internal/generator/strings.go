package generator

import (
	"strings"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/token"
)

func isMacroString(v string) bool  { return strings.HasPrefix(v, "$") }
func macroContent(v string) string { return strings.TrimPrefix(v, "$") }

// extractPlaceholders finds the `{name}` references in a macro string's
// content, in order of first appearance.
func extractPlaceholders(s string) []string {
	var names []string
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		j := strings.IndexByte(s[i:], '}')
		if j < 0 {
			break
		}
		names = append(names, s[i+1:i+j])
		i += j
	}
	return names
}

// rewritePlaceholders turns `{name}` into the macro placeholder `$(name)`
// that Minecraft's own function macro syntax expects.
func rewritePlaceholders(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '{' {
			j := strings.IndexByte(s[i:], '}')
			if j >= 0 {
				b.WriteString("$(")
				b.WriteString(s[i+1 : i+j])
				b.WriteByte(')')
				i += j
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func dedupeStrings(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// emitMacroLine lowers a macro string's content into a write-through +
// synthesized-function + call-site triple: every referenced int/bool
// variable is copied into storage immediately before the call, since only
// those are scoreboard-resident and storage is the macro-argument surface.
func (g *Generator) emitMacroLine(fc *funcCtx, content string, pos token.Position) {
	for _, name := range dedupeStrings(extractPlaceholders(content)) {
		vt, ok := fc.resolveType(name)
		if !ok {
			g.diags.Errorf(pos, "undefined variable %q in macro string", name)
			continue
		}
		if vt.Kind != ast.KindInt && vt.Kind != ast.KindBool {
			continue
		}
		score := g.varScoreName(fc, name)
		g.emit(fc, "execute store result storage %s %s int 1 run scoreboard players get %s %s",
			storageNS(fc.pc.ns), name, score, objective)
	}

	rewritten := rewritePlaceholders(content)
	pc := fc.pc
	name := macroFuncName(pc.macroCounter)
	pc.macroCounter++
	path := funcPath(pc.ns, name)
	g.b.SetFull(path, "$"+rewritten+"\n")
	g.emit(fc, "function %s:%s with storage %s", pc.ns, name, storageNS(pc.ns))
}

// emitSay lowers a Say statement: static strings say directly, macro
// strings interpolate, string/Ent variables go through NBT tellraw, and
// anything else is a numeric expression lowered to a tmp score and shown
// via score-tellraw.
func (g *Generator) emitSay(fc *funcCtx, s *ast.SayStmt) {
	if lit, ok := s.Arg.(*ast.LiteralString); ok {
		if isMacroString(lit.Value) {
			g.emitMacroLine(fc, "say "+macroContent(lit.Value), lit.Pos)
			return
		}
		g.emit(fc, `say "%s"`, escapeSNBTString(lit.Value))
		return
	}
	if ref, ok := s.Arg.(*ast.VarRef); ok {
		if vt, ok2 := fc.resolveType(ref.Name); ok2 && (vt.Kind == ast.KindString || vt.Kind == ast.KindEnt) {
			g.emit(fc, `tellraw @a {"nbt":"%s","storage":"%s"}`, ref.Name, storageNS(fc.pc.ns))
			return
		}
	}
	tmp := g.lowerExpr(fc, s.Arg)
	g.emit(fc, `tellraw @a {"score":{"name":"%s","objective":"%s"}}`, tmp, objective)
}

// emitRun lowers a Run statement: static strings run as a raw command (one
// leading slash stripped), macro strings interpolate, and a string
// variable routes through the `__cmd` storage key and the shared
// `__run_cmd` dynamic command runner.
func (g *Generator) emitRun(fc *funcCtx, s *ast.RunStmt) {
	if lit, ok := s.Arg.(*ast.LiteralString); ok {
		if isMacroString(lit.Value) {
			g.emitMacroLine(fc, strings.TrimPrefix(macroContent(lit.Value), "/"), lit.Pos)
			return
		}
		g.emit(fc, "%s", strings.TrimPrefix(lit.Value, "/"))
		return
	}
	if ref, ok := s.Arg.(*ast.VarRef); ok {
		if vt, ok2 := fc.resolveType(ref.Name); ok2 && vt.Kind == ast.KindString {
			path := storageNS(fc.pc.ns)
			g.emit(fc, "data modify storage %s __cmd set from storage %s %s", path, path, ref.Name)
			g.ensureRunCmdHelper(fc.pc)
			g.emit(fc, "function %s:%s with storage %s", fc.pc.ns, runCmdName, path)
			return
		}
	}
	g.diags.Errorf(s.Pos, "Run expects a static string, a macro string, or a string variable")
}

// ensureRunCmdHelper synthesizes the shared dynamic command runner once
// per pack: invoking it expands $(__cmd) from the caller's storage macro
// argument.
func (g *Generator) ensureRunCmdHelper(pc *packCtx) {
	if pc.runCmdEmitted {
		return
	}
	pc.runCmdEmitted = true
	path := funcPath(pc.ns, runCmdName)
	g.b.SetFull(path, "$$(__cmd)\n")
}
