// Package generator lowers a typed Script into the full output file set:
// mcfunction command bodies and the JSON descriptors (pack.mcmeta, items,
// recipes, advancements, tags) that make up a datapack.
package generator

import (
	"fmt"
	"strings"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/diag"
	"github.com/dplc/dpl/internal/generator/jsonout"
)

// Result is everything the public Generate entry point returns from the
// generation stage.
type Result struct {
	Files       []ast.GeneratedFile
	Diagnostics []diag.Diagnostic
	Symbols     ast.SymbolIndex
}

// Generate lowers script into its output file set.
func Generate(script *ast.Script) Result {
	g := New()
	for _, pack := range script.Packs {
		g.packNS[pack.Title] = pack.NamespaceLower
	}
	for _, pack := range script.Packs {
		g.genPack(pack)
	}
	g.emitPackMeta(script)
	g.emitLifecycleTags()
	return Result{Files: g.b.Finalize(), Diagnostics: g.diags.Items(), Symbols: g.idx}
}

func (g *Generator) genPack(pack *ast.Pack) {
	pc := newPackCtx(pack)
	ns := pc.ns

	for _, gl := range pack.Globals {
		g.idx.AddVar(ns, pack.Title, gl.Name)
	}
	for _, fn := range pack.Functions {
		g.idx.AddFunction(ns, pack.Title, fn.LoweredName)
	}
	for _, it := range pack.Items {
		g.idx.AddItem(ns, pack.Title, it.Name)
	}

	g.emitBootstrapSetup(pc)
	g.emitInit(pc)

	for _, fn := range pack.Functions {
		g.genFunction(pc, fn)
	}

	g.loadFuncs = append(g.loadFuncs, funcRef(ns, "__bootstrap"), funcRef(ns, "__init"))
	for _, fn := range pack.Functions {
		lname := strings.ToLower(fn.OriginalName)
		if lname == "load" {
			g.loadFuncs = append(g.loadFuncs, funcRef(ns, fn.LoweredName))
		}
		if lname == "tick" {
			g.tickFuncs = append(g.tickFuncs, funcRef(ns, fn.LoweredName))
		}
	}

	for _, it := range pack.Items {
		g.genItem(pc, it)
	}
	for _, r := range pack.Recipes {
		g.genRecipe(pc, r)
	}
	for _, a := range pack.Advancements {
		g.genAdvancement(pc, a)
	}
	for _, t := range pack.Tags {
		g.genTag(pc, t)
	}
}

// emitBootstrapSetup writes the one-time bootstrap/setup pair: bootstrap
// invokes setup exactly once, detected via an `__initialized` storage flag;
// setup creates the scoreboard objective and marks bootstrap done before
// running init.
func (g *Generator) emitBootstrapSetup(pc *packCtx) {
	ns := pc.ns
	bootPath := funcPath(ns, "__bootstrap")
	g.b.Emit(bootPath, fmt.Sprintf("execute unless data storage %s __initialized run function %s:__setup", storageNS(ns), ns))

	setupPath := funcPath(ns, "__setup")
	g.b.Emit(setupPath, fmt.Sprintf("scoreboard objectives add %s dummy", objective))
	g.b.Emit(setupPath, fmt.Sprintf("data modify storage %s __initialized set value 1b", storageNS(ns)))
	g.b.Emit(setupPath, fmt.Sprintf("function %s:__init", ns))
}

// emitInit assigns every global in declaration order.
func (g *Generator) emitInit(pc *packCtx) {
	path := funcPath(pc.ns, "__init")
	g.b.EnsureFile(path)
	fc := g.newFuncCtx(pc, "__init", path)
	for _, gl := range pc.pack.Globals {
		g.emitVarDecl(fc, gl.Type, gl.Name, gl.Init, gl.Pos)
	}
}

func (g *Generator) genFunction(pc *packCtx, fn *ast.Function) {
	path := funcPath(pc.ns, fn.LoweredName)
	g.b.EnsureFile(path)
	fc := g.newFuncCtx(pc, fn.LoweredName, path)
	g.emitStmts(fc, fn.Body)
}

// emitPackMeta writes the single pack.mcmeta. With multiple packs in one
// Script there is no single canonical title, so their titles are joined;
// see DESIGN.md for the reasoning.
func (g *Generator) emitPackMeta(script *ast.Script) {
	titles := make([]string, 0, len(script.Packs))
	for _, p := range script.Packs {
		titles = append(titles, p.Title)
	}
	description := strings.Join(titles, "; ")

	doc := jsonout.New().
		Set("pack.pack_format", 48).
		Set("pack.description", description)
	g.b.SetFull("pack.mcmeta", doc.String())
}

// emitLifecycleTags writes data/minecraft/tags/function/{load,tick}.json,
// preserving the order packs were declared in. tick.json is written only
// when at least one pack declares a Tick function.
func (g *Generator) emitLifecycleTags() {
	loadValues := make([]string, len(g.loadFuncs))
	for i, f := range g.loadFuncs {
		loadValues[i] = jsonout.Quote(f)
	}
	loadDoc := jsonout.New().
		Set("replace", false).
		SetRaw("values", jsonout.RawArray(loadValues))
	g.b.SetFull("data/minecraft/tags/function/load.json", loadDoc.String())

	if len(g.tickFuncs) == 0 {
		return
	}
	tickValues := make([]string, len(g.tickFuncs))
	for i, f := range g.tickFuncs {
		tickValues[i] = jsonout.Quote(f)
	}
	tickDoc := jsonout.New().
		Set("replace", false).
		SetRaw("values", jsonout.RawArray(tickValues))
	g.b.SetFull("data/minecraft/tags/function/tick.json", tickDoc.String())
}
