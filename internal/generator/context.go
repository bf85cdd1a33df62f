package generator

import (
	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/diag"
)

// packCtx holds the per-pack ephemeral state: the output file list and the
// per-pack counters (forCounter, macroCounter, ifCounter, and friends) are
// not shared across packs. A fresh packCtx is built for every pack in the
// script.
type packCtx struct {
	pack       *ast.Pack
	ns         string
	globals    map[string]ast.VarType
	funcs      map[string]*ast.Function // lowered name -> decl, for pack-qualified calls
	entBound   map[string]bool          // which Ent vars already got a __ent_bind_<var> function
	runCmdEmitted bool                  // whether __run_cmd.mcfunction has been written for this pack

	forCounter   int
	whileCounter int
	macroCounter int
	ifCounter    int
	ifBodyCounter int
	execCounter  int
}

func newPackCtx(pack *ast.Pack) *packCtx {
	pc := &packCtx{
		pack:     pack,
		ns:       pack.NamespaceLower,
		globals:  map[string]ast.VarType{},
		funcs:    map[string]*ast.Function{},
		entBound: map[string]bool{},
	}
	for _, g := range pack.Globals {
		pc.globals[g.Name] = g.Type
	}
	for _, fn := range pack.Functions {
		pc.funcs[fn.LoweredName] = fn
	}
	return pc
}

// funcCtx is the single-use emission context scoped to one mcfunction body
// currently being written. tmpCount resets per function, matching how a
// fresh temp/register pool is handed out for each function body rather
// than shared globally.
type funcCtx struct {
	pc        *packCtx
	fnName    string // lowered name used in mangled helper names
	path      string // output file path of the current mcfunction
	locals    map[string]ast.VarType
	localScor map[string]string // var name -> mangled score holder, for locals/for-vars
	tmpCount  int
	forStack  []int // indices of enclosing for-loops, for forLocalScore mangling
}

func (g *Generator) newFuncCtx(pc *packCtx, fnName, path string) *funcCtx {
	return &funcCtx{
		pc:        pc,
		fnName:    fnName,
		path:      path,
		locals:    map[string]ast.VarType{},
		localScor: map[string]string{},
	}
}

// resolveType finds a variable's declared type, checking locals (including
// for-loop locals) before pack globals.
func (fc *funcCtx) resolveType(name string) (ast.VarType, bool) {
	if t, ok := fc.locals[name]; ok {
		return t, true
	}
	if t, ok := fc.pc.globals[name]; ok {
		return t, true
	}
	return ast.VarType{}, false
}

func (fc *funcCtx) nextTmp() string {
	n := fc.tmpCount
	fc.tmpCount++
	return tmpName(n)
}

// copyForLocals propagates every local/for-loop-variable binding visible in
// src into dst, so a synthesized helper function (an if-branch body, a
// loop's entry/step pair) can still resolve names pinned by an enclosing
// scope.
func copyForLocals(src, dst *funcCtx) {
	for name, t := range src.locals {
		dst.locals[name] = t
	}
	for name, s := range src.localScor {
		dst.localScor[name] = s
	}
}

// Generator lowers a Script into a flat file list plus a symbol index. It
// holds no state across calls to Generate.
type Generator struct {
	b     *builder
	diags diag.Bag
	idx   ast.SymbolIndex

	packNS map[string]string // pack title -> canonical namespace, for pack-qualified calls

	loadFuncs []string // ns:name entries for data/minecraft/tags/function/load.json
	tickFuncs []string
}

func New() *Generator {
	return &Generator{b: newBuilder(), idx: ast.NewSymbolIndex(), packNS: map[string]string{}}
}
