// Package ast defines the typed syntax tree produced by the parser and
// consumed by the validator and generator. Every node kind is a small
// struct implementing one of the Expr, Cond, or Stmt interfaces, so callers
// exhaustively type-switch rather than probing an "unknown kind" field the
// way a dynamically-typed implementation would have to.
package ast

import "github.com/dplc/dpl/internal/token"

// VarKind enumerates the scalar types DPL supports.
type VarKind int

const (
	KindInt VarKind = iota
	KindFloat
	KindDouble
	KindBool
	KindString
	KindEnt
)

func (k VarKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindEnt:
		return "Ent"
	default:
		return "?"
	}
}

// Numeric reports whether values of this kind participate in scoreboard
// arithmetic.
func (k VarKind) Numeric() bool {
	return k == KindInt || k == KindFloat || k == KindDouble || k == KindBool
}

// VarType is a scalar kind plus an "is this an array of that kind" flag.
// Every DPL type is usable as a scalar or a homogeneous ordered array.
type VarType struct {
	Kind  VarKind
	Array bool
}

func (t VarType) String() string {
	if t.Array {
		return t.Kind.String() + "[]"
	}
	return t.Kind.String()
}

// Script is the root node: an ordered list of packs.
type Script struct {
	Packs []*Pack
}

// Pack is a named compilation unit. NamespaceLower is the canonical,
// validated namespace used for all emitted paths; NamespaceOriginal keeps
// the source casing for symbol-index display.
type Pack struct {
	Title             string
	NamespaceOriginal string
	NamespaceLower    string
	Globals           []*VarDecl
	Functions         []*Function
	Items             []*Item
	Recipes           []*Recipe
	Advancements      []*Advancement
	Tags              []*TagDecl
	Pos               token.Position
}

// Function is a user-declared pack function.
type Function struct {
	OriginalName string
	LoweredName  string
	Body         []Stmt
	Pos          token.Position
}
