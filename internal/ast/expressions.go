package ast

import "github.com/dplc/dpl/internal/token"

// Expr is any expression node.
type Expr interface {
	Position() token.Position
	exprNode()
}

// LiteralString is a quoted string (plain or macro-prefixed). Macro-ness is
// recorded on the token that produced it and the generator recognizes the
// leading '$' on Value.
type LiteralString struct {
	Value string
	Pos   token.Position
}

// LiteralNumber is a numeric literal. Raw preserves the exact source text
// so integer truncation can be applied consistently.
type LiteralNumber struct {
	Value float64
	Raw   string
	Pos   token.Position
}

// VarRef is a bare identifier used as a value.
type VarRef struct {
	Name string
	Pos  token.Position
}

// Binary is arithmetic over two sub-expressions: + - * / %.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   token.Position
}

// Call is `[Target.]Name(Args...)`, used for namespaced helpers such as
// Random.value(...), Math.Min/Max/Pow/Root, Ent.Get(...), and entity-data
// lookups.
type Call struct {
	Target Expr // nil when unqualified
	Name   string
	Args   []Expr
	Pos    token.Position
}

// Member is dotted access not immediately followed by a call, e.g. a
// chained `.GetData(field)` result consumed further, or enum-like access.
type Member struct {
	Object Expr
	Name   string
	Pos    token.Position
}

// ArrayLit is an ordered literal array `[ e1, e2, ... ]`.
type ArrayLit struct {
	Elements []Expr
	Pos      token.Position
}

func (e *LiteralString) Position() token.Position { return e.Pos }
func (e *LiteralNumber) Position() token.Position { return e.Pos }
func (e *VarRef) Position() token.Position        { return e.Pos }
func (e *Binary) Position() token.Position        { return e.Pos }
func (e *Call) Position() token.Position          { return e.Pos }
func (e *Member) Position() token.Position        { return e.Pos }
func (e *ArrayLit) Position() token.Position       { return e.Pos }

func (*LiteralString) exprNode() {}
func (*LiteralNumber) exprNode() {}
func (*VarRef) exprNode()        {}
func (*Binary) exprNode()        {}
func (*Call) exprNode()          {}
func (*Member) exprNode()        {}
func (*ArrayLit) exprNode()      {}
