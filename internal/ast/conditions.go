package ast

import "github.com/dplc/dpl/internal/token"

// Cond is a condition node. A nil Cond is valid and means "always true"
// for execute-guard purposes: the generator's condToVariants returns [[]]
// for it.
type Cond interface {
	Position() token.Position
	condNode()
}

// RawCond is a literal string used directly as an execute-guard fragment.
type RawCond struct {
	Text string
	Pos  token.Position
}

// CompareCond relates two expressions with one of == != < <= > >=.
type CompareCond struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   token.Position
}

// BoolCond is `&&` or `||` over two sub-conditions. Precedence: `&&` binds
// tighter than `||`. Both bind looser than comparisons.
type BoolCond struct {
	Op    string // "&&" or "||"
	Left  Cond
	Right Cond
	Pos   token.Position
}

func (c *RawCond) Position() token.Position     { return c.Pos }
func (c *CompareCond) Position() token.Position { return c.Pos }
func (c *BoolCond) Position() token.Position    { return c.Pos }

func (*RawCond) condNode()     {}
func (*CompareCond) condNode() {}
func (*BoolCond) condNode()    {}
