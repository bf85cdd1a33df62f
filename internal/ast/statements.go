package ast

import "github.com/dplc/dpl/internal/token"

// Stmt is any statement node.
type Stmt interface {
	Position() token.Position
	stmtNode()
}

// SayStmt is `say(expr)`.
type SayStmt struct {
	Arg Expr
	Pos token.Position
}

// RunStmt is `run(expr)`.
type RunStmt struct {
	Arg Expr
	Pos token.Position
}

// VarDecl is a typed declaration, `<type> <name> [= expr];`, used both for
// pack-level globals and for a for-loop's typed init clause.
type VarDecl struct {
	Type VarType
	Name string
	Init Expr // nil if no initializer
	Pos  token.Position
}

func (d *VarDecl) stmtNode() {}
func (d *VarDecl) Position() token.Position { return d.Pos }

// AssignStmt covers `=`, `+=`, `-=`, `*=`, `/=`, `%=`, and is also used to
// desugar `++`/`--` (Op "+=" / "-=" with an implicit literal 1 Value).
type AssignStmt struct {
	Name  string
	Op    string // "=", "+=", "-=", "*=", "/=", "%="
	Value Expr
	Pos   token.Position
}

// CallStmt is a statement-level call, optionally qualified by a pack
// prefix (`OtherPack.helper()`).
type CallStmt struct {
	PackQualifier string // "" if unqualified
	Name          string
	Args          []Expr
	Pos           token.Position
}

// ElseBranch is either another If (an `else if`) or a terminal block.
type ElseBranch struct {
	If    *IfStmt
	Block []Stmt
}

// IfStmt models `if`/`unless` with an optional else chain. Negate is true
// for `unless`.
type IfStmt struct {
	Negate bool
	Cond   Cond
	Body   []Stmt
	Else   *ElseBranch // nil if no else
	Pos    token.Position
}

// ExecModifier is one prefix fragment of an execute variant: `as <sel>`,
// `at <sel>`, or `positioned <x> <y> <z>`.
type ExecModifier struct {
	Kind string // "as", "at", "positioned"
	Args []string
}

// ExecStmt models an `execute` block: a list of `or`-separated variants
// sharing one body. An empty variant list is normalized to one
// variant with no modifiers.
type ExecStmt struct {
	Variants [][]ExecModifier
	Body     []Stmt
	Pos      token.Position
}

// ForStmt is `for(init | cond | incr) { body }`. Init and Incr may be nil.
type ForStmt struct {
	Init Stmt // *VarDecl or *AssignStmt, or nil
	Cond Cond
	Incr Stmt // *AssignStmt, or nil
	Body []Stmt
	Pos  token.Position
}

// WhileStmt is `while(cond) { body }`.
type WhileStmt struct {
	Cond Cond
	Body []Stmt
	Pos  token.Position
}

func (s *SayStmt) Position() token.Position   { return s.Pos }
func (s *RunStmt) Position() token.Position   { return s.Pos }
func (s *AssignStmt) Position() token.Position { return s.Pos }
func (s *CallStmt) Position() token.Position  { return s.Pos }
func (s *IfStmt) Position() token.Position    { return s.Pos }
func (s *ExecStmt) Position() token.Position  { return s.Pos }
func (s *ForStmt) Position() token.Position   { return s.Pos }
func (s *WhileStmt) Position() token.Position { return s.Pos }

func (*SayStmt) stmtNode()    {}
func (*RunStmt) stmtNode()    {}
func (*AssignStmt) stmtNode() {}
func (*CallStmt) stmtNode()   {}
func (*IfStmt) stmtNode()     {}
func (*ExecStmt) stmtNode()   {}
func (*ForStmt) stmtNode()    {}
func (*WhileStmt) stmtNode()  {}
