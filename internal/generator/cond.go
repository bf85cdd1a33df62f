package generator

import "github.com/dplc/dpl/internal/ast"

// guard is one execute subcommand fragment: either `if <text>` or, when
// Unless is set, `unless <text>`. Unless exists because `!=` has no
// scoreboard comparator of its own, only the negation of `=`.
type guard struct {
	Unless bool
	Text   string
}

func (gd guard) render() string {
	if gd.Unless {
		return "unless " + gd.Text
	}
	return "if " + gd.Text
}

var compareOps = map[string]string{"==": "=", "!=": "=", "<": "<", "<=": "<=", ">": ">", ">=": ">="}

// condToVariants lowers a Cond into a disjunctive-normal-form variant list:
// `variants(A && B) = {x∪y | x∈variants(A), y∈variants(B)}`,
// `variants(A || B) = variants(A) ⊎ variants(B)`. A nil condition (no guard
// clause at all) yields `[[]]`, one variant with no guards, so callers can
// always range over at least one variant.
func (g *Generator) condToVariants(fc *funcCtx, c ast.Cond) [][]guard {
	if c == nil {
		return [][]guard{{}}
	}
	switch n := c.(type) {
	case *ast.RawCond:
		return [][]guard{{{Text: n.Text}}}
	case *ast.CompareCond:
		return [][]guard{{g.lowerCompare(fc, n)}}
	case *ast.BoolCond:
		left := g.condToVariants(fc, n.Left)
		right := g.condToVariants(fc, n.Right)
		if n.Op == "||" {
			return append(append([][]guard{}, left...), right...)
		}
		out := make([][]guard, 0, len(left)*len(right))
		for _, x := range left {
			for _, y := range right {
				combined := make([]guard, 0, len(x)+len(y))
				combined = append(combined, x...)
				combined = append(combined, y...)
				out = append(out, combined)
			}
		}
		return out
	default:
		g.diags.Errorf(c.Position(), "unsupported condition form")
		return [][]guard{{}}
	}
}

// lowerCompare evaluates both sides into fresh temporary scores and emits a
// single score-to-score comparison guard, relying on `execute unless ...`
// negation only for `!=`, since the scoreboard comparator set has no direct
// not-equal operator.
func (g *Generator) lowerCompare(fc *funcCtx, n *ast.CompareCond) guard {
	l := g.lowerExpr(fc, n.Left)
	r := g.lowerExpr(fc, n.Right)
	op, ok := compareOps[n.Op]
	if !ok {
		g.diags.Errorf(n.Pos, "unsupported comparison operator %q", n.Op)
		op = "="
	}
	text := "score " + l + " " + objective + " " + op + " score " + r + " " + objective
	return guard{Unless: n.Op == "!=", Text: text}
}

// renderGuards joins a variant's guard fragments into the trailing
// subcommand text appended after `execute` (and before `run ...`).
func renderGuards(variant []guard) string {
	out := ""
	for i, gd := range variant {
		if i > 0 {
			out += " "
		}
		out += gd.render()
	}
	return out
}
