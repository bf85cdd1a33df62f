package parser

import (
	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/token"
)

// parseExpr implements the additive-over-multiplicative-over-unary-over-
// primary precedence climb.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.cur().Kind == token.PLUS || p.cur().Kind == token.MINUS {
		op := p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{Op: op.Value, Left: left, Right: right, Pos: op.Pos}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.cur().Kind == token.STAR || p.cur().Kind == token.SLASH || p.cur().Kind == token.PERCENT {
		op := p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Op: op.Value, Left: left, Right: right, Pos: op.Pos}
	}
	return left
}

// parseUnary folds a leading minus into `0 - e`, since the generator only
// knows how to lower subtraction, not a standalone negation operator.
func (p *Parser) parseUnary() ast.Expr {
	if p.cur().Kind == token.MINUS {
		pos := p.cur().Pos
		p.advance()
		operand := p.parseUnary()
		return &ast.Binary{Op: "-", Left: &ast.LiteralNumber{Value: 0, Raw: "0", Pos: pos}, Right: operand, Pos: pos}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	t := p.cur()
	switch t.Kind {
	case token.NUMBER:
		p.advance()
		return parseNumberLiteral(t.Value, t.Pos)
	case token.STRING, token.MACRO:
		p.advance()
		return &ast.LiteralString{Value: t.Value, Pos: t.Pos}
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LPAREN:
		p.advance()
		e := p.parseExpr()
		p.expect(token.RPAREN, "')'")
		return e
	case token.IDENT:
		return p.parsePostfixIdent()
	default:
		p.diags.Errorf(t.Pos, "unexpected token %q in expression", t.Value)
		p.advance()
		return &ast.LiteralNumber{Value: 0, Raw: "0", Pos: t.Pos}
	}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	pos := p.cur().Pos
	p.advance() // consume '['
	lit := &ast.ArrayLit{Pos: pos}
	for p.cur().Kind != token.RBRACKET && !p.atEOF() {
		lit.Elements = append(lit.Elements, p.parseExpr())
		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACKET, "']'")
	return lit
}

// parseArgs parses a parenthesized, comma-separated argument list. The
// opening '(' must already be the current token.
func (p *Parser) parseArgs() []ast.Expr {
	p.advance() // consume '('
	var args []ast.Expr
	for p.cur().Kind != token.RPAREN && !p.atEOF() {
		args = append(args, p.parseExpr())
		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN, "')'")
	return args
}

// parsePostfixIdent parses an identifier followed by any chain of `.name`
// or `(args)` postfixes. A bare `.name` not followed by `(` becomes a
// MemberExpr; `.name(` becomes a CallExpr whose Target holds the object
// parsed so far, rather than prepending the object into Args.
func (p *Parser) parsePostfixIdent() ast.Expr {
	t := p.advance()
	var expr ast.Expr = &ast.VarRef{Name: t.Value, Pos: t.Pos}

	if p.cur().Kind == token.LPAREN {
		args := p.parseArgs()
		expr = &ast.Call{Name: t.Value, Args: args, Pos: t.Pos}
	}

	for p.cur().Kind == token.DOT {
		p.advance()
		nameTok, ok := p.expect(token.IDENT, "member name after '.'")
		if !ok {
			break
		}
		if p.cur().Kind == token.LPAREN {
			args := p.parseArgs()
			expr = &ast.Call{Target: expr, Name: nameTok.Value, Args: args, Pos: nameTok.Pos}
		} else {
			expr = &ast.Member{Object: expr, Name: nameTok.Value, Pos: nameTok.Pos}
		}
	}
	return expr
}

// --- Conditions ---

// parseCondition implements `||` lowest, `&&` next, comparisons tightest.
func (p *Parser) parseCondition() ast.Cond {
	return p.parseCondOr()
}

func (p *Parser) parseCondOr() ast.Cond {
	left := p.parseCondAnd()
	for p.cur().Kind == token.OROR {
		op := p.advance()
		right := p.parseCondAnd()
		left = &ast.BoolCond{Op: "||", Left: left, Right: right, Pos: op.Pos}
	}
	return left
}

func (p *Parser) parseCondAnd() ast.Cond {
	left := p.parseCondPrimary()
	for p.cur().Kind == token.ANDAND {
		op := p.advance()
		right := p.parseCondPrimary()
		left = &ast.BoolCond{Op: "&&", Left: left, Right: right, Pos: op.Pos}
	}
	return left
}

var compareOps = map[token.Kind]string{
	token.EQ: "==", token.NEQ: "!=", token.LT: "<", token.LTE: "<=", token.GT: ">", token.GTE: ">=",
}

func (p *Parser) parseCondPrimary() ast.Cond {
	if p.cur().Kind == token.LPAREN {
		p.advance()
		c := p.parseCondition()
		p.expect(token.RPAREN, "')'")
		return c
	}
	// A bare string literal at comparison position is a Raw condition,
	// passed through to the execute-if clause verbatim.
	if p.cur().Kind == token.STRING {
		t := p.advance()
		return &ast.RawCond{Text: t.Value, Pos: t.Pos}
	}
	pos := p.cur().Pos
	left := p.parseExpr()
	if op, ok := compareOps[p.cur().Kind]; ok {
		p.advance()
		right := p.parseExpr()
		return &ast.CompareCond{Op: op, Left: left, Right: right, Pos: pos}
	}
	p.diags.Errorf(pos, "expected a comparison operator in condition")
	// A missing comparison yields a null sub-tree, which callers treat as
	// "always true" so codegen can keep going after the diagnostic.
	return nil
}
