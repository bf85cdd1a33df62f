package parser

import (
	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/token"
)

var assignOps = map[token.Kind]string{
	token.ASSIGN: "=", token.PLUSEQ: "+=", token.MINUSEQ: "-=",
	token.STAREQ: "*=", token.SLASHEQ: "/=", token.PERCENTEQ: "%=",
}

func (p *Parser) parseStmt() ast.Stmt {
	t := p.cur()
	if t.Kind != token.IDENT {
		p.diags.Errorf(t.Pos, "unexpected token %q, expected a statement", t.Value)
		p.synchronize()
		return nil
	}

	switch {
	case t.Value == "say":
		return p.parseSay()
	case t.Value == "run":
		return p.parseRun()
	case isTypeKeyword(t.Value):
		return p.parseVarDecl()
	case t.Value == "if" || t.Value == "unless":
		return p.parseIf()
	case t.Value == "execute":
		return p.parseExecute()
	case t.Value == "for":
		return p.parseFor()
	case t.Value == "while":
		return p.parseWhile()
	default:
		return p.parseCallOrAssign()
	}
}

func (p *Parser) parseSay() ast.Stmt {
	pos := p.advance().Pos // consume 'say'
	p.expect(token.LPAREN, "'('")
	arg := p.parseExpr()
	p.expect(token.RPAREN, "')'")
	if p.cur().Kind == token.SEMI {
		p.advance()
	}
	return &ast.SayStmt{Arg: arg, Pos: pos}
}

func (p *Parser) parseRun() ast.Stmt {
	pos := p.advance().Pos // consume 'run'
	p.expect(token.LPAREN, "'('")
	arg := p.parseExpr()
	p.expect(token.RPAREN, "')'")
	if p.cur().Kind == token.SEMI {
		p.advance()
	}
	return &ast.RunStmt{Arg: arg, Pos: pos}
}

// parseCallOrAssign disambiguates `name(...)`, `Pack.name(...)`,
// `name = expr`, `name += expr`, and `name++`/`name--` (desugared to
// `name += 1`/`name -= 1`), all of which start with a bare identifier.
func (p *Parser) parseCallOrAssign() ast.Stmt {
	nameTok := p.advance()
	pos := nameTok.Pos

	if p.cur().Kind == token.DOT && p.peek(1).Kind == token.IDENT && p.peek(2).Kind == token.LPAREN {
		p.advance() // '.'
		fnTok := p.advance()
		args := p.parseArgs()
		if p.cur().Kind == token.SEMI {
			p.advance()
		}
		return &ast.CallStmt{PackQualifier: nameTok.Value, Name: fnTok.Value, Args: args, Pos: pos}
	}

	if p.cur().Kind == token.LPAREN {
		args := p.parseArgs()
		if p.cur().Kind == token.SEMI {
			p.advance()
		}
		return &ast.CallStmt{Name: nameTok.Value, Args: args, Pos: pos}
	}

	if p.cur().Kind == token.INC || p.cur().Kind == token.DEC {
		op := p.advance()
		if p.cur().Kind == token.SEMI {
			p.advance()
		}
		assignOp := "+="
		if op.Kind == token.DEC {
			assignOp = "-="
		}
		return &ast.AssignStmt{Name: nameTok.Value, Op: assignOp, Value: &ast.LiteralNumber{Value: 1, Raw: "1", Pos: op.Pos}, Pos: pos}
	}

	if op, ok := assignOps[p.cur().Kind]; ok {
		p.advance()
		value := p.parseExpr()
		if p.cur().Kind == token.SEMI {
			p.advance()
		}
		return &ast.AssignStmt{Name: nameTok.Value, Op: op, Value: value, Pos: pos}
	}

	p.diags.Errorf(pos, "expected '(', '=', or a compound assignment after %q", nameTok.Value)
	p.synchronize()
	return nil
}

// parseIf parses `if`/`unless(cond){body}` with an optional `else` chain,
// which may itself start with another `if`.
func (p *Parser) parseIf() ast.Stmt {
	kw := p.advance()
	negate := kw.Value == "unless"
	p.expect(token.LPAREN, "'('")
	cond := p.parseCondition()
	p.expect(token.RPAREN, "')'")
	p.expect(token.LBRACE, "'{'")
	body := p.parseBlock()

	stmt := &ast.IfStmt{Negate: negate, Cond: cond, Body: body, Pos: kw.Pos}

	if p.isKeyword("else") {
		p.advance()
		if p.isKeyword("if") || p.isKeyword("unless") {
			nested := p.parseIf().(*ast.IfStmt)
			stmt.Else = &ast.ElseBranch{If: nested}
		} else {
			p.expect(token.LBRACE, "'{'")
			stmt.Else = &ast.ElseBranch{Block: p.parseBlock()}
		}
	}
	return stmt
}

// parseExecute parses an execute block: `or`-separated variants, each a
// sequence of `as`/`at`/`positioned` modifiers (optionally comma-separated
// within the variant), sharing one body.
func (p *Parser) parseExecute() ast.Stmt {
	pos := p.advance().Pos // consume 'execute'
	p.expect(token.LPAREN, "'('")

	var variants [][]ast.ExecModifier
	var current []ast.ExecModifier
	for p.cur().Kind != token.RPAREN && !p.atEOF() {
		if p.isKeyword("or") {
			p.advance()
			variants = append(variants, current)
			current = nil
			continue
		}
		mod, ok := p.parseExecModifier()
		if !ok {
			break
		}
		current = append(current, mod)
		if p.cur().Kind == token.COMMA {
			p.advance()
		}
	}
	variants = append(variants, current)
	p.expect(token.RPAREN, "')'")

	// An empty variant list is normalized to a single empty variant.
	if len(variants) == 0 {
		variants = [][]ast.ExecModifier{nil}
	}

	p.expect(token.LBRACE, "'{'")
	body := p.parseBlock()
	return &ast.ExecStmt{Variants: variants, Body: body, Pos: pos}
}

func (p *Parser) parseExecModifier() (ast.ExecModifier, bool) {
	if p.cur().Kind != token.IDENT {
		p.diags.Errorf(p.cur().Pos, "expected an execute modifier (as/at/positioned), got %q", p.cur().Value)
		return ast.ExecModifier{}, false
	}
	kw := p.advance()
	switch kw.Value {
	case "as", "at":
		sel, _ := p.expect(token.IDENT, "selector")
		return ast.ExecModifier{Kind: kw.Value, Args: []string{sel.Value}}, true
	case "positioned":
		var coords []string
		for i := 0; i < 3 && (p.cur().Kind == token.IDENT || p.cur().Kind == token.NUMBER); i++ {
			coords = append(coords, p.advance().Value)
		}
		return ast.ExecModifier{Kind: "positioned", Args: coords}, true
	default:
		p.diags.Errorf(kw.Pos, "unknown execute modifier %q", kw.Value)
		return ast.ExecModifier{}, false
	}
}

// parseFor parses `for(init | cond | incr) { body }`.
func (p *Parser) parseFor() ast.Stmt {
	pos := p.advance().Pos // consume 'for'
	p.expect(token.LPAREN, "'('")

	var init ast.Stmt
	if p.cur().Kind != token.PIPE {
		if isTypeKeyword(p.cur().Value) {
			init = p.parseForVarDecl()
		} else {
			init = p.parseForAssign()
		}
	}
	p.expect(token.PIPE, "'|'")

	var cond ast.Cond
	if p.cur().Kind != token.PIPE {
		cond = p.parseCondition()
	}
	p.expect(token.PIPE, "'|'")

	var incr ast.Stmt
	if p.cur().Kind != token.RPAREN {
		incr = p.parseForAssign()
	}
	p.expect(token.RPAREN, "')'")

	p.expect(token.LBRACE, "'{'")
	body := p.parseBlock()
	return &ast.ForStmt{Init: init, Cond: cond, Incr: incr, Body: body, Pos: pos}
}

// parseForVarDecl is parseVarDecl without consuming a trailing semicolon,
// since the for-header uses '|' as its separator instead.
func (p *Parser) parseForVarDecl() ast.Stmt {
	pos := p.cur().Pos
	vt, ok := p.parseType()
	if !ok {
		return nil
	}
	nameTok, ok := p.expect(token.IDENT, "variable name")
	if !ok {
		return nil
	}
	decl := &ast.VarDecl{Type: vt, Name: nameTok.Value, Pos: pos}
	if p.cur().Kind == token.ASSIGN {
		p.advance()
		decl.Init = p.parseExpr()
	}
	return decl
}

// parseForAssign parses an assignment or `name++`/`name--` without
// consuming a trailing semicolon (used for both the for-header's init and
// increment clauses).
func (p *Parser) parseForAssign() ast.Stmt {
	nameTok, ok := p.expect(token.IDENT, "identifier")
	if !ok {
		return nil
	}
	pos := nameTok.Pos
	if p.cur().Kind == token.INC || p.cur().Kind == token.DEC {
		op := p.advance()
		assignOp := "+="
		if op.Kind == token.DEC {
			assignOp = "-="
		}
		return &ast.AssignStmt{Name: nameTok.Value, Op: assignOp, Value: &ast.LiteralNumber{Value: 1, Raw: "1", Pos: op.Pos}, Pos: pos}
	}
	op, ok := assignOps[p.cur().Kind]
	if !ok {
		p.diags.Errorf(p.cur().Pos, "expected an assignment in for-loop clause")
		return nil
	}
	p.advance()
	value := p.parseExpr()
	return &ast.AssignStmt{Name: nameTok.Value, Op: op, Value: value, Pos: pos}
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.advance().Pos // consume 'while'
	p.expect(token.LPAREN, "'('")
	cond := p.parseCondition()
	p.expect(token.RPAREN, "')'")
	p.expect(token.LBRACE, "'{'")
	body := p.parseBlock()
	return &ast.WhileStmt{Cond: cond, Body: body, Pos: pos}
}
