// Package parser implements a recursive-descent parser turning a token
// stream into a typed AST, with a precedence climb for expressions and
// site-local error recovery via a cursor/synchronize shape.
package parser

import (
	"strconv"
	"strings"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/diag"
	"github.com/dplc/dpl/internal/token"
)

// Parser walks a flat token slice with a single lookahead cursor.
type Parser struct {
	toks  []token.Token
	pos   int
	diags diag.Bag
}

// Parse runs the parser to completion. It returns (nil, diags) only on a
// catastrophic failure; local errors are recorded in diags and recovered
// from so parsing continues.
func Parse(toks []token.Token) (*ast.Script, []diag.Diagnostic) {
	p := &Parser{toks: toks}
	script := p.parseScript()
	return script, p.diags.Items()
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peek(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool { return p.cur().Kind == token.EOF }

// isKeyword reports whether the current token is an identifier spelled kw.
func (p *Parser) isKeyword(kw string) bool {
	t := p.cur()
	return t.Kind == token.IDENT && t.Value == kw
}

func (p *Parser) expectKeyword(kw string) bool {
	if p.isKeyword(kw) {
		p.advance()
		return true
	}
	p.diags.Errorf(p.cur().Pos, "expected %q, got %q", kw, p.cur().Value)
	return false
}

func (p *Parser) expect(kind token.Kind, desc string) (token.Token, bool) {
	if p.cur().Kind == kind {
		return p.advance(), true
	}
	p.diags.Errorf(p.cur().Pos, "expected %s, got %q", desc, p.cur().Value)
	return token.Token{}, false
}

// synchronize implements the site-local recovery rule: after recording a
// diagnostic, skip to the next semicolon or matching closing brace.
func (p *Parser) synchronize() {
	depth := 0
	for !p.atEOF() {
		switch p.cur().Kind {
		case token.SEMI:
			if depth == 0 {
				p.advance()
				return
			}
		case token.LBRACE:
			depth++
		case token.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

func (p *Parser) parseScript() *ast.Script {
	script := &ast.Script{}
	for !p.atEOF() {
		if !p.isKeyword("pack") {
			p.diags.Errorf(p.cur().Pos, "expected pack declaration, got %q", p.cur().Value)
			p.advance()
			continue
		}
		pack := p.parsePack()
		if pack != nil {
			script.Packs = append(script.Packs, pack)
		}
	}
	return script
}

func (p *Parser) parsePack() *ast.Pack {
	pos := p.cur().Pos
	p.expectKeyword("pack")
	titleTok, ok := p.expect(token.STRING, "pack title string")
	title := titleTok.Value
	_ = ok
	p.expectKeyword("namespace")
	nsTok, _ := p.expect(token.IDENT, "namespace identifier")
	pack := &ast.Pack{
		Title:             title,
		NamespaceOriginal: nsTok.Value,
		NamespaceLower:    strings.ToLower(nsTok.Value),
		Pos:               pos,
	}
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		p.synchronize()
		return pack
	}
	for !p.atEOF() && p.cur().Kind != token.RBRACE {
		p.parsePackMember(pack)
	}
	p.expect(token.RBRACE, "'}'")
	return pack
}

func (p *Parser) parsePackMember(pack *ast.Pack) {
	if p.cur().Kind != token.IDENT {
		p.diags.Errorf(p.cur().Pos, "unexpected token %q inside pack body", p.cur().Value)
		p.synchronize()
		return
	}
	switch {
	case p.isKeyword("global"):
		p.advance()
		if decl := p.parseVarDecl(); decl != nil {
			pack.Globals = append(pack.Globals, decl)
		}
	case isTypeKeyword(p.cur().Value) && (p.peek(1).Kind == token.IDENT || p.peek(1).Kind == token.LBRACKET):
		// typed globals without the `global` prefix are still globals.
		if decl := p.parseVarDecl(); decl != nil {
			pack.Globals = append(pack.Globals, decl)
		}
	case p.isKeyword("func"):
		if fn := p.parseFunction(); fn != nil {
			pack.Functions = append(pack.Functions, fn)
		}
	case p.isKeyword("adv"):
		if adv := p.parseAdvancement(); adv != nil {
			pack.Advancements = append(pack.Advancements, adv)
		}
	case p.isKeyword("recipe"):
		if r := p.parseRecipe(); r != nil {
			pack.Recipes = append(pack.Recipes, r)
		}
	case p.isKeyword("Item"):
		if it := p.parseItem(); it != nil {
			pack.Items = append(pack.Items, it)
		}
	case strings.HasSuffix(p.cur().Value, "Tag"):
		if tag := p.parseTag(); tag != nil {
			pack.Tags = append(pack.Tags, tag)
		}
	default:
		p.diags.Warningf(p.cur().Pos, "unknown declaration %q, skipping", p.cur().Value)
		p.synchronize()
	}
}

func isTypeKeyword(s string) bool {
	switch s {
	case "int", "float", "double", "bool", "string", "Ent":
		return true
	}
	return false
}

func (p *Parser) parseType() (ast.VarType, bool) {
	t := p.cur()
	if t.Kind != token.IDENT || !isTypeKeyword(t.Value) {
		p.diags.Errorf(t.Pos, "expected a type (int, float, double, bool, string, Ent), got %q", t.Value)
		return ast.VarType{}, false
	}
	p.advance()
	vt := ast.VarType{Kind: kindFromName(t.Value)}
	if p.cur().Kind == token.LBRACKET && p.peek(1).Kind == token.RBRACKET {
		p.advance()
		p.advance()
		vt.Array = true
	}
	return vt, true
}

func kindFromName(s string) ast.VarKind {
	switch s {
	case "int":
		return ast.KindInt
	case "float":
		return ast.KindFloat
	case "double":
		return ast.KindDouble
	case "bool":
		return ast.KindBool
	case "string":
		return ast.KindString
	case "Ent":
		return ast.KindEnt
	}
	return ast.KindInt
}

// parseVarDecl parses `<type> <name> [= expr] ;` used for both globals and
// local statement-level declarations.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	pos := p.cur().Pos
	vt, ok := p.parseType()
	if !ok {
		p.synchronize()
		return nil
	}
	nameTok, ok := p.expect(token.IDENT, "variable name")
	if !ok {
		p.synchronize()
		return nil
	}
	decl := &ast.VarDecl{Type: vt, Name: nameTok.Value, Pos: pos}
	if p.cur().Kind == token.ASSIGN {
		p.advance()
		decl.Init = p.parseExpr()
	}
	if p.cur().Kind == token.SEMI {
		p.advance()
	}
	return decl
}

func (p *Parser) parseFunction() *ast.Function {
	pos := p.cur().Pos
	p.expectKeyword("func")
	nameTok, _ := p.expect(token.IDENT, "function name")
	p.expect(token.LPAREN, "'('")
	p.expect(token.RPAREN, "')'")
	fn := &ast.Function{
		OriginalName: nameTok.Value,
		LoweredName:  strings.ToLower(nameTok.Value),
		Pos:          pos,
	}
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		p.synchronize()
		return fn
	}
	fn.Body = p.parseBlock()
	return fn
}

// parseBlock parses statements until a closing '}', which it consumes.
func (p *Parser) parseBlock() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEOF() && p.cur().Kind != token.RBRACE {
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "'}'")
	return stmts
}

// parseNumberLiteral turns raw number text into a LiteralNumber, falling
// back to the value 0 on parse failure rather than failing the whole compilation
// (should not happen given the lexer's NUMBER grammar).
func parseNumberLiteral(raw string, pos token.Position) *ast.LiteralNumber {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v = 0
	}
	return &ast.LiteralNumber{Value: v, Raw: raw, Pos: pos}
}
