package parser

import (
	"strconv"
	"strings"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/token"
)

// propSep accepts either ':' or '=' as a property separator. The grammar
// uses both across declarative blocks (`base_id = "..."` but
// `components: [ ... ]`).
func (p *Parser) propSep() bool {
	if p.cur().Kind == token.COLON || p.cur().Kind == token.ASSIGN {
		p.advance()
		return true
	}
	p.diags.Errorf(p.cur().Pos, "expected ':' or '=' after property name")
	return false
}

func (p *Parser) stringOrIdentValue() string {
	t := p.cur()
	if t.Kind == token.STRING || t.Kind == token.IDENT {
		p.advance()
		return t.Value
	}
	p.diags.Errorf(t.Pos, "expected a string or identifier value, got %q", t.Value)
	return ""
}

func (p *Parser) endProp() {
	if p.cur().Kind == token.SEMI {
		p.advance()
	}
}

// parseItem parses `Item <name> { base_id = ...; components: [ ... ]; }`.
// Component bodies are preserved as key=value text pairs rather than
// re-parsed into a typed schema, since arbitrary component shapes must
// round-trip untouched.
func (p *Parser) parseItem() *ast.Item {
	pos := p.advance().Pos // consume 'Item'
	nameTok, _ := p.expect(token.IDENT, "item name")
	item := &ast.Item{Name: nameTok.Value, Pos: pos}
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		p.synchronize()
		return item
	}
	for p.cur().Kind != token.RBRACE && !p.atEOF() {
		propTok, ok := p.expect(token.IDENT, "item property name")
		if !ok {
			p.synchronize()
			continue
		}
		switch propTok.Value {
		case "base_id":
			if !p.propSep() {
				p.synchronize()
				continue
			}
			item.BaseID = p.stringOrIdentValue()
			p.endProp()
		case "components":
			if !p.propSep() {
				p.synchronize()
				continue
			}
			item.Components = p.parseComponentList()
			p.endProp()
		default:
			p.diags.Warningf(propTok.Pos, "unknown item property %q, skipping", propTok.Value)
			p.synchronize()
		}
	}
	p.expect(token.RBRACE, "'}'")
	return item
}

// parseComponentList parses the balanced-bracket `[ ... ]` body of a
// components list into key=value pairs.
func (p *Parser) parseComponentList() []ast.ComponentProp {
	p.expect(token.LBRACKET, "'['")
	var props []ast.ComponentProp
	for p.cur().Kind != token.RBRACKET && !p.atEOF() {
		var keyParts []string
		for p.cur().Kind != token.ASSIGN && p.cur().Kind != token.COMMA && p.cur().Kind != token.RBRACKET && !p.atEOF() {
			keyParts = append(keyParts, p.advance().Value)
		}
		key := strings.Join(keyParts, "")
		value := ""
		if p.cur().Kind == token.ASSIGN {
			p.advance()
			value = p.rawValueText()
		}
		props = append(props, ast.ComponentProp{Key: key, Value: value})
		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACKET, "']'")
	return props
}

// rawValueText reads one token as raw text for a preserved-verbatim
// component value.
func (p *Parser) rawValueText() string {
	t := p.advance()
	if t.Kind == token.STRING {
		return `"` + t.Value + `"`
	}
	return t.Value
}

// parseRecipe parses `recipe <name> { type=...; ingredient=...;
// pattern=[...]; key X = ...; result = ...; }`.
func (p *Parser) parseRecipe() *ast.Recipe {
	pos := p.advance().Pos // consume 'recipe'
	nameTok, _ := p.expect(token.IDENT, "recipe name")
	r := &ast.Recipe{Name: nameTok.Value, ResultCount: 1, Pos: pos}
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		p.synchronize()
		return r
	}
	for p.cur().Kind != token.RBRACE && !p.atEOF() {
		propTok, ok := p.expect(token.IDENT, "recipe property name")
		if !ok {
			p.synchronize()
			continue
		}
		switch propTok.Value {
		case "type":
			if !p.propSep() {
				p.synchronize()
				continue
			}
			v := p.stringOrIdentValue()
			r.Shaped = v == "shaped"
			p.endProp()
		case "ingredient":
			if !p.propSep() {
				p.synchronize()
				continue
			}
			r.Ingredients = append(r.Ingredients, p.stringOrIdentValue())
			p.endProp()
		case "pattern":
			if !p.propSep() {
				p.synchronize()
				continue
			}
			r.Pattern = p.parseStringArray()
			r.Shaped = true // presence of pattern implies shaped
			p.endProp()
		case "key":
			letterTok, ok := p.expect(token.IDENT, "recipe key letter")
			if !ok {
				p.synchronize()
				continue
			}
			if !p.propSep() {
				p.synchronize()
				continue
			}
			id := p.stringOrIdentValue()
			r.Keys = append(r.Keys, ast.RecipeKey{Letter: letterTok.Value, ID: id})
			p.endProp()
		case "result":
			if !p.propSep() {
				p.synchronize()
				continue
			}
			r.ResultID = p.stringOrIdentValue()
			if p.cur().Kind == token.COMMA {
				p.advance()
			}
			if p.cur().Kind == token.NUMBER {
				if n, err := strconv.Atoi(p.advance().Value); err == nil {
					r.ResultCount = n
				}
			}
			p.endProp()
		default:
			p.diags.Warningf(propTok.Pos, "unknown recipe property %q, skipping", propTok.Value)
			p.synchronize()
		}
	}
	p.expect(token.RBRACE, "'}'")
	return r
}

func (p *Parser) parseStringArray() []string {
	p.expect(token.LBRACKET, "'['")
	var vals []string
	for p.cur().Kind != token.RBRACKET && !p.atEOF() {
		vals = append(vals, p.stringOrIdentValue())
		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACKET, "']'")
	return vals
}

// parseAdvancement parses `adv <name> { title=...; description=...;
// icon=...; parent=...; criteria { name = "trigger"; ... } }`.
func (p *Parser) parseAdvancement() *ast.Advancement {
	pos := p.advance().Pos // consume 'adv'
	nameTok, _ := p.expect(token.IDENT, "advancement name")
	adv := &ast.Advancement{Name: nameTok.Value, Criteria: map[string]string{}, Pos: pos}
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		p.synchronize()
		return adv
	}
	for p.cur().Kind != token.RBRACE && !p.atEOF() {
		propTok, ok := p.expect(token.IDENT, "advancement property name")
		if !ok {
			p.synchronize()
			continue
		}
		switch propTok.Value {
		case "title":
			p.propSep()
			adv.Title = p.stringOrIdentValue()
			p.endProp()
		case "description":
			p.propSep()
			adv.Description = p.stringOrIdentValue()
			p.endProp()
		case "icon":
			p.propSep()
			adv.Icon = p.stringOrIdentValue()
			p.endProp()
		case "parent":
			p.propSep()
			adv.Parent = p.stringOrIdentValue()
			p.endProp()
		case "criteria":
			if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
				p.synchronize()
				continue
			}
			for p.cur().Kind != token.RBRACE && !p.atEOF() {
				keyTok, ok := p.expect(token.IDENT, "criteria name")
				if !ok {
					p.synchronize()
					continue
				}
				p.propSep()
				adv.Criteria[keyTok.Value] = p.stringOrIdentValue()
				p.endProp()
			}
			p.expect(token.RBRACE, "'}'")
		default:
			p.diags.Warningf(propTok.Pos, "unknown advancement property %q, skipping", propTok.Value)
			p.synchronize()
		}
	}
	p.expect(token.RBRACE, "'}'")
	return adv
}

// parseTag parses `BlockTag|ItemTag <name> { replace=...; values: [...]; }`.
// The keyword itself determines category.
func (p *Parser) parseTag() *ast.TagDecl {
	kw := p.advance()
	category := "items"
	if strings.HasPrefix(kw.Value, "Block") {
		category = "blocks"
	}
	nameTok, _ := p.expect(token.IDENT, "tag name")
	tag := &ast.TagDecl{Name: nameTok.Value, Category: category, Pos: kw.Pos}
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		p.synchronize()
		return tag
	}
	for p.cur().Kind != token.RBRACE && !p.atEOF() {
		propTok, ok := p.expect(token.IDENT, "tag property name")
		if !ok {
			p.synchronize()
			continue
		}
		switch propTok.Value {
		case "replace":
			p.propSep()
			v := p.stringOrIdentValue()
			tag.Replace = v == "true"
			p.endProp()
		case "values":
			p.propSep()
			tag.Values = p.parseStringArray()
			p.endProp()
		default:
			p.diags.Warningf(propTok.Pos, "unknown tag property %q, skipping", propTok.Value)
			p.synchronize()
		}
	}
	p.expect(token.RBRACE, "'}'")
	return tag
}
