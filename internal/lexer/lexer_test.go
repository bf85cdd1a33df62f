package lexer

import (
	"testing"

	"github.com/dplc/dpl/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexBasicPack(t *testing.T) {
	src := `pack "p" namespace n { func Load() { say("Hi") } }`
	toks, diags := Lex(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("last token kind = %v, want EOF", toks[len(toks)-1].Kind)
	}
	want := []token.Kind{
		token.IDENT, token.STRING, token.IDENT, token.IDENT, token.LBRACE,
		token.IDENT, token.IDENT, token.LPAREN, token.RPAREN, token.LBRACE,
		token.IDENT, token.LPAREN, token.STRING, token.RPAREN,
		token.RBRACE, token.RBRACE, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexMacroString(t *testing.T) {
	toks, diags := Lex(`$"say {hello}"`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if toks[0].Kind != token.MACRO {
		t.Fatalf("kind = %v, want MACRO", toks[0].Kind)
	}
	if toks[0].Value != "$say {hello}" {
		t.Errorf("value = %q, want %q", toks[0].Value, "$say {hello}")
	}
}

func TestLexSelectorAsSingleIdent(t *testing.T) {
	toks, diags := Lex(`@e[type=cow]`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(toks) != 2 || toks[0].Kind != token.IDENT {
		t.Fatalf("toks = %+v, want single IDENT then EOF", toks)
	}
	if toks[0].Value != "@e[type=cow]" {
		t.Errorf("value = %q, want %q", toks[0].Value, "@e[type=cow]")
	}
}

func TestLexDotIsOwnToken(t *testing.T) {
	toks, _ := Lex(`Ent.Get`)
	if len(toks) != 4 { // IDENT DOT IDENT EOF
		t.Fatalf("toks = %+v", toks)
	}
	if toks[1].Kind != token.DOT {
		t.Errorf("toks[1].Kind = %v, want DOT", toks[1].Kind)
	}
}

func TestLexNumbersAndOperators(t *testing.T) {
	toks, diags := Lex(`3.5 + -2 == x != y <= 4 >= 1 && b || c ++ -- += -=`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []token.Kind{
		token.NUMBER, token.PLUS, token.NUMBER, token.EQ, token.IDENT,
		token.NEQ, token.IDENT, token.LTE, token.NUMBER, token.GTE,
		token.NUMBER, token.ANDAND, token.IDENT, token.OROR, token.IDENT,
		token.INC, token.DEC, token.PLUSEQ, token.MINUSEQ, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexLineComment(t *testing.T) {
	toks, diags := Lex("a // a trailing comment\nb")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(toks) != 3 || toks[0].Value != "a" || toks[1].Value != "b" {
		t.Fatalf("toks = %+v", toks)
	}
}

func TestLexUnterminatedStringIsFatalDiagnostic(t *testing.T) {
	_, diags := Lex(`"unterminated`)
	if len(diags) != 1 {
		t.Fatalf("diags = %v, want exactly one", diags)
	}
}

func TestLexIllegalCharacter(t *testing.T) {
	toks, diags := Lex("#")
	if len(diags) != 1 {
		t.Fatalf("diags = %v, want exactly one", diags)
	}
	if toks[0].Kind != token.ILLEGAL {
		t.Errorf("kind = %v, want ILLEGAL", toks[0].Kind)
	}
}

func TestLexEscapeSequences(t *testing.T) {
	toks, diags := Lex(`"line\nbreak \"quoted\""`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := "line\nbreak \"quoted\""
	if toks[0].Value != want {
		t.Errorf("value = %q, want %q", toks[0].Value, want)
	}
}
