package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{IDENT, "IDENT"},
		{NUMBER, "NUMBER"},
		{STRING, "STRING"},
		{MACRO, "MACRO"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{ANDAND, "&&"},
		{OROR, "||"},
		{NEQ, "!="},
		{EOF, "EOF"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 9999
	if got := k.String(); got != "UNKNOWN" {
		t.Errorf("unknown Kind.String() = %q, want UNKNOWN", got)
	}
}
