package ident

import (
	"testing"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/diag"
	"github.com/dplc/dpl/internal/token"
)

func TestFoldNamespaceLowercases(t *testing.T) {
	if got := FoldNamespace("MyNS"); got != "myns" {
		t.Errorf("FoldNamespace(%q) = %q, want %q", "MyNS", got, "myns")
	}
}

func TestValidNamespace(t *testing.T) {
	cases := []struct {
		ns   string
		want bool
	}{
		{"my_pack", true},
		{"my-pack.v2", true},
		{"MyPack", false}, // uppercase not allowed in the canonical form
		{"my pack", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidNamespace(c.ns); got != c.want {
			t.Errorf("ValidNamespace(%q) = %v, want %v", c.ns, got, c.want)
		}
	}
}

func TestValidFunctionName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"load", true},
		{"sub/func.name+x", true},
		{"Load", false},
		{"has space", false},
	}
	for _, c := range cases {
		if got := ValidFunctionName(c.name); got != c.want {
			t.Errorf("ValidFunctionName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func pack(ns string, fns ...*ast.Function) *ast.Pack {
	return &ast.Pack{
		Title:             ns,
		NamespaceOriginal: ns,
		NamespaceLower:    ns,
		Functions:         fns,
		Pos:               token.Position{Line: 1, Col: 1},
	}
}

func fn(lowered string) *ast.Function {
	return &ast.Function{OriginalName: lowered, LoweredName: lowered, Pos: token.Position{Line: 1, Col: 1}}
}

func TestValidateCleanScript(t *testing.T) {
	script := &ast.Script{Packs: []*ast.Pack{pack("alpha", fn("load"), fn("tick"))}}
	if diags := Validate(script); len(diags) != 0 {
		t.Fatalf("Validate() = %v, want no diagnostics", diags)
	}
}

func TestValidateDuplicateNamespace(t *testing.T) {
	script := &ast.Script{Packs: []*ast.Pack{pack("alpha"), pack("alpha")}}
	diags := Validate(script)
	if len(diags) != 1 || diags[0].Severity != diag.Error {
		t.Fatalf("Validate() = %v, want one Error diagnostic", diags)
	}
}

func TestValidateBadNamespaceCharacters(t *testing.T) {
	script := &ast.Script{Packs: []*ast.Pack{pack("Alpha!")}}
	diags := Validate(script)
	if len(diags) != 1 || diags[0].Severity != diag.Error {
		t.Fatalf("Validate() = %v, want one Error diagnostic", diags)
	}
}

func TestValidateDuplicateFunctionName(t *testing.T) {
	script := &ast.Script{Packs: []*ast.Pack{pack("alpha", fn("load"), fn("load"))}}
	diags := Validate(script)
	if len(diags) != 1 || diags[0].Severity != diag.Error {
		t.Fatalf("Validate() = %v, want one Error diagnostic", diags)
	}
}
