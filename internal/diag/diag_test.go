package diag

import (
	"strings"
	"testing"

	"github.com/dplc/dpl/internal/token"
)

func TestBagSeverityHelpers(t *testing.T) {
	var b Bag
	b.Errorf(token.Position{Line: 1, Col: 1}, "boom %d", 1)
	b.Warningf(token.Position{Line: 2, Col: 2}, "careful")
	b.Infof(token.Position{Line: 3, Col: 3}, "fyi")

	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("Items() len = %d, want 3", len(items))
	}
	if items[0].Severity != Error || items[0].Message != "boom 1" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Severity != Warning {
		t.Errorf("items[1].Severity = %v, want Warning", items[1].Severity)
	}
	if items[2].Severity != Info {
		t.Errorf("items[2].Severity = %v, want Info", items[2].Severity)
	}
	if !b.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestBagHasErrorsFalseWithoutErrors(t *testing.T) {
	var b Bag
	b.Warningf(token.Position{Line: 1, Col: 1}, "just a warning")
	if b.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
}

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	source := "pack \"p\" namespace n {\n  bad stmt\n}\n"
	d := Errorf(token.Position{Line: 2, Col: 3}, "unexpected token %q", "bad")

	out := Format(d, source)
	if !strings.Contains(out, "Error at line 2:3") {
		t.Errorf("Format output missing severity/position header: %q", out)
	}
	if !strings.Contains(out, "bad stmt") {
		t.Errorf("Format output missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("Format output missing caret: %q", out)
	}
}

func TestFormatAllJoinsEveryDiagnostic(t *testing.T) {
	source := "line one\nline two\n"
	items := []Diagnostic{
		Errorf(token.Position{Line: 1, Col: 1}, "first"),
		Warningf(token.Position{Line: 2, Col: 1}, "second"),
	}
	out := FormatAll(items, source)
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("FormatAll missing a message: %q", out)
	}
}
