// Package diag implements the three-severity diagnostic model of the DPL
// compiler, formatted with a source-line-plus-caret context so CLI output
// points directly at the offending token.
package diag

import (
	"fmt"
	"strings"

	"github.com/dplc/dpl/internal/token"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	default:
		return "Unknown"
	}
}

// Diagnostic is one compiler message, always carrying a 1-based source
// position so it can be rendered with a caret under the offending token.
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
	Col      int
}

func New(sev Severity, pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: sev, Message: fmt.Sprintf(format, args...), Line: pos.Line, Col: pos.Col}
}

func Errorf(pos token.Position, format string, args ...any) Diagnostic {
	return New(Error, pos, format, args...)
}

func Warningf(pos token.Position, format string, args ...any) Diagnostic {
	return New(Warning, pos, format, args...)
}

func Infof(pos token.Position, format string, args ...any) Diagnostic {
	return New(Info, pos, format, args...)
}

// Bag is a mutable diagnostic sink passed by reference through a pipeline
// stage. Each stage (lexer, parser, validator, generator) owns its own Bag;
// the driver concatenates them in stage order.
type Bag struct {
	items []Diagnostic
}

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) Errorf(pos token.Position, format string, args ...any) {
	b.Add(Errorf(pos, format, args...))
}

func (b *Bag) Warningf(pos token.Position, format string, args ...any) {
	b.Add(Warningf(pos, format, args...))
}

func (b *Bag) Infof(pos token.Position, format string, args ...any) {
	b.Add(Infof(pos, format, args...))
}

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Format renders a diagnostic with a source-context line and a caret.
func Format(d Diagnostic, source string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at line %d:%d: %s\n", d.Severity, d.Line, d.Col, d.Message))

	lines := strings.Split(source, "\n")
	if d.Line >= 1 && d.Line <= len(lines) {
		srcLine := lines[d.Line-1]
		prefix := fmt.Sprintf("%4d | ", d.Line)
		sb.WriteString(prefix)
		sb.WriteString(srcLine)
		sb.WriteString("\n")
		col := d.Col
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
		sb.WriteString("^")
	}
	return sb.String()
}

// FormatAll renders every diagnostic in items with Format, separating
// consecutive diagnostics by a blank line.
func FormatAll(items []Diagnostic, source string) string {
	var sb strings.Builder
	for i, d := range items {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(Format(d, source))
	}
	return sb.String()
}
