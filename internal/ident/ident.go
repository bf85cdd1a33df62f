// Package ident validates namespace and function-name shapes and folds a
// pack's original-case namespace token into its canonical lowercase form
// using golang.org/x/text/cases, since Minecraft resource locations are
// themselves case-sensitive lowercase even though DPL source is not.
package ident

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var namespaceRe = regexp.MustCompile(`^[a-z0-9_.-]+$`)
var functionRe = regexp.MustCompile(`^[a-z0-9_/.+-]+$`)

var lowerCaser = cases.Lower(language.Und)

// FoldNamespace returns the canonical lowercase form of a namespace token.
// Packs keep both forms: the original casing for display, the folded form
// for every generated resource location.
func FoldNamespace(raw string) string {
	return lowerCaser.String(raw)
}

// ValidNamespace reports whether ns is a legal Minecraft resource-location
// namespace: `[a-z0-9_.-]+`.
func ValidNamespace(ns string) bool {
	return namespaceRe.MatchString(ns)
}

// ValidFunctionName reports whether name is a legal Minecraft resource-
// location path: `[a-z0-9_/.+-]+`.
func ValidFunctionName(name string) bool {
	return functionRe.MatchString(name)
}
