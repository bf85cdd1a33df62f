package ast

import "github.com/dplc/dpl/internal/token"

// ComponentProp is one `key=value` entry of an Item's components list. The
// value is preserved verbatim as source text so arbitrary component shapes
// round-trip into the emitted JSON without the parser needing to
// understand every possible component schema.
type ComponentProp struct {
	Key   string
	Value string
}

// Item is a custom item declaration.
type Item struct {
	Name       string
	BaseID     string
	Components []ComponentProp
	Pos        token.Position
}

// RecipeKey is one `key <letter> = <id>` entry of a shaped recipe.
type RecipeKey struct {
	Letter string
	ID     string
}

// Recipe is either a shaped or shapeless recipe declaration. Presence of a
// non-empty Pattern implies Shaped.
type Recipe struct {
	Name        string
	Shaped      bool
	Ingredients []string // shapeless
	Pattern     []string // shaped
	Keys        []RecipeKey
	ResultID    string
	ResultCount int
	Pos         token.Position
}

// Advancement is an advancement declaration with a display block, a
// criteria map, and an optional parent advancement id.
type Advancement struct {
	Name        string
	Title       string
	Description string
	Icon        string
	Parent      string
	Criteria    map[string]string
	Pos         token.Position
}

// TagDecl is a block or item tag declaration.
type TagDecl struct {
	Name     string
	Category string // "blocks" or "items"
	Replace  bool
	Values   []string
	Pos      token.Position
}
