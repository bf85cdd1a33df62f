package generator

import (
	"fmt"
	"strings"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/generator/jsonout"
)

// genItem writes an item's base-identifier/component JSON plus its
// `give.<name>` helper function.
func (g *Generator) genItem(pc *packCtx, it *ast.Item) {
	doc := jsonout.New().Set("base_id", it.BaseID)
	for _, c := range it.Components {
		doc.SetRaw("components."+c.Key, c.Value)
	}
	g.b.SetFull(fmt.Sprintf("data/%s/items/%s.json", pc.ns, it.Name), doc.String())

	givePath := funcPath(pc.ns, "give."+it.Name)
	g.b.SetFull(givePath, fmt.Sprintf("give @s %s:%s\n", pc.ns, it.Name))
}

// qualifyID prefixes a bare (no namespace separator) result identifier
// with the pack's own namespace.
func qualifyID(ns, id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return ns + ":" + id
}

// genRecipe writes a shaped or shapeless recipe descriptor under the
// plural data/<ns>/recipes/ directory Minecraft expects.
func (g *Generator) genRecipe(pc *packCtx, r *ast.Recipe) {
	doc := jsonout.New()
	if r.Shaped {
		doc.Set("type", "minecraft:crafting_shaped")
		patternJSON := jsonout.RawArray(quoteAll(r.Pattern))
		doc.SetRaw("pattern", patternJSON)
		for _, k := range r.Keys {
			doc.Set("key."+k.Letter+".item", qualifyID(pc.ns, k.ID))
		}
	} else {
		doc.Set("type", "minecraft:crafting_shapeless")
		ingredientsJSON := jsonout.RawArray(quoteAll(qualifyAll(pc.ns, r.Ingredients)))
		doc.SetRaw("ingredients", ingredientsJSON)
	}
	doc.Set("result.item", qualifyID(pc.ns, r.ResultID))
	doc.Set("result.count", r.ResultCount)
	g.b.SetFull(fmt.Sprintf("data/%s/recipes/%s.json", pc.ns, r.Name), doc.String())
}

func quoteAll(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = jsonout.Quote(x)
	}
	return out
}

func qualifyAll(ns string, xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = qualifyID(ns, x)
	}
	return out
}

// genAdvancement writes an advancement's display/criteria/parent
// descriptor under the plural data/<ns>/advancements/ directory Minecraft
// expects.
func (g *Generator) genAdvancement(pc *packCtx, a *ast.Advancement) {
	doc := jsonout.New().
		Set("display.title", a.Title).
		Set("display.description", a.Description).
		Set("display.icon.item", a.Icon)
	if a.Parent != "" {
		doc.Set("parent", qualifyID(pc.ns, a.Parent))
	}
	for key, value := range a.Criteria {
		doc.Set("criteria."+key+".trigger", value)
	}
	g.b.SetFull(fmt.Sprintf("data/%s/advancements/%s.json", pc.ns, a.Name), doc.String())
}

// genTag writes a block/item tag descriptor.
func (g *Generator) genTag(pc *packCtx, t *ast.TagDecl) {
	values := jsonout.RawArray(quoteAll(qualifyAll(pc.ns, t.Values)))
	doc := jsonout.New().
		Set("replace", t.Replace).
		SetRaw("values", values)
	g.b.SetFull(fmt.Sprintf("data/%s/tags/%s/%s.json", pc.ns, t.Category, t.Name), doc.String())
}
