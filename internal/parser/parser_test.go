package parser

import (
	"testing"

	"github.com/dplc/dpl/internal/ast"
	"github.com/dplc/dpl/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Script {
	t.Helper()
	toks, lexDiags := lexer.Lex(src)
	if len(lexDiags) != 0 {
		t.Fatalf("lex diagnostics: %v", lexDiags)
	}
	script, diags := Parse(toks)
	if len(diags) != 0 {
		t.Fatalf("parse diagnostics: %v", diags)
	}
	if script == nil {
		t.Fatal("Parse returned nil script")
	}
	return script
}

func TestParseSimplePack(t *testing.T) {
	script := parseSource(t, `pack "My Pack" namespace MyNS {
		func Load() {
			say("Hi")
		}
	}`)
	if len(script.Packs) != 1 {
		t.Fatalf("Packs = %d, want 1", len(script.Packs))
	}
	p := script.Packs[0]
	if p.Title != "My Pack" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.NamespaceOriginal != "MyNS" || p.NamespaceLower != "myns" {
		t.Errorf("namespace = %q/%q", p.NamespaceOriginal, p.NamespaceLower)
	}
	if len(p.Functions) != 1 || p.Functions[0].LoweredName != "load" {
		t.Fatalf("Functions = %+v", p.Functions)
	}
	if len(p.Functions[0].Body) != 1 {
		t.Fatalf("body = %+v", p.Functions[0].Body)
	}
	say, ok := p.Functions[0].Body[0].(*ast.SayStmt)
	if !ok {
		t.Fatalf("body[0] type = %T, want *ast.SayStmt", p.Functions[0].Body[0])
	}
	lit, ok := say.Arg.(*ast.LiteralString)
	if !ok || lit.Value != "Hi" {
		t.Errorf("say arg = %+v", say.Arg)
	}
}

func TestParseGlobalsAndExpressions(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		int counter = 0
		string label = "hello"
		func Bump() {
			counter += 1
			counter = counter + 2 * 3
		}
	}`)
	p := script.Packs[0]
	if len(p.Globals) != 2 {
		t.Fatalf("Globals = %+v", p.Globals)
	}
	if p.Globals[0].Type.Kind != ast.KindInt || p.Globals[1].Type.Kind != ast.KindString {
		t.Errorf("global kinds = %v, %v", p.Globals[0].Type.Kind, p.Globals[1].Type.Kind)
	}
	body := p.Functions[0].Body
	if len(body) != 2 {
		t.Fatalf("body = %+v", body)
	}
	if a, ok := body[0].(*ast.AssignStmt); !ok || a.Op != "+=" {
		t.Errorf("body[0] = %+v", body[0])
	}
	assign, ok := body[1].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("body[1] type = %T", body[1])
	}
	bin, ok := assign.Value.(*ast.Binary)
	if !ok || bin.Op != "+" {
		t.Fatalf("assign.Value = %+v", assign.Value)
	}
	rightBin, ok := bin.Right.(*ast.Binary)
	if !ok || rightBin.Op != "*" {
		t.Fatalf("rightBin = %+v", bin.Right)
	}
}

func TestParseIfElseIfElseChain(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		func F() {
			if (x == 1 || x == 2) {
				say("x")
			} else if (x == 3) {
				say("y")
			} else {
				say("z")
			}
		}
	}`)
	fn := script.Packs[0].Functions[0]
	ifStmt, ok := fn.Body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("body[0] type = %T", fn.Body[0])
	}
	if ifStmt.Negate {
		t.Error("Negate = true, want false")
	}
	orCond, ok := ifStmt.Cond.(*ast.BoolCond)
	if !ok || orCond.Op != "||" {
		t.Fatalf("Cond = %+v", ifStmt.Cond)
	}
	if ifStmt.Else == nil || ifStmt.Else.If == nil {
		t.Fatal("expected else-if branch")
	}
	elseIf := ifStmt.Else.If
	if elseIf.Else == nil || elseIf.Else.Block == nil {
		t.Fatal("expected terminal else block")
	}
}

func TestParseUnlessCondition(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		func F() {
			unless (x != 1) {
				say("x")
			}
		}
	}`)
	ifStmt := script.Packs[0].Functions[0].Body[0].(*ast.IfStmt)
	if !ifStmt.Negate {
		t.Error("Negate = false, want true")
	}
	cmp, ok := ifStmt.Cond.(*ast.CompareCond)
	if !ok || cmp.Op != "!=" {
		t.Fatalf("Cond = %+v", ifStmt.Cond)
	}
}

func TestParseForLoop(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		func F() {
			for (int i = 0 | i < 3 | i++) {
				say("loop")
			}
		}
	}`)
	forStmt, ok := script.Packs[0].Functions[0].Body[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("body[0] type = %T", script.Packs[0].Functions[0].Body[0])
	}
	decl, ok := forStmt.Init.(*ast.VarDecl)
	if !ok || decl.Name != "i" {
		t.Fatalf("Init = %+v", forStmt.Init)
	}
	cond, ok := forStmt.Cond.(*ast.CompareCond)
	if !ok || cond.Op != "<" {
		t.Fatalf("Cond = %+v", forStmt.Cond)
	}
	incr, ok := forStmt.Incr.(*ast.AssignStmt)
	if !ok || incr.Op != "+=" {
		t.Fatalf("Incr = %+v", forStmt.Incr)
	}
}

func TestParseWhileLoop(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		int i = 0
		func F() {
			while (i < 5) {
				i++
			}
		}
	}`)
	whileStmt, ok := script.Packs[0].Functions[0].Body[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("body[0] type = %T", script.Packs[0].Functions[0].Body[0])
	}
	if _, ok := whileStmt.Cond.(*ast.CompareCond); !ok {
		t.Fatalf("Cond = %+v", whileStmt.Cond)
	}
}

func TestParseExecuteVariants(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		func F() {
			execute(as @a, or at @e[type=cow]) {
				say("hi")
			}
		}
	}`)
	exec, ok := script.Packs[0].Functions[0].Body[0].(*ast.ExecStmt)
	if !ok {
		t.Fatalf("body[0] type = %T", script.Packs[0].Functions[0].Body[0])
	}
	if len(exec.Variants) != 2 {
		t.Fatalf("Variants = %+v", exec.Variants)
	}
	if exec.Variants[0][0].Kind != "as" || exec.Variants[1][0].Kind != "at" {
		t.Errorf("Variants = %+v", exec.Variants)
	}
}

func TestParsePackQualifiedCall(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		func F() {
			Other.Helper()
		}
	}`)
	call, ok := script.Packs[0].Functions[0].Body[0].(*ast.CallStmt)
	if !ok || call.PackQualifier != "Other" || call.Name != "Helper" {
		t.Fatalf("call = %+v", script.Packs[0].Functions[0].Body[0])
	}
}

func TestParseCallChainAndMember(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		func F() {
			int v = Ent.Get("Steve").GetData(health)
		}
	}`)
	decl := script.Packs[0].Functions[0].Body[0].(*ast.VarDecl)
	outer, ok := decl.Init.(*ast.Call)
	if !ok || outer.Name != "GetData" {
		t.Fatalf("Init = %+v", decl.Init)
	}
	inner, ok := outer.Target.(*ast.Call)
	if !ok || inner.Name != "Get" {
		t.Fatalf("Target = %+v", outer.Target)
	}
	target, ok := inner.Target.(*ast.VarRef)
	if !ok || target.Name != "Ent" {
		t.Fatalf("inner.Target = %+v", inner.Target)
	}
}

func TestParseItemRecipeAdvancementTag(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		Item RubySword {
			base_id: "minecraft:iron_sword"
			components: [ custom_name = "\"Ruby Sword\"" ]
		}
		recipe ruby_sword {
			type: shaped
			pattern: [" R ", " S ", " S "]
			key R = "minecraft:redstone"
			key S = "minecraft:stick"
			result = "n:ruby_sword", 1
		}
		adv first_kill {
			title: "First Kill"
			description: "Kill a mob"
			criteria {
				killed_entity = "minecraft:killed"
			}
		}
		ItemTag swords {
			values: ["n:ruby_sword"]
		}
	}`)
	p := script.Packs[0]
	if len(p.Items) != 1 || p.Items[0].BaseID != "minecraft:iron_sword" {
		t.Fatalf("Items = %+v", p.Items)
	}
	if len(p.Items[0].Components) != 1 || p.Items[0].Components[0].Key != "custom_name" {
		t.Fatalf("Components = %+v", p.Items[0].Components)
	}
	if len(p.Recipes) != 1 || !p.Recipes[0].Shaped || len(p.Recipes[0].Pattern) != 3 {
		t.Fatalf("Recipes = %+v", p.Recipes)
	}
	if len(p.Advancements) != 1 || p.Advancements[0].Criteria["killed_entity"] != "minecraft:killed" {
		t.Fatalf("Advancements = %+v", p.Advancements)
	}
	if len(p.Tags) != 1 || p.Tags[0].Category != "items" || len(p.Tags[0].Values) != 1 {
		t.Fatalf("Tags = %+v", p.Tags)
	}
}

func TestParseArrayLiteral(t *testing.T) {
	script := parseSource(t, `pack "p" namespace n {
		int[] nums = [1, 2, 3]
	}`)
	decl := script.Packs[0].Globals[0]
	if !decl.Type.Array {
		t.Fatal("expected array type")
	}
	arr, ok := decl.Init.(*ast.ArrayLit)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("Init = %+v", decl.Init)
	}
}

func TestParseRecoversFromError(t *testing.T) {
	toks, _ := lexer.Lex(`pack "p" namespace n {
		@@@ bad thing here;
		func Load() { say("ok") }
	}`)
	script, diags := Parse(toks)
	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	if script == nil || len(script.Packs) != 1 {
		t.Fatalf("expected recovery to still yield a pack, got %+v", script)
	}
	if len(script.Packs[0].Functions) != 1 {
		t.Fatalf("expected Load to still parse, got %+v", script.Packs[0].Functions)
	}
}
