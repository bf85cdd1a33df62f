package generator

import (
	"strings"
	"testing"

	"github.com/dplc/dpl/internal/generator/jsonout"
	"github.com/dplc/dpl/internal/lexer"
	"github.com/dplc/dpl/internal/parser"
)

// genSource runs lex+parse+generate over src and fails the test if any
// stage reports a diagnostic, returning the generated files keyed by path.
func genSource(t *testing.T, src string) map[string]string {
	t.Helper()
	toks, lexDiags := lexer.Lex(src)
	if len(lexDiags) != 0 {
		t.Fatalf("lex diagnostics: %v", lexDiags)
	}
	script, parseDiags := parser.Parse(toks)
	if len(parseDiags) != 0 {
		t.Fatalf("parse diagnostics: %v", parseDiags)
	}
	result := Generate(script)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("generate diagnostics: %v", result.Diagnostics)
	}
	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f.Path] = f.Contents
	}
	return files
}

func mustFile(t *testing.T, files map[string]string, path string) string {
	t.Helper()
	content, ok := files[path]
	if !ok {
		t.Fatalf("missing expected output file %q; have: %v", path, keysOf(files))
	}
	return content
}

func keysOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// TestGenerateSimplePackProducesLifecycleFiles checks that a single Say
// statement in a Load function produces pack.mcmeta, the lowered
// mcfunction, and the lifecycle load tag listing bootstrap/init/load in
// order.
func TestGenerateSimplePackProducesLifecycleFiles(t *testing.T) {
	files := genSource(t, `pack "p" namespace n {
		func Load() { say("Hi") }
	}`)

	meta := mustFile(t, files, "pack.mcmeta")
	if !strings.Contains(meta, `"p"`) {
		t.Errorf("pack.mcmeta missing description: %s", meta)
	}

	fn := mustFile(t, files, "data/n/function/load.mcfunction")
	if strings.TrimSpace(fn) != `say "Hi"` {
		t.Errorf("load.mcfunction = %q, want %q", fn, `say "Hi"`)
	}

	loadTag := mustFile(t, files, "data/minecraft/tags/function/load.json")
	for _, want := range []string{"n:__bootstrap", "n:__init", "n:load"} {
		if !strings.Contains(loadTag, want) {
			t.Errorf("load.json missing %q: %s", want, loadTag)
		}
	}
}

// TestGenerateForLoopEntryStepPair checks that a for-loop lowers to an
// entry/step helper pair, the entry guards the step call on the loop
// condition, and the step recurses back into entry after running the body
// and the increment.
func TestGenerateForLoopEntryStepPair(t *testing.T) {
	files := genSource(t, `pack "p" namespace n {
		func f() {
			for (int i = 0 | i < 3 | i++) {
				say("loop")
			}
		}
	}`)

	entry := mustFile(t, files, "data/n/function/__for_0.mcfunction")
	if !strings.Contains(entry, "execute if score") || !strings.Contains(entry, "run function n:__for_0__step") {
		t.Errorf("__for_0.mcfunction missing guarded step dispatch: %q", entry)
	}

	step := mustFile(t, files, "data/n/function/__for_0__step.mcfunction")
	lines := strings.Split(strings.TrimSpace(step), "\n")
	if len(lines) < 2 {
		t.Fatalf("__for_0__step.mcfunction too short: %q", step)
	}
	if !strings.Contains(step, `say "loop"`) {
		t.Errorf("step missing body: %q", step)
	}
	if lines[len(lines)-1] != "function n:__for_0" {
		t.Errorf("step does not recurse back into entry, last line = %q", lines[len(lines)-1])
	}

	fn := mustFile(t, files, "data/n/function/f.mcfunction")
	count := strings.Count(fn, "function n:__for_0")
	if count != 1 {
		t.Errorf("f.mcfunction has %d calls into __for_0, want exactly 1: %q", count, fn)
	}
}

// TestGenerateIfElseIfElseDispatch checks that an `if(a==1||a==2)` chain
// with an else lowers to one guarded dispatch per `||` variant of the
// true branch, followed by a dispatch into the else branch gated on the
// inverted ifdone flag, with the flag set to 1 inside each body.
func TestGenerateIfElseIfElseDispatch(t *testing.T) {
	files := genSource(t, `pack "p" namespace n {
		int a = 0
		func f() {
			if (a == 1 || a == 2) { say("x") } else { say("y") }
		}
	}`)

	fn := mustFile(t, files, "data/n/function/f.mcfunction")
	if strings.Count(fn, "run function n:__if_0_body") != 2 {
		t.Errorf("expected two guarded dispatches into the x-branch body, got: %q", fn)
	}
	if strings.Count(fn, "run function n:__if_1_body") != 1 {
		t.Errorf("expected one guarded dispatch into the y-branch body, got: %q", fn)
	}

	xBody := mustFile(t, files, "data/n/function/__if_0_body.mcfunction")
	if !strings.Contains(xBody, `say "x"`) {
		t.Errorf("__if_0_body missing x say: %q", xBody)
	}
	if !strings.HasPrefix(strings.TrimSpace(xBody), "scoreboard players set __ifdone_n_0 vars 1") {
		t.Errorf("__if_0_body does not set the ifdone flag first: %q", xBody)
	}

	yBody := mustFile(t, files, "data/n/function/__if_1_body.mcfunction")
	if !strings.Contains(yBody, `say "y"`) {
		t.Errorf("__if_1_body missing y say: %q", yBody)
	}
}

// TestGenerateMacroRunWritesThroughAndRewrites checks that a macro Run
// string with three int-global placeholders writes three
// store-result-to-storage commands before invoking the synthesized macro
// function, whose body is the rewritten macro-line content.
func TestGenerateMacroRunWritesThroughAndRewrites(t *testing.T) {
	files := genSource(t, `pack "p" namespace n {
		int x = 0
		int y = 0
		int z = 0
		func f() {
			run($"/teleport @s {x} {y} {z}")
		}
	}`)

	fn := mustFile(t, files, "data/n/function/f.mcfunction")
	if strings.Count(fn, "execute store result storage n:variables") != 3 {
		t.Errorf("expected three write-through commands, got: %q", fn)
	}
	if !strings.Contains(fn, "function n:__macro_0 with storage n:variables") {
		t.Errorf("missing macro call site: %q", fn)
	}

	macro := mustFile(t, files, "data/n/function/__macro_0.mcfunction")
	lines := strings.Split(strings.TrimRight(macro, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("__macro_0.mcfunction should be a single line, got %d: %q", len(lines), macro)
	}
	if !strings.HasPrefix(lines[0], "$") {
		t.Errorf("macro line missing leading macro marker: %q", lines[0])
	}
	if !strings.Contains(lines[0], "$(x) $(y) $(z)") {
		t.Errorf("macro line missing rewritten placeholders: %q", lines[0])
	}
}

func TestGenerateGlobalInitAndCompoundAssign(t *testing.T) {
	files := genSource(t, `pack "p" namespace n {
		global int x = 5
		func f() { x += 3 }
	}`)
	initFn := mustFile(t, files, "data/n/function/__init.mcfunction")
	if !strings.Contains(initFn, "scoreboard players operation _n.x vars = __tmp0 vars") {
		t.Errorf("__init.mcfunction missing global assignment: %q", initFn)
	}
	fFn := mustFile(t, files, "data/n/function/f.mcfunction")
	if !strings.Contains(fFn, "_n.x vars += __tmp0 vars") {
		t.Errorf("f.mcfunction missing compound assignment: %q", fFn)
	}
}

func TestGenerateItemRecipeGiveHelper(t *testing.T) {
	files := genSource(t, `pack "p" namespace n {
		Item emerald_sword {
			base_id: "minecraft:wooden_sword"
			components: [ minecraft:item_name="Emerald" ]
		}
		recipe emerald_sword_recipe {
			type: shaped
			pattern: ["E", "S"]
			key E = "minecraft:emerald"
			key S = "minecraft:stick"
			result = "n:emerald_sword", 1
		}
	}`)

	item := mustFile(t, files, "data/n/items/emerald_sword.json")
	if got := jsonout.Get(item, "base_id").String(); got != "minecraft:wooden_sword" {
		t.Errorf("item json base_id = %q, want %q", got, "minecraft:wooden_sword")
	}

	give := mustFile(t, files, "data/n/function/give.emerald_sword.mcfunction")
	if !strings.Contains(give, "n:emerald_sword") {
		t.Errorf("give helper missing item reference: %q", give)
	}

	recipe := mustFile(t, files, "data/n/recipes/emerald_sword_recipe.json")
	if got := jsonout.Get(recipe, "result.item").String(); got != "n:emerald_sword" {
		t.Errorf("recipe result.item = %q, want %q", got, "n:emerald_sword")
	}
	if got := jsonout.Get(recipe, "result.count").Int(); got != 1 {
		t.Errorf("recipe result.count = %d, want 1", got)
	}
}

func TestGenerateAdvancementWritesPluralDirectory(t *testing.T) {
	files := genSource(t, `pack "p" namespace n {
		adv first_steps {
			title: "First Steps"
			description: "Say hello"
			icon: "minecraft:grass_block"
			criteria {
				said_hello = "minecraft:tick"
			}
		}
	}`)

	adv := mustFile(t, files, "data/n/advancements/first_steps.json")
	if got := jsonout.Get(adv, "display.title").String(); got != "First Steps" {
		t.Errorf("advancement display.title = %q, want %q", got, "First Steps")
	}
	if got := jsonout.Get(adv, "criteria.said_hello.trigger").String(); got != "minecraft:tick" {
		t.Errorf("advancement criteria trigger = %q, want %q", got, "minecraft:tick")
	}
}

func TestGenerateTickFunctionRegistered(t *testing.T) {
	files := genSource(t, `pack "p" namespace n {
		func Tick() { say("tick") }
	}`)
	tickTag := mustFile(t, files, "data/minecraft/tags/function/tick.json")
	if !strings.Contains(tickTag, "n:tick") {
		t.Errorf("tick.json missing n:tick: %s", tickTag)
	}
}

func TestGenerateUndefinedVariableIsDiagnosticError(t *testing.T) {
	toks, _ := lexer.Lex(`pack "p" namespace n {
		func f() { missing += 1 }
	}`)
	script, _ := parser.Parse(toks)
	result := Generate(script)
	if len(result.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic for an undefined variable")
	}
	found := false
	for _, d := range result.Diagnostics {
		if strings.Contains(d.Message, "missing") {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics did not mention the undefined variable: %v", result.Diagnostics)
	}
}

func TestSymbolIndexPopulated(t *testing.T) {
	toks, _ := lexer.Lex(`pack "p" namespace n {
		int counter = 0
		func Load() { say("hi") }
	}`)
	script, _ := parser.Parse(toks)
	result := Generate(script)
	ns, ok := result.Symbols["n"]
	if !ok {
		t.Fatalf("Symbols missing namespace %q: %v", "n", result.Symbols)
	}
	if !ns.Vars["counter"] {
		t.Errorf("Symbols[n].Vars missing %q", "counter")
	}
	if !ns.Functions["load"] {
		t.Errorf("Symbols[n].Functions missing %q", "load")
	}
}
