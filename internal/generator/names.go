package generator

import "fmt"

// The scoreboard objective backing every numeric score.
const objective = "vars"

// storageNS returns the `<ns>:variables` storage root for a pack.
func storageNS(ns string) string {
	return ns + ":variables"
}

// globalScore mangles a pack-level global's scoreboard holder name:
// _<ns>.<var>.
func globalScore(ns, varName string) string {
	return fmt.Sprintf("_%s.%s", ns, varName)
}

// forLocalScore mangles a for-loop local's scoreboard holder name
// ("For-loop local score: __<fn>_for<idx>_<var>").
func forLocalScore(fn string, idx int, varName string) string {
	return fmt.Sprintf("__%s_for%d_%s", fn, idx, varName)
}

// localScore mangles a plain in-body local declaration's scoreboard holder
// name, extending the for-loop-local naming family to locals declared
// outside a for-header (see DESIGN.md).
func localScore(fn, varName string) string {
	return fmt.Sprintf("__%s_local_%s", fn, varName)
}

// tmpName mangles the Nth temporary of the current emission context
// ("Temporaries: __tmp<N> per emission context").
func tmpName(n int) string {
	return fmt.Sprintf("__tmp%d", n)
}

// ifDoneFlag mangles an if-chain's "exactly one branch ran" flag
// ("If-chain flag: __ifdone_<ns>_<N>").
func ifDoneFlag(ns string, n int) string {
	return fmt.Sprintf("__ifdone_%s_%d", ns, n)
}

// forEntryName / forStepName mangle a for-loop's helper function names
// ("Loop helpers: __for_<N> and __for_<N>__step").
func forEntryName(n int) string {
	return fmt.Sprintf("__for_%d", n)
}

func forStepName(n int) string {
	return fmt.Sprintf("__for_%d__step", n)
}

// whileEntryName / whileStepName are the analogous names for while-loops.
func whileEntryName(n int) string {
	return fmt.Sprintf("__while_%d", n)
}

func whileStepName(n int) string {
	return fmt.Sprintf("__while_%d__step", n)
}

// macroFuncName mangles a macro-call wrapper function ("Macro wrappers:
// __macro_<N>").
func macroFuncName(n int) string {
	return fmt.Sprintf("__macro_%d", n)
}

// entBinderName mangles an entity UUID binder function ("Entity UUID
// binder: __ent_bind_<var>").
func entBinderName(varName string) string {
	return fmt.Sprintf("__ent_bind_%s", varName)
}

// runCmdName is the dynamic command runner ("Dynamic command runner:
// __run_cmd").
const runCmdName = "__run_cmd"

func funcPath(ns, name string) string {
	return fmt.Sprintf("data/%s/function/%s.mcfunction", ns, name)
}

func funcRef(ns, name string) string {
	return ns + ":" + name
}
