// Package jsonout builds and formats the JSON descriptor files a datapack
// needs: items, recipes, advancements, tags, pack.mcmeta, lifecycle tags.
// It is built entirely on github.com/tidwall/sjson, github.com/tidwall/gjson,
// and github.com/tidwall/pretty rather than encoding/json, since sjson's
// path-set style matches the generator's incremental "build one small JSON
// value per declarative statement" shape better than round-tripping
// through a Go struct.
package jsonout

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Builder accumulates a JSON document by path, the way the generator
// assembles item/recipe/advancement/tag bodies one property at a time.
type Builder struct {
	data []byte
}

// New starts a new JSON object builder.
func New() *Builder {
	return &Builder{data: []byte("{}")}
}

// Set writes value at path, replacing the builder's internal buffer.
// Errors from sjson (malformed path) should never occur since all paths
// here are compiler-controlled literals; they are ignored the same way a
// strings.Builder's never-failing Write is ignored.
func (b *Builder) Set(path string, value any) *Builder {
	out, err := sjson.SetBytes(b.data, path, value)
	if err == nil {
		b.data = out
	}
	return b
}

// SetRaw writes a pre-built JSON fragment (object, array, or scalar) at
// path without re-encoding it.
func (b *Builder) SetRaw(path string, rawJSON string) *Builder {
	out, err := sjson.SetRawBytes(b.data, path, []byte(rawJSON))
	if err == nil {
		b.data = out
	}
	return b
}

// Bytes returns the accumulated (unformatted) JSON document.
func (b *Builder) Bytes() []byte {
	return b.data
}

// Get reads back a path from the builder's accumulated document, letting
// callers assert on structure instead of re-parsing the formatted string.
func (b *Builder) Get(path string) gjson.Result {
	return gjson.GetBytes(b.data, path)
}

// Get reads a path out of an already-formatted JSON document, used by
// generator tests to inspect emitted files structurally.
func Get(document string, path string) gjson.Result {
	return gjson.Get(document, path)
}

// Format pretty-prints JSON to two-space indentation with a trailing
// newline, matching the style Minecraft's own data generators emit.
func Format(data []byte) string {
	out := pretty.PrettyOptions(data, &pretty.Options{Indent: "  ", Width: 80})
	s := string(out)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

// String renders the builder's accumulated document through Format.
func (b *Builder) String() string {
	return Format(b.data)
}

// RawArray joins pre-quoted/raw JSON element strings into a `[ ... ]`
// fragment suitable for SetRaw.
func RawArray(elems []string) string {
	return "[" + strings.Join(elems, ",") + "]"
}

// Quote renders s as a JSON string literal using sjson's own string
// encoding (via a throwaway Set at a scratch path), keeping all JSON
// string-escaping inside the sjson/gjson stack.
func Quote(s string) string {
	out, err := sjson.Set("{}", "v", s)
	if err != nil {
		return `""`
	}
	// out is `{"v":<quoted>}`; slice out the value.
	i := strings.Index(out, ":")
	return strings.TrimSuffix(out[i+1:], "}")
}
