package generator

import (
	"strings"

	"github.com/dplc/dpl/internal/ast"
)

// fileKind distinguishes mcfunction bodies, which are assembled line by
// line as statement emission proceeds, from complete-content files (JSON
// descriptors, pack.mcmeta) that are written once in full.
type fileKind int

const (
	kindLines fileKind = iota
	kindFull
)

type fileEntry struct {
	kind  fileKind
	lines []string
	full  string
}

// builder owns the output file list and implements an upsert-by-path
// discipline: helper-file synthesis happening mid-emission (give helpers,
// for-loop step functions) must not produce duplicate entries for a path
// already opened earlier in the same pass. It is an intermediate
// map[path]contents materialized to a list on Finalize.
type builder struct {
	order   []string
	entries map[string]*fileEntry
}

func newBuilder() *builder {
	return &builder{entries: map[string]*fileEntry{}}
}

func (b *builder) entry(path string) *fileEntry {
	e, ok := b.entries[path]
	if !ok {
		e = &fileEntry{}
		b.entries[path] = e
		b.order = append(b.order, path)
	}
	return e
}

// Emit appends one command line to the mcfunction file at path.
func (b *builder) Emit(path, line string) {
	e := b.entry(path)
	e.kind = kindLines
	e.lines = append(e.lines, line)
}

// SetFull replaces the complete contents of a (typically JSON) file. A
// second SetFull for the same path overwrites it, matching upsert-by-path
// semantics.
func (b *builder) SetFull(path, contents string) {
	e := b.entry(path)
	e.kind = kindFull
	e.full = contents
}

// EnsureFile guarantees path exists (possibly empty), so that e.g. a
// function with no statements still produces its .mcfunction file.
func (b *builder) EnsureFile(path string) {
	b.entry(path)
}

func (b *builder) Finalize() []ast.GeneratedFile {
	files := make([]ast.GeneratedFile, 0, len(b.order))
	for _, path := range b.order {
		e := b.entries[path]
		var contents string
		switch e.kind {
		case kindFull:
			contents = e.full
		default:
			if len(e.lines) > 0 {
				contents = strings.Join(e.lines, "\n") + "\n"
			}
		}
		files = append(files, ast.GeneratedFile{Path: path, Contents: contents})
	}
	return files
}
