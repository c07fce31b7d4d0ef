package token

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// generations hands out a distinct owner tag to every CodeMap so spans from one
// registry are never mistaken for spans from another.
var generations atomic.Uint32

// entry is a single interned range in a CodeMap's span table.
type entry struct {
	rng  Range  // The byte range the span points at
	file uint32 // Index of the owning FileMap, 1 indexed
}

// CodeMap is the registry of every file being analysed and every [Span]
// handed out for them.
//
// All files in a CodeMap draw span identifiers from the same table, so a span is
// unique across the whole CodeMap, not just within its file.
//
// A CodeMap is not safe for concurrent use. Tokenizing needs no registry at all,
// so the usual pattern is to scan files in parallel and register the results
// from a single goroutine.
type CodeMap struct {
	files      []*FileMap // Owned files in insertion order
	entries    []entry    // Span table, a span's id is its index + 1
	generation uint32     // Owner tag stamped on every span
}

// NewCodeMap returns a new, empty [CodeMap].
func NewCodeMap() *CodeMap {
	return &CodeMap{generation: generations.Add(1)}
}

// InsertFile adds a file to the CodeMap and returns a handle to it.
//
// The handle may be passed around and held by as many owners as needed, the
// CodeMap keeps one too.
func (c *CodeMap) InsertFile(name, content string) *FileMap {
	file := &FileMap{
		owner:   c,
		seen:    make(map[Range]Span),
		name:    name,
		content: content,
		index:   uint32(len(c.files) + 1),
	}

	c.files = append(c.files, file)

	return file
}

// Files returns the files in the CodeMap in the order they were inserted.
func (c *CodeMap) Files() []*FileMap {
	return slices.Clone(c.files)
}

// File returns the [FileMap] that interned span, giving access to its name and
// content. It returns false if span does not belong to this CodeMap.
func (c *CodeMap) File(span Span) (*FileMap, bool) {
	if span.owner != c.generation || span.file == 0 || int(span.file) > len(c.files) {
		return nil, false
	}

	return c.files[span.file-1], true
}

// Lookup returns the source text span points at.
//
// Lookup panics if span was not produced by a file in this CodeMap, this is
// always a bug in the caller.
func (c *CodeMap) Lookup(span Span) string {
	if file, ok := c.File(span); ok {
		if text, ok := file.Lookup(span); ok {
			return text
		}
	}

	panic(fmt.Sprintf("CodeMap.Lookup: %s is not in any of the FileMaps, this is a bug", span))
}

// alloc records rng in the span table on behalf of file and returns the new span.
func (c *CodeMap) alloc(file uint32, rng Range) Span {
	c.entries = append(c.entries, entry{rng: rng, file: file})

	return Span{
		id:    uint32(len(c.entries)),
		file:  file,
		owner: c.generation,
	}
}

// get returns the table entry for span, or false if span isn't one of ours.
func (c *CodeMap) get(span Span) (entry, bool) {
	if span.owner != c.generation || span.id == 0 || int(span.id) > len(c.entries) {
		return entry{}, false
	}

	return c.entries[span.id-1], true
}
