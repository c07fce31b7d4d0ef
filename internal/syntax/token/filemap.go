package token

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"go.followtheprocess.codes/pasta/internal/syntax"
)

// FileMap is a single file in a [CodeMap]: its name, its content and the spans
// interned against that content.
//
// FileMaps are created with [CodeMap.InsertFile].
type FileMap struct {
	owner   *CodeMap       // The CodeMap holding the span table
	seen    map[Range]Span // Ranges already interned, for dedup
	name    string         // Name of the file
	content string         // Full source text
	lines   []int          // Byte offsets at which each line starts, built on demand
	index   uint32         // Position in owner.files, 1 indexed
}

// Name returns the name the file was inserted with.
func (f *FileMap) Name() string {
	return f.name
}

// Content returns the entire text of the file.
func (f *FileMap) Content() string {
	return f.content
}

// Len returns the number of distinct spans interned in this file.
func (f *FileMap) Len() int {
	return len(f.seen)
}

// Intern returns the [Span] for the half open byte range [start, end).
//
// Interning a range that has been seen before returns the original span, otherwise
// a new one is allocated.
//
// start and end must have come from this file's content: 0 <= start <= end <= len(content)
// and both must lie on a UTF-8 character boundary. Intern panics if they don't, use
// [FileMap.TryIntern] when that can't be guaranteed.
func (f *FileMap) Intern(start, end int) Span {
	span, err := f.TryIntern(start, end)
	if err != nil {
		panic(fmt.Errorf("FileMap.Intern: %w", err))
	}

	return span
}

// TryIntern is like [FileMap.Intern] but returns an error wrapping [ErrOutOfBounds] or
// [ErrNotCharBoundary] rather than panicking on a bad range.
func (f *FileMap) TryIntern(start, end int) (Span, error) {
	if start < 0 || start > end || end > len(f.content) {
		return Dummy, fmt.Errorf("%w: [%d, %d) in %s (%d bytes)", ErrOutOfBounds, start, end, f.name, len(f.content))
	}

	if !f.isCharBoundary(start) || !f.isCharBoundary(end) {
		return Dummy, fmt.Errorf("%w: [%d, %d) in %s", ErrNotCharBoundary, start, end, f.name)
	}

	rng := Range{Start: start, End: end}
	if span, ok := f.seen[rng]; ok {
		return span, nil
	}

	span := f.owner.alloc(f.index, rng)
	f.seen[rng] = span

	return span, nil
}

// RangeOf returns the byte range span points at, or false if span was not
// interned by this file.
func (f *FileMap) RangeOf(span Span) (Range, bool) {
	e, ok := f.owner.get(span)
	if !ok || e.file != f.index {
		return Range{}, false
	}

	return e.rng, true
}

// Lookup returns the text span points at, or false if span was not interned
// by this file.
//
// Lookup panics if the span table holds a range that does not fit the content,
// at that point the registry is corrupt and nothing it says can be trusted.
func (f *FileMap) Lookup(span Span) (string, bool) {
	rng, ok := f.RangeOf(span)
	if !ok {
		return "", false
	}

	if rng.Start < 0 || rng.Start > rng.End || rng.End > len(f.content) {
		panic(fmt.Sprintf("FileMap %s thinks it contains %s but its range %s doesn't point to anything valid", f.name, span, rng))
	}

	return f.content[rng.Start:rng.End], true
}

// Merge returns the span covering both first and second, i.e. from the earliest
// start to the latest end.
//
// Both spans must have been interned by this file, Merge panics otherwise.
func (f *FileMap) Merge(first, second Span) Span {
	r1, ok := f.RangeOf(first)
	if !ok {
		panic(fmt.Sprintf("FileMap.Merge: %s does not belong to %s, can only merge spans from the same FileMap", first, f.name))
	}

	r2, ok := f.RangeOf(second)
	if !ok {
		panic(fmt.Sprintf("FileMap.Merge: %s does not belong to %s, can only merge spans from the same FileMap", second, f.name))
	}

	return f.Intern(min(r1.Start, r2.Start), max(r1.End, r2.End))
}

// RegisterTokens interns the range of every raw token and returns the resulting
// tokens in the same order.
//
// The rules of [FileMap.Intern] apply to every range.
func (f *FileMap) RegisterTokens(raw []Raw) []Token {
	tokens := make([]Token, 0, len(raw))
	for _, r := range raw {
		tokens = append(tokens, New(f.Intern(r.Start, r.End), r.Kind))
	}

	return tokens
}

// Position converts a byte offset in the file into a line and column [syntax.Position]
// pointing at a single character.
//
// Offsets past the end of the content are clamped to it.
func (f *FileMap) Position(offset int) syntax.Position {
	offset = max(min(offset, len(f.content)), 0)
	line := f.line(offset)
	col := offset - f.lines[line] + 1

	return syntax.Position{
		Name:     f.name,
		Offset:   offset,
		Line:     line + 1,
		StartCol: col,
		EndCol:   col,
	}
}

// Line returns the text of the line containing offset, without its terminator.
func (f *FileMap) Line(offset int) string {
	offset = max(min(offset, len(f.content)), 0)
	idx := f.line(offset)
	start := f.lines[idx]

	text := f.content[start:]
	if end := strings.IndexByte(text, '\n'); end != -1 {
		text = text[:end]
	}

	return strings.TrimSuffix(text, "\r")
}

// line returns the 0 indexed line containing offset, building the line table
// the first time it's needed.
func (f *FileMap) line(offset int) int {
	if f.lines == nil {
		f.lines = []int{0}
		for i := range len(f.content) {
			if f.content[i] == '\n' {
				f.lines = append(f.lines, i+1)
			}
		}
	}

	idx, found := slices.BinarySearch(f.lines, offset)
	if !found {
		idx--
	}

	return idx
}

// isCharBoundary reports whether offset is the start of a UTF-8 character or the
// very end of the content.
func (f *FileMap) isCharBoundary(offset int) bool {
	return offset == len(f.content) || utf8.RuneStart(f.content[offset])
}
