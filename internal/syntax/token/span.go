package token

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [FileMap.TryIntern], [FileMap.Intern] panics with them.
var (
	ErrOutOfBounds     = errors.New("range lies outside the file content")
	ErrNotCharBoundary = errors.New("range does not lie on a character boundary")
)

// Span is an opaque handle to a byte range inside one file of a [CodeMap].
//
// Spans are only meaningful to the CodeMap that produced them, looking one up anywhere
// else is a bug. Two spans are equal exactly when they were interned for the same range
// of the same file, so a Span is a fine map key on its own.
//
// The zero value is [Dummy].
type Span struct {
	id    uint32 // Sequence number in the owning CodeMap, 1 indexed
	file  uint32 // Index of the interning FileMap in its CodeMap, 1 indexed
	owner uint32 // Generation of the owning CodeMap
}

// Dummy is the span used where no real location is available, e.g. tokens made up
// in tests. It never equals an interned span and must not be looked up.
var Dummy = Span{}

// ID returns the span's registry-wide identifier, 0 for [Dummy].
//
// IDs are unique across every file in the owning [CodeMap] and are intended
// for serialisation only.
func (s Span) ID() uint32 {
	return s.id
}

// IsDummy reports whether s is the [Dummy] span.
func (s Span) IsDummy() bool {
	return s == Dummy
}

// String implements [fmt.Stringer] for a [Span].
func (s Span) String() string {
	if s.IsDummy() {
		return "Span(dummy)"
	}

	return fmt.Sprintf("Span(%d)", s.id)
}

// Range is a half open interval of byte offsets [Start, End).
type Range struct {
	Start int // First byte in the range
	End   int // One past the last byte in the range
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether offset falls within the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// String implements [fmt.Stringer] for a [Range].
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
