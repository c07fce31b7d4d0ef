// Package token provides the lexical tokens of a Pascal source file along with the span
// registry ([CodeMap] and [FileMap]) that ties every token back to the bytes it came from.
//
// Tokens are produced in two phases: the scanner walks raw text and emits [Raw] triples
// of (kind, start, end) with no knowledge of the registry, then a [FileMap] registers
// that batch, interning each byte range as a [Span].
package token

import (
	"fmt"
	"slices"
	"strconv"
)

// Kind is a classified run of source text, the [Type] of the token plus any literal
// payload it carries.
//
// Only the payload field matching Type is meaningful, the rest are left zero so that
// two Kinds can be compared with ==.
type Kind struct {
	Text  string  // Identifier or QuotedString text
	Float float64 // Decimal value
	Int   uint64  // Integer value
	Type  Type    // The category of token
}

// Literal is the set of Go values that convert directly into a [Kind] with [From].
type Literal interface {
	int | uint | uint64 | float64 | string | Type
}

// From builds a [Kind] from a Go value:
//
//   - integers become an Integer
//   - float64 becomes a Decimal
//   - string becomes an Identifier
//   - a [Type] becomes a Kind with no payload, e.g. From(Dot)
//
// From panics if given a negative int, integer literals are unsigned.
func From[T Literal](value T) Kind {
	switch v := any(value).(type) {
	case int:
		if v < 0 {
			panic(fmt.Sprintf("token.From: negative integer literal %d", v))
		}

		return Kind{Type: Integer, Int: uint64(v)}
	case uint:
		return Kind{Type: Integer, Int: uint64(v)}
	case uint64:
		return Kind{Type: Integer, Int: v}
	case float64:
		return Kind{Type: Decimal, Float: v}
	case string:
		return Kind{Type: Identifier, Text: v}
	case Type:
		return Kind{Type: v}
	default:
		// Unreachable thanks to the Literal constraint
		panic(fmt.Sprintf("token.From: unhandled literal type %T", value))
	}
}

// Quoted builds a QuotedString [Kind]. The scanner does not produce these yet.
func Quoted(text string) Kind {
	return Kind{Type: QuotedString, Text: text}
}

// Value returns the literal payload of the kind, or nil for kinds that
// have none.
func (k Kind) Value() any {
	switch k.Type {
	case Integer:
		return k.Int
	case Decimal:
		return k.Float
	case Identifier, QuotedString:
		return k.Text
	default:
		return nil
	}
}

// String implements [fmt.Stringer] for a [Kind].
//
//	From(1).String()     // Integer(1)
//	From("foo").String() // Identifier("foo")
//	From(Dot).String()   // Dot
func (k Kind) String() string {
	switch k.Type {
	case Integer:
		return "Integer(" + strconv.FormatUint(k.Int, 10) + ")"
	case Decimal:
		return "Decimal(" + strconv.FormatFloat(k.Float, 'g', -1, 64) + ")"
	case Identifier, QuotedString:
		return k.Type.String() + "(" + strconv.Quote(k.Text) + ")"
	default:
		return k.Type.String()
	}
}

// Token is a classified, located unit of source text.
//
// Tokens are values, once made they are never changed.
type Token struct {
	Kind Kind // What the token is
	Span Span // Where it came from
}

// New returns a [Token] pairing span with kind.
func New(span Span, kind Kind) Token {
	return Token{Kind: kind, Span: span}
}

// String implements [fmt.Stringer] for a [Token].
func (t Token) String() string {
	return fmt.Sprintf("<Token::%s span=%d>", t.Kind, t.Span.ID())
}

// Is reports whether the token is of any of the provided [Type]s.
func (t Token) Is(types ...Type) bool {
	return slices.Contains(types, t.Kind.Type)
}

// Raw is a token as the scanner sees it, a [Kind] and the half open byte
// range [Start, End) it occupies, before it has been registered with a [FileMap].
type Raw struct {
	Kind  Kind // What the token is
	Start int  // Byte offset from the start of the source to the start of the token
	End   int  // Byte offset from the start of the source to the end of the token
}

// String implements [fmt.Stringer] for a [Raw] token.
func (r Raw) String() string {
	return fmt.Sprintf("<Token::%s start=%d, end=%d>", r.Kind, r.Start, r.End)
}
