package token

// Type is the lexical category of a token, the tag of a [Kind].
type Type int

//go:generate stringer -type Type -linecomment
const (
	Invalid      Type = iota // Invalid
	Integer                  // Integer
	Decimal                  // Decimal
	Identifier               // Identifier
	QuotedString             // QuotedString
	Asterisk                 // Asterisk
	At                       // At
	Caret                    // Caret
	CloseParen               // CloseParen
	CloseSquare              // CloseSquare
	Colon                    // Colon
	Dot                      // Dot
	End                      // End
	Equals                   // Equals
	Minus                    // Minus
	OpenParen                // OpenParen
	OpenSquare               // OpenSquare
	Plus                     // Plus
	Semicolon                // Semicolon
	Slash                    // Slash
)

// HasPayload reports whether tokens of this type carry a literal value.
func (t Type) HasPayload() bool {
	switch t {
	case Integer, Decimal, Identifier, QuotedString:
		return true
	default:
		return false
	}
}

// MarshalText implements [encoding.TextMarshaler] for [Type].
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
