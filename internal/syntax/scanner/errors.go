package scanner

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when the scanner needs another character but
// the input has run out.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

var (
	// errNoMatch is the offset-agnostic "nothing here" condition from the
	// low level matching helpers.
	errNoMatch = errors.New("no matches")

	// errLeadingDigit is returned when asked for an identifier that starts
	// with a number.
	errLeadingDigit = errors.New("identifiers can't start with a number")
)

// UnknownCharError is returned when a character matches none of the lexical rules.
type UnknownCharError struct {
	Char rune // The offending character
}

// Error implements the error interface for [UnknownCharError].
func (e *UnknownCharError) Error() string {
	return fmt.Sprintf("unknown character %q", e.Char)
}

// LocatedError is a lexical error pinned to the byte offset in the source at
// which the tokenizer was positioned when it happened.
//
// Every error returned by [Tokenize] and [Tokenizer.Next] is a *LocatedError, the
// underlying cause is available through [errors.Unwrap], [errors.Is] and [errors.As].
type LocatedError struct {
	Err    error  // The underlying cause
	Msg    string // What the tokenizer was trying to do
	Offset int    // Byte offset in the source
}

// Error implements the error interface for [LocatedError].
func (e *LocatedError) Error() string {
	return fmt.Sprintf("%s at %d: %v", e.Msg, e.Offset, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LocatedError) Unwrap() error {
	return e.Err
}
