// Package scanner implements the tokenizer for Pascal source, turning raw text into
// a sequence of [token.Raw] triples of (kind, start, end).
//
// The tokenizer knows nothing about the span registry, its output is plain byte
// offsets into the text it was given. Registering those with a [token.FileMap] is
// up to the caller:
//
//	raw, err := scanner.Tokenize(file.Content())
//	if err != nil {
//		return err
//	}
//	tokens := file.RegisterTokens(raw)
//
// Scanning alternates between two phases. First anything insignificant (whitespace and
// the three forms of comment) is skipped, then the next run of characters is classified
// by its first character. There is no lookahead beyond the token being read.
package scanner

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.followtheprocess.codes/pasta/internal/syntax/token"
)

// comments are the opening and closing markers of each comment form in the order
// they're tried. Comments don't nest, the first matching closer ends the comment.
var comments = [...]struct {
	open  string
	close string
}{
	{open: "//", close: "\n"},
	{open: "{", close: "}"},
	{open: "(*", close: "*)"},
}

// Tokenizer reads one token at a time from a string of Pascal source.
type Tokenizer struct {
	rest   string // Input not yet consumed
	offset int    // Byte offset of rest in the original source
}

// New returns a [Tokenizer] positioned at the start of src.
func New(src string) *Tokenizer {
	return &Tokenizer{rest: src}
}

// Tokenize reads every token in src, stopping at the first lexical error.
//
// Any error returned is a *[LocatedError].
func Tokenize(src string) ([]token.Raw, error) {
	var tokens []token.Raw

	for tok, err := range New(src).All() {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// Offset returns the byte offset of the tokenizer in the original source.
func (t *Tokenizer) Offset() int {
	return t.offset
}

// Next skips any whitespace and comments and reads the next token.
//
// It returns false once the input is exhausted. On error the tokenizer does not
// advance, so calling Next again yields the same error.
func (t *Tokenizer) Next() (tok token.Raw, ok bool, err error) {
	t.chomp(skip(t.rest))

	if t.rest == "" {
		return token.Raw{}, false, nil
	}

	start := t.offset

	kind, length, err := Single(t.rest)
	if err != nil {
		return token.Raw{}, false, &LocatedError{
			Offset: t.offset,
			Msg:    "couldn't read the next token",
			Err:    err,
		}
	}

	t.chomp(length)

	return token.Raw{Kind: kind, Start: start, End: t.offset}, true, nil
}

// All returns an iterator over the remaining tokens. Iteration stops after the
// first error.
func (t *Tokenizer) All() iter.Seq2[token.Raw, error] {
	return func(yield func(token.Raw, error) bool) {
		for {
			tok, ok, err := t.Next()
			if err != nil {
				yield(token.Raw{}, err)
				return
			}

			if !ok || !yield(tok, nil) {
				return
			}
		}
	}
}

// chomp advances the tokenizer past n bytes of input.
func (t *Tokenizer) chomp(n int) {
	t.rest = t.rest[n:]
	t.offset += n
}

// Single classifies the token at the very start of src, returning its kind and
// its length in bytes. Leading whitespace is not skipped.
//
// Errors are not located, that's the job of the [Tokenizer].
func Single(src string) (token.Kind, int, error) {
	if src == "" {
		return token.Kind{}, 0, ErrUnexpectedEOF
	}

	char, _ := utf8.DecodeRuneInString(src)

	switch char {
	case '.':
		return token.From(token.Dot), 1, nil
	case '=':
		return token.From(token.Equals), 1, nil
	case '+':
		return token.From(token.Plus), 1, nil
	case '-':
		return token.From(token.Minus), 1, nil
	case '*':
		return token.From(token.Asterisk), 1, nil
	case '/':
		return token.From(token.Slash), 1, nil
	case '@':
		return token.From(token.At), 1, nil
	case '^':
		return token.From(token.Caret), 1, nil
	case '(':
		return token.From(token.OpenParen), 1, nil
	case ')':
		return token.From(token.CloseParen), 1, nil
	case '[':
		return token.From(token.OpenSquare), 1, nil
	case ']':
		return token.From(token.CloseSquare), 1, nil
	case ':':
		return token.From(token.Colon), 1, nil
	case ';':
		return token.From(token.Semicolon), 1, nil
	}

	switch {
	case isDigit(char):
		kind, length, err := number(src)
		if err != nil {
			return token.Kind{}, 0, fmt.Errorf("couldn't tokenize a number: %w", err)
		}

		return kind, length, nil
	case isIdentStart(char):
		kind, length, err := ident(src)
		if err != nil {
			return token.Kind{}, 0, fmt.Errorf("couldn't tokenize an identifier: %w", err)
		}

		return kind, length, nil
	default:
		return token.Kind{}, 0, &UnknownCharError{Char: char}
	}
}

// number reads an integer or decimal literal from the start of src.
//
// It takes digits and at most one '.', a second '.' ends the literal rather than
// being an error so "12.3.456" reads as Decimal(12.3) with ".456" left over.
func number(src string) (token.Kind, int, error) {
	seenDot := false

	text, length, err := takeWhile(src, func(r rune) bool {
		switch {
		case isDigit(r):
			return true
		case r == '.' && !seenDot:
			seenDot = true
			return true
		default:
			return false
		}
	})
	if err != nil {
		return token.Kind{}, 0, err
	}

	if seenDot {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Kind{}, 0, err
		}

		return token.From(value), length, nil
	}

	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return token.Kind{}, 0, err
	}

	return token.From(value), length, nil
}

// ident reads an identifier from the start of src.
func ident(src string) (token.Kind, int, error) {
	if src == "" {
		return token.Kind{}, 0, ErrUnexpectedEOF
	}

	if char, _ := utf8.DecodeRuneInString(src); isDigit(char) {
		return token.Kind{}, 0, errLeadingDigit
	}

	text, length, err := takeWhile(src, isIdent)
	if err != nil {
		return token.Kind{}, 0, err
	}

	// TODO: Recognise keywords here, for now 'begin', 'end' etc. are all Identifiers

	return token.From(text), length, nil
}

// skip returns the number of bytes of whitespace and comments at the start of src,
// in any interleaving.
func skip(src string) int {
	remaining := src

	for {
		ws := skipWhitespace(remaining)
		remaining = remaining[ws:]

		comment := skipComment(remaining)
		remaining = remaining[comment:]

		if ws+comment == 0 {
			return len(src) - len(remaining)
		}
	}
}

// skipWhitespace returns the length of the run of whitespace at the start of src.
func skipWhitespace(src string) int {
	_, length, err := takeWhile(src, unicode.IsSpace)
	if err != nil {
		return 0
	}

	return length
}

// skipComment returns the length of the comment at the very start of src, including
// both markers, or 0 if src doesn't start with one.
//
// An unterminated comment runs to the end of the input.
func skipComment(src string) int {
	for _, comment := range comments {
		if !strings.HasPrefix(src, comment.open) {
			continue
		}

		// The closer is searched for after the opener, so "(*)" does not close itself
		body := src[len(comment.open):]

		end := strings.Index(body, comment.close)
		if end == -1 {
			return len(src)
		}

		return len(comment.open) + end + len(comment.close)
	}

	return 0
}

// takeWhile returns the longest prefix of src whose characters all satisfy predicate,
// along with its length in bytes.
//
// It returns errNoMatch if not even the first character does.
func takeWhile(src string, predicate func(r rune) bool) (string, int, error) {
	length := len(src)

	for i, char := range src {
		if !predicate(char) {
			length = i
			break
		}
	}

	if length == 0 {
		return "", 0, errNoMatch
	}

	return src[:length], length, nil
}

// isDigit reports whether r is a valid ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isIdentStart reports whether r may begin an identifier.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdent reports whether r may appear in an identifier.
func isIdent(r rune) bool {
	return isIdentStart(r) || unicode.IsNumber(r)
}
