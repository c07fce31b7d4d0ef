package scanner

import (
	"errors"
	"testing"

	"go.followtheprocess.codes/pasta/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

func TestSkipComment(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Text to skip a comment in
		want int    // Expected number of bytes skipped
	}{
		{name: "line comment", src: "// foo bar { baz }\n 1234", want: 19},
		{name: "curly comment", src: "{ baz \n 1234} hello", want: 13},
		{name: "paren comment", src: "(* Hello World *) asd", want: 17},
		{name: "not a comment", src: "hello (* world *)", want: 0},
		{name: "leading whitespace", src: "   (* *) 123", want: 0},
		{name: "empty", src: "", want: 0},
		{name: "empty curly", src: "{}x", want: 2},
		{name: "empty paren", src: "(**)x", want: 4},
		{name: "opener star is not a closer", src: "(*)x*)", want: 6},
		{name: "no nesting", src: "{ a { b } c }", want: 9},
		{name: "unterminated line", src: "// no newline", want: 13},
		{name: "unterminated curly", src: "{ never closed", want: 14},
		{name: "unterminated paren", src: "(* never closed *", want: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, skipComment(tt.src), tt.want)
		})
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Text to skip in
		want int    // Expected number of bytes skipped
	}{
		{name: "whitespace", src: " \t\n\r123", want: 4},
		{name: "nothing", src: "123", want: 0},
		{name: "whitespace then comment", src: "   (* *) 123", want: 9},
		{name: "comment then whitespace", src: "{ a }\n\n x", want: 8},
		{name: "interleaved", src: " // a\n { b } (* c *)\t{d}x", want: 24},
		{name: "everything", src: "  { all of it ", want: 14},
		{name: "unicode whitespace", src: "\u00a0\u2003x", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, skip(tt.src), tt.want)
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name   string     // Name of the test case
		src    string     // Text to read a number from
		want   token.Kind // Expected kind
		length int        // Expected length in bytes
	}{
		{name: "integer", src: "1234", want: token.From(1234), length: 4},
		{name: "decimal", src: "123.4", want: token.From(123.4), length: 5},
		{name: "trailing text", src: "123.4asdf", want: token.From(123.4), length: 5},
		{name: "second dot", src: "12.3.456", want: token.From(12.3), length: 4},
		{name: "trailing dot", src: "7.", want: token.From(7.0), length: 2},
		{name: "zero", src: "0", want: token.From(0), length: 1},
		{name: "max", src: "18446744073709551615", want: token.From(uint64(18446744073709551615)), length: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, length, err := number(tt.src)
			test.Ok(t, err)
			test.Equal(t, got, tt.want)
			test.Equal(t, length, tt.length)
		})
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Text to read a number from
	}{
		{name: "letters", src: "asdfghj"},
		{name: "empty", src: ""},
		{name: "overflow", src: "18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := number(tt.src)
			test.Err(t, err)
		})
	}
}

func TestIdent(t *testing.T) {
	tests := []struct {
		name   string // Name of the test case
		src    string // Text to read an identifier from
		want   string // Expected identifier
		length int    // Expected length in bytes
	}{
		{name: "single letter", src: "F", want: "F", length: 1},
		{name: "word", src: "Foo", want: "Foo", length: 3},
		{name: "underscore", src: "Foo_bar", want: "Foo_bar", length: 7},
		{name: "stops at punctuation", src: "Foo.bar", want: "Foo", length: 3},
		{name: "digits after the start", src: "a1b2 c", want: "a1b2", length: 4},
		{name: "keywords are identifiers", src: "begin end", want: "begin", length: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, length, err := ident(tt.src)
			test.Ok(t, err)
			test.Equal(t, got, token.From(tt.want))
			test.Equal(t, length, tt.length)
		})
	}
}

func TestIdentErrors(t *testing.T) {
	_, _, err := ident("7Foo_bar")
	test.True(t, errors.Is(err, errLeadingDigit), test.Context("got %v", err))

	_, _, err = ident(".Foo_bar")
	test.True(t, errors.Is(err, errNoMatch), test.Context("got %v", err))

	_, _, err = ident("")
	test.True(t, errors.Is(err, ErrUnexpectedEOF), test.Context("got %v", err))
}

func TestTakeWhile(t *testing.T) {
	text, length, err := takeWhile("aaab", func(r rune) bool { return r == 'a' })
	test.Ok(t, err)
	test.Equal(t, text, "aaa")
	test.Equal(t, length, 3)

	text, length, err = takeWhile("ééx", func(r rune) bool { return r == 'é' })
	test.Ok(t, err)
	test.Equal(t, text, "éé")
	test.Equal(t, length, 4)

	_, _, err = takeWhile("baaa", func(r rune) bool { return r == 'a' })
	test.True(t, errors.Is(err, errNoMatch))

	_, _, err = takeWhile("", func(r rune) bool { return true })
	test.True(t, errors.Is(err, errNoMatch))
}
