// Package syntaxtest provides syntax level test utilities.
package syntaxtest

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.followtheprocess.codes/pasta/internal/syntax/token"
)

// Tok builds a [token.Token] from a Go value with the dummy span, for tests that care
// about what a token is but not where it came from.
//
//	Tok("foo")       // Identifier("foo")
//	Tok(42)          // Integer(42)
//	Tok(token.Colon) // Colon
func Tok[T token.Literal](value T) token.Token {
	return token.New(token.Dummy, token.From(value))
}

// Kinds strips the spans from tokens, leaving just their kinds in order.
func Kinds(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}

	return kinds
}

// AllFilesWithExtension returns an iterator over all filepaths under
// root with the matching extension, recursively.
//
// A call to AllFilesWithExtension like this:
//
//	for file, err := range AllFilesWithExtension(".", ".pas") {
//	    // Loop body
//	}
//
// Is roughly equivalent to the following in bash:
//
//	for file in **/*.pas; do { # stuff }; done
func AllFilesWithExtension(root, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				yield("", walkErr)
				return fs.SkipAll
			}

			if d.Type().IsRegular() && filepath.Ext(d.Name()) == ext {
				if !yield(path, nil) {
					return fs.SkipAll
				}
			}

			return nil
		})
		// Only reachable if WalkDir fails outside the callback
		if err != nil {
			yield("", err)
		}
	}
}
