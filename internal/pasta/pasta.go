// Package pasta implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package pasta

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/pasta/internal/syntax"
	"go.followtheprocess.codes/pasta/internal/syntax/scanner"
	"go.followtheprocess.codes/pasta/internal/syntax/token"
)

// ErrLex is returned (wrapped) when one or more source files could not be tokenized, the
// details having already been reported to the [syntax.ErrorHandler].
var ErrLex = errors.New("lexical errors")

// Pasta represents the pasta program.
type Pasta struct {
	stdin  io.Reader   // Interactive prompts read from here
	stdout io.Writer   // Normal program output is written here
	stderr io.Writer   // Logs and errors are written here
	logger *log.Logger // The logger for the application
}

// New returns a new [Pasta].
func New(debug bool, stdin io.Reader, stdout, stderr io.Writer) Pasta {
	return Pasta{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: newLogger(debug, stderr),
	}
}

// lexed is a source file that has been read and tokenized but not yet
// registered with a [token.CodeMap].
type lexed struct {
	err     error       // The lexical error, if any
	path    string      // Path to the file
	content string      // The full source text
	raw     []token.Raw // Tokens, nil if err != nil
}

// lex reads and tokenizes the file at path.
//
// It touches no shared state so is safe to call concurrently. A lexical error is not
// returned but carried in the result, only failing to read the file is an error.
func lex(path string) (lexed, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return lexed{}, fmt.Errorf("could not read %s: %w", path, err)
	}

	raw, lexErr := scanner.Tokenize(string(content))

	return lexed{
		path:    path,
		content: string(content),
		raw:     raw,
		err:     lexErr,
	}, nil
}

// register inserts a lexed file into codemap and registers its tokens.
//
// If the file failed to lex, the returned diagnostic is non-nil and tokens
// is empty.
func register(codemap *token.CodeMap, src lexed) (*token.FileMap, []token.Token, *syntax.Diagnostic) {
	file := codemap.InsertFile(src.path, src.content)

	if src.err != nil {
		diag := diagnose(file, src.err)
		return file, nil, &diag
	}

	return file, file.RegisterTokens(src.raw), nil
}

// diagnose turns a tokenizer error into a [syntax.Diagnostic] pointing into file.
func diagnose(file *token.FileMap, err error) syntax.Diagnostic {
	var located *scanner.LocatedError
	if !errors.As(err, &located) {
		return syntax.Diagnostic{Msg: err.Error(), Position: file.Position(0)}
	}

	return syntax.Diagnostic{
		Msg:      located.Err.Error(),
		Position: file.Position(located.Offset),
		Excerpt:  file.Line(located.Offset),
	}
}
