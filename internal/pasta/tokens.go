package pasta

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.followtheprocess.codes/pasta/internal/format"
	"go.followtheprocess.codes/pasta/internal/syntax"
	"go.followtheprocess.codes/pasta/internal/syntax/token"
)

// TokensOptions are the options passed to the tokens subcommand.
type TokensOptions struct {
	// File is the Pascal source file to tokenize, if empty the user is asked
	// to pick one from the current directory.
	File string

	// Format is the output format, one of [format.Names].
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the TokensOptions is valid, returning an error
// if it's not.
//
// nil means the options are valid.
func (t TokensOptions) Validate() error {
	if _, err := format.Get(t.Format); err != nil {
		return fmt.Errorf("invalid option for --format: %w", err)
	}

	return nil
}

// Tokens implements the tokens subcommand.
//
// The file is read, inserted into a fresh [token.CodeMap], tokenized and registered, then
// written to stdout in the requested format.
func (p Pasta) Tokens(ctx context.Context, handler syntax.ErrorHandler, options TokensOptions) error {
	logger := p.logger.Prefixed("tokens")

	if err := options.Validate(); err != nil {
		return err
	}

	exporter, err := format.Get(options.Format)
	if err != nil {
		return err
	}

	path := options.File
	if path == "" {
		logger.Debug("No file given, picking one")

		path, err = p.pick(ctx, ".")
		if err != nil {
			return err
		}
	}

	logger = logger.With(slog.String("file", path), slog.String("format", options.Format))

	start := time.Now()

	src, err := lex(path)
	if err != nil {
		return err
	}

	file, tokens, diag := register(token.NewCodeMap(), src)
	if diag != nil {
		handler(*diag)
		return fmt.Errorf("%w in %s", ErrLex, path)
	}

	logger.Debug(
		"Tokenized file",
		slog.Int("tokens", len(tokens)),
		slog.Int("bytes", len(file.Content())),
		slog.Duration("took", time.Since(start)),
	)

	exported, err := format.New(file, tokens)
	if err != nil {
		return fmt.Errorf("could not build %s output: %w", options.Format, err)
	}

	if err := exporter.Export(p.stdout, exported); err != nil {
		return fmt.Errorf("could not export tokens as %s: %w", options.Format, err)
	}

	return nil
}
