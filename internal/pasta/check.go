package pasta

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/pasta/internal/syntax"
	"go.followtheprocess.codes/pasta/internal/syntax/token"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand.
//
// Files are tokenized concurrently but registered with the shared [token.CodeMap] one at
// a time, in path order, so span ids are deterministic.
func (p Pasta) Check(ctx context.Context, handler syntax.ErrorHandler, options CheckOptions) error {
	logger := p.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	paths, err := sources(options.Path)
	if err != nil {
		return err
	}

	logger.Debug("Checking Pascal files given by path", slog.Int("number", len(paths)))

	start := time.Now()

	results := make([]lexed, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := lex(path)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	codemap := token.NewCodeMap()

	var (
		diagnostics []syntax.Diagnostic
		valid       []string
		count       int
	)

	for _, result := range results {
		_, tokens, diag := register(codemap, result)
		if diag != nil {
			diagnostics = append(diagnostics, *diag)
			continue
		}

		count += len(tokens)
		valid = append(valid, result.path)
	}

	logger.Debug(
		"Checked files",
		slog.Int("files", len(paths)),
		slog.Int("tokens", count),
		slog.Int("errors", len(diagnostics)),
		slog.Duration("took", time.Since(start)),
	)

	for _, path := range valid {
		msg.Fsuccess(p.stdout, "%s is valid", path)
	}

	if len(diagnostics) == 0 {
		return nil
	}

	slices.SortFunc(diagnostics, func(a, b syntax.Diagnostic) int {
		return syntax.ComparePosition(a.Position, b.Position)
	})

	for _, diag := range diagnostics {
		handler(diag)
	}

	return fmt.Errorf("%w in %d of %d files", ErrLex, len(diagnostics), len(paths))
}
