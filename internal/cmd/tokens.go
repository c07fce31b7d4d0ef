package cmd

import (
	"context"
	"strings"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/pasta/internal/format"
	"go.followtheprocess.codes/pasta/internal/pasta"
	"go.followtheprocess.codes/pasta/internal/syntax"
)

const tokensLong = `
Tokenize a single Pascal source file and print the tokens, along with
the span each one was interned as and the bytes it covers.

If no file is given, you'll be asked to pick one of the Pascal source
files under the current directory.
`

// tokens returns the tokens subcommand.
func tokens() (*cli.Command, error) {
	var options pasta.TokensOptions

	return cli.New(
		"tokens",
		cli.Short("Print the tokens in a Pascal file"),
		cli.Long(tokensLong),
		cli.Arg(&options.File, "file", "Path to the Pascal file", cli.ArgDefault("")),
		cli.Flag(
			&options.Format,
			"format",
			'f',
			"Output format, one of ("+strings.Join(format.Names(), "|")+")",
			cli.FlagDefault("text"),
		),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := pasta.New(options.Debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Tokens(ctx, syntax.PrettyConsoleHandler(cmd.Stderr()), options)
		}),
	)
}
