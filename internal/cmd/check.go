package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/pasta/internal/pasta"
	"go.followtheprocess.codes/pasta/internal/syntax"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a file, then this file alone is checked
for lexical errors.

If it is a directory, this directory is scanned recursively for all
files with a Pascal source extension ('.pas', '.pp', '.dpr', '.lpr', '.inc')
and every matching file is checked.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options pasta.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check Pascal files for lexical errors"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := pasta.New(options.Debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Check(ctx, syntax.PrettyConsoleHandler(cmd.Stderr()), options)
		}),
	)
}
