// Package cmd implements pasta's CLI.
package cmd

import (
	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the pasta CLI.
func Build() (*cli.Command, error) {
	return cli.New(
		"pasta",
		cli.Short("A tokenizer and span registry for Pascal source"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Dump the tokens in a file", "pasta tokens ./main.pas"),
		cli.Example("Dump the tokens in a file as JSON", "pasta tokens --format json ./main.pas"),
		cli.Example("Pick a file to tokenize interactively", "pasta tokens"),
		cli.Example("Check a file for lexical errors", "pasta check ./main.pas"),
		cli.Example("Check every Pascal file in a directory (recursively)", "pasta check ./src"),
		cli.SubCommands(tokens, check),
	)
}
