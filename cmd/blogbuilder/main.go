package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogbuilder/cmd/blogbuilder/commands"
	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("blogbuilder"),
		kong.Description("Compose blog theme and site configuration for the static-site generator."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := parser.Run(global, &cli); err != nil {
		berrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
