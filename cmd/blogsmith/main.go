package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogsmith/cmd/blogsmith/commands"
	_ "git.home.luguber.info/inful/blogsmith/internal/theme/themes/meadow"
)

// version is set via -ldflags at release time.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("blogsmith"),
		kong.Description("Static blog generator"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
