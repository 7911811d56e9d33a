// Package commands holds the kong subcommand implementations for the
// blogsmith CLI.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogsmith/internal/config"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition with global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" help:"Build the site into the output directory"`
	Serve  ServeCmd  `cmd:"" help:"Build, serve locally and rebuild on changes"`
	Init   InitCmd   `cmd:"" help:"Initialize a new site configuration"`
	New    NewCmd    `cmd:"" help:"Create a new content entry"`
	Check  CheckCmd  `cmd:"" help:"Verify internal links in the built output"`
	Builds BuildsCmd `cmd:"" help:"Show recent build history"`
}

// AfterApply runs after flag parsing; sets up logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}
