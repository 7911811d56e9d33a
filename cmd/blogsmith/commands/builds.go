package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/state"
)

// BuildsCmd implements the 'builds' command: list recent build history.
type BuildsCmd struct {
	Limit int `short:"n" help:"Number of builds to show" default:"10"`
}

func (b *BuildsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := state.Open(cfg.ResolvePath(cfg.State.Database))
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.Recent(context.Background(), b.Limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No build history yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tOUTCOME\tPAGES\tASSETS\tHELD\tWARN\tDURATION\tMANIFEST")
	for _, rec := range records {
		manifest := rec.ManifestHash
		if len(manifest) > 12 {
			manifest = manifest[:12]
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			rec.Started.Format("2006-01-02 15:04:05"),
			rec.Outcome, rec.Pages, rec.Assets, rec.Held, rec.Warnings,
			rec.Duration.Round(time.Millisecond), manifest)
	}
	return w.Flush()
}
