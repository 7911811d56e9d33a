package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/events"
	"git.home.luguber.info/inful/blogsmith/internal/site"
	"git.home.luguber.info/inful/blogsmith/internal/state"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Override the configured output directory"`
	Drafts bool   `short:"D" help:"Include draft entries"`
	Future bool   `short:"F" help:"Include future-dated entries"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyBuildFlags(cfg, b)

	report, err := RunBuild(context.Background(), cfg)
	if err != nil {
		return err
	}
	if report.Outcome() == site.OutcomeWarning {
		slog.Warn("Build finished with warnings", "warnings", len(report.Warnings))
	}
	return nil
}

func applyBuildFlags(cfg *config.Config, b *BuildCmd) {
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.Drafts {
		cfg.Publish.Drafts = true
	}
	if b.Future {
		cfg.Publish.Future = true
	}
}

// RunBuild executes one build, persists the result to the build history
// and emits a build event when one is configured. Serve mode reuses it
// for rebuilds.
func RunBuild(ctx context.Context, cfg *config.Config) (*site.BuildReport, error) {
	gen, err := site.New(cfg)
	if err != nil {
		return nil, err
	}

	store, err := state.Open(cfg.ResolvePath(cfg.State.Database))
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	previousHash, err := store.LastManifestHash(ctx)
	if err != nil {
		slog.Warn("Failed to read previous manifest hash", "error", err)
	}

	report, buildErr := gen.Build(ctx)

	if report != nil {
		if err := store.Record(ctx, state.BuildRecord{
			ID:           report.BuildID,
			Started:      report.Started,
			Duration:     report.Duration,
			Outcome:      string(report.Outcome()),
			Pages:        report.Pages,
			Assets:       report.Assets,
			Held:         report.Held,
			Warnings:     len(report.Warnings),
			ManifestHash: report.ManifestHash,
		}); err != nil {
			slog.Warn("Failed to record build history", "error", err)
		}
	}

	if buildErr != nil {
		return report, buildErr
	}

	if previousHash != "" {
		if previousHash == report.ManifestHash {
			slog.Info("Output unchanged since previous build")
		} else {
			slog.Info("Output changed since previous build")
		}
	}

	publishBuildEvent(cfg, report)
	return report, nil
}

func publishBuildEvent(cfg *config.Config, report *site.BuildReport) {
	if cfg.Events.NATSURL == "" {
		return
	}

	pub, err := events.NewPublisher(cfg.Events.NATSURL, cfg.Events.Subject)
	if err != nil {
		slog.Warn("Failed to connect build event publisher", "error", err)
		return
	}
	defer pub.Close()

	if err := pub.PublishBuildCompleted(events.BuildCompleted{
		BuildID:      report.BuildID,
		Outcome:      string(report.Outcome()),
		Pages:        report.Pages,
		ManifestHash: report.ManifestHash,
		DurationMS:   report.Duration.Milliseconds(),
		Timestamp:    time.Now().UTC(),
	}); err != nil {
		slog.Warn("Failed to publish build event", "error", err)
	}
}
