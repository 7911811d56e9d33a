package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/metrics"
	"git.home.luguber.info/inful/blogsmith/internal/theme"
)

// Stage names, in pipeline order.
const (
	stagePrepareName = "prepare"
	stageFetchName   = "fetch"
	stageLoadName    = "load"
	stageStylesName  = "styles"
	stageRenderName  = "render"
	stageIndexesName = "indexes"
	stageFeedsName   = "feeds"
	stageAssetsName  = "assets"
	stageWriteName   = "write"
	stageVerifyName  = "verify"
)

// Generator orchestrates the build pipeline for one site.
type Generator struct {
	cfg      *config.Config
	theme    theme.Theme
	recorder metrics.Recorder
}

// New creates a Generator, resolving the configured theme against the
// registry.
func New(cfg *config.Config) (*Generator, error) {
	th, err := theme.Lookup(cfg.Theme.Name)
	if err != nil {
		return nil, fmt.Errorf("resolve theme: %w", err)
	}
	return &Generator{cfg: cfg, theme: th, recorder: metrics.NoopRecorder{}}, nil
}

// WithRecorder injects a metrics recorder (serve mode wires Prometheus).
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r != nil {
		g.recorder = r
	}
	return g
}

// Build runs the full pipeline and returns the build report. The report
// is non-nil even on failure so callers can persist partial results.
func (g *Generator) Build(ctx context.Context) (*BuildReport, error) {
	report := newBuildReport(uuid.NewString())
	bs := newBuildState(g.cfg, g.theme, report)

	slog.Info("Starting site build",
		"build_id", report.BuildID,
		"theme", g.theme.Name(),
		"output", g.cfg.OutputDir())

	err := runStages(ctx, bs, g.recorder, []namedStage{
		{stagePrepareName, stagePrepare},
		{stageFetchName, stageFetch},
		{stageLoadName, stageLoad},
		{stageStylesName, stageStyles},
		{stageRenderName, stageRender},
		{stageIndexesName, stageIndexes},
		{stageFeedsName, stageFeeds},
		{stageAssetsName, stageAssets},
		{stageWriteName, stageWrite},
		{stageVerifyName, stageVerify},
	})

	if bs.cleanupDir != "" {
		if rmErr := os.RemoveAll(bs.cleanupDir); rmErr != nil {
			slog.Warn("Failed to remove content workspace", "path", bs.cleanupDir, "error", rmErr)
		}
	}

	report.Duration = time.Since(report.Started)
	g.recorder.ObserveBuildDuration(report.Duration)
	g.recorder.SetPagesRendered(report.Pages)
	g.recorder.IncBuildOutcome(string(report.Outcome()))

	if err != nil {
		slog.Error("Build failed",
			"build_id", report.BuildID,
			"duration", report.Duration,
			"error", err)
		return report, err
	}

	slog.Info("Build complete",
		"build_id", report.BuildID,
		"duration", report.Duration,
		"pages", report.Pages,
		"assets", report.Assets,
		"held", report.Held,
		"warnings", len(report.Warnings),
		"manifest", report.ManifestHash[:12])
	return report, nil
}
