package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/metrics"
	"git.home.luguber.info/inful/blogsmith/internal/server"
	"git.home.luguber.info/inful/blogsmith/internal/site"
	"git.home.luguber.info/inful/blogsmith/internal/state"
	"git.home.luguber.info/inful/blogsmith/internal/watch"
)

// ServeCmd implements the 'serve' command: build once, serve the output
// directory and rebuild on content or config changes.
type ServeCmd struct {
	Port    int  `short:"p" help:"Override the configured listen port"`
	Drafts  bool `short:"D" help:"Include draft entries"`
	Future  bool `short:"F" help:"Include future-dated entries"`
	Metrics bool `help:"Expose Prometheus metrics on /metrics"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if s.Port != 0 {
		cfg.Serve.Port = s.Port
	}
	if s.Drafts {
		cfg.Publish.Drafts = true
	}
	if s.Future {
		cfg.Publish.Future = true
	}
	if s.Metrics {
		cfg.Serve.Metrics = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return runServe(ctx, cfg)
}

func runServe(ctx context.Context, cfg *config.Config) error {
	recorder := metrics.Recorder(metrics.NoopRecorder{})
	var metricsHandler http.Handler
	if cfg.Serve.Metrics {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		metricsHandler = metrics.HTTPHandler(reg)
	}

	gen, err := site.New(cfg)
	if err != nil {
		return err
	}
	gen.WithRecorder(recorder)

	store, err := state.Open(cfg.ResolvePath(cfg.State.Database))
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var mu sync.Mutex
	var lastReport *site.BuildReport

	// The debouncer and the periodic scheduler can tick at the same
	// moment; overlapping builds would race over the output directory.
	rebuild := serialize(func() {
		report, err := gen.Build(ctx)
		if err != nil {
			slog.Error("Rebuild failed", "error", err)
		}
		if report != nil {
			if recErr := store.Record(ctx, state.BuildRecord{
				ID:           report.BuildID,
				Started:      report.Started,
				Duration:     report.Duration,
				Outcome:      string(report.Outcome()),
				Pages:        report.Pages,
				Assets:       report.Assets,
				Held:         report.Held,
				Warnings:     len(report.Warnings),
				ManifestHash: report.ManifestHash,
			}); recErr != nil {
				slog.Warn("Failed to record build history", "error", recErr)
			}
			if err == nil {
				publishBuildEvent(cfg, report)
			}
			mu.Lock()
			lastReport = report
			mu.Unlock()
		}
	})

	rebuild()
	mu.Lock()
	initial := lastReport
	mu.Unlock()
	if !buildUsable(initial) {
		return fmt.Errorf("initial build did not complete")
	}

	// Watch local content; git sources only rebuild on the periodic tick.
	if !cfg.Content.IsGitSource() {
		roots := []string{cfg.ResolvePath(cfg.Content.Source), cfg.StaticDir()}
		if cfg.Theme.Layouts != "" {
			roots = append(roots, cfg.ResolvePath(cfg.Theme.Layouts))
		}
		watcher, err := watch.NewWatcher(roots...)
		if err != nil {
			return fmt.Errorf("start file watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		go watcher.Run(ctx)

		debouncer := watch.NewDebouncer(0, 0)
		go debouncer.Run(ctx, watcher.Events(), func() {
			slog.Info("Content changed, rebuilding")
			rebuild()
		})
	}

	if interval := cfg.Serve.RebuildInterval.Std(); interval > 0 {
		scheduler, err := watch.NewScheduler()
		if err != nil {
			return err
		}
		if _, err := scheduler.SchedulePeriodicRebuild(interval, func() {
			slog.Info("Periodic rebuild tick")
			rebuild()
		}); err != nil {
			return err
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				slog.Warn("Failed to stop scheduler", "error", err)
			}
		}()
	}

	health := func() server.Health {
		mu.Lock()
		defer mu.Unlock()
		h := server.Health{Status: "ok"}
		if lastReport != nil {
			h.LastBuildID = lastReport.BuildID
			h.LastOutcome = string(lastReport.Outcome())
			h.Pages = lastReport.Pages
		}
		return h
	}

	srv := server.New(cfg.Serve.Port, cfg.OutputDir(), health, metricsHandler)
	return srv.Run(ctx)
}

// serialize wraps fn so concurrent callers run it one at a time.
func serialize(fn func()) func() {
	var mu sync.Mutex
	return func() {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}
}

// buildUsable reports whether a build produced output worth serving.
// Failed and canceled builds leave no trustworthy output tree.
func buildUsable(report *site.BuildReport) bool {
	if report == nil {
		return false
	}
	switch report.Outcome() {
	case site.OutcomeSuccess, site.OutcomeWarning:
		return true
	default:
		return false
	}
}
