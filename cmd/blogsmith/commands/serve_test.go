package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/site"
	_ "git.home.luguber.info/inful/blogsmith/internal/theme/themes/meadow"
)

func serveFixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	postsDir := filepath.Join(dir, "content", "posts")
	require.NoError(t, os.MkdirAll(postsDir, 0o755))
	post := `---
title: First
date: 2024-01-02T00:00:00Z
---

Body.
`
	require.NoError(t, os.WriteFile(filepath.Join(postsDir, "first.md"), []byte(post), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))

	cfg := &config.Config{BaseDir: dir}
	cfg.Site.Title = "Serve Test"
	cfg.Content.Source = "./content"
	cfg.Content.Static = "./static"
	cfg.Theme.Name = "meadow"
	cfg.Output.Directory = "./public"
	cfg.Output.Clean = true
	return cfg
}

// Watcher and scheduler ticks share one build entry point; concurrent
// ticks must queue rather than overlap on the output directory.
func TestConcurrentRebuildTicksAreSerialized(t *testing.T) {
	cfg := serveFixtureConfig(t)

	gen, err := site.New(cfg)
	require.NoError(t, err)

	errCh := make(chan error, 64)
	rebuild := serialize(func() {
		report, err := gen.Build(context.Background())
		if err != nil {
			errCh <- err
			return
		}
		if !buildUsable(report) {
			errCh <- fmt.Errorf("build outcome %s", report.Outcome())
		}
	})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 5; i++ {
				rebuild()
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// The served tree is intact after the last build.
	_, err = os.Stat(filepath.Join(cfg.OutputDir(), "index.html"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.OutputDir(), "posts", "first", "index.html"))
	require.NoError(t, err)
}

func TestBuildUsable(t *testing.T) {
	require.False(t, buildUsable(nil))
	require.True(t, buildUsable(&site.BuildReport{}))
	require.True(t, buildUsable(&site.BuildReport{
		Warnings: []*site.StageError{{Kind: site.StageErrorWarning, Stage: "assets", Err: os.ErrNotExist}},
	}))
	require.False(t, buildUsable(&site.BuildReport{
		Errors: []*site.StageError{{Kind: site.StageErrorFatal, Stage: "load", Err: os.ErrInvalid}},
	}))
	require.False(t, buildUsable(&site.BuildReport{
		Errors: []*site.StageError{{Kind: site.StageErrorCanceled, Stage: "render", Err: context.Canceled}},
	}))
}
