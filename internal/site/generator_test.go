package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsmith/internal/config"
	_ "git.home.luguber.info/inful/blogsmith/internal/theme/themes/meadow"
)

// fixtureSite writes a small but complete site and returns its config.
func fixtureSite(t *testing.T, extra map[string]string) *config.Config {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"content/about.md":           "---\ntitle: About\n---\n{{< profile >}}\n",
		"content/posts/first.md":     "---\ntitle: First Post\ndate: 2024-01-02\ntags: [go]\ndescription: The start.\n---\nHello **world**.\n",
		"content/posts/second.md":    "---\ntitle: Second Post\ndate: 2024-03-04\ntags: [go, css]\n---\nMore words.\n",
		"content/posts/draft.md":     "---\ntitle: Not Ready\ndate: 2024-02-01\ndraft: true\n---\nShh.\n",
		"content/posts/upcoming.md":  "---\ntitle: Upcoming\ndate: 2099-01-01\n---\nLater.\n",
		"static/images/logo.png":     "not-really-a-png",
		"config.yaml": `site:
  title: Fixture Blog
  description: A test site
  base_url: https://example.com
  author:
    name: Jane Doe
    bio: Test author.
theme:
  name: meadow
  tokens:
    - token: primary-color
      value: "#88C0D0"
  dark:
    - token: background
      value: "#2E3440"
  rules:
    - ".custom { color: var(--primary-color); }"
output:
  directory: ./public
  clean: true
`,
	}
	for rel, content := range extra {
		files[rel] = content
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg, err := config.Load(filepath.Join(root, "config.yaml"))
	require.NoError(t, err)
	return cfg
}

func buildFixture(t *testing.T, cfg *config.Config) *BuildReport {
	t.Helper()
	g, err := New(cfg)
	require.NoError(t, err)
	report, err := g.Build(context.Background())
	require.NoError(t, err)
	return report
}

func readOutput(t *testing.T, cfg *config.Config, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestBuildProducesExpectedTree(t *testing.T) {
	cfg := fixtureSite(t, nil)
	report := buildFixture(t, cfg)

	for _, rel := range []string{
		"index.html",
		"about/index.html",
		"posts/first-post/index.html",
		"posts/second-post/index.html",
		"tags/go/index.html",
		"tags/css/index.html",
		"assets/site.css",
		"feed.xml",
		"sitemap.xml",
		"images/logo.png",
	} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir(), filepath.FromSlash(rel)))
		require.NoError(t, err, rel)
	}

	// draft + future-dated are held: 2 posts + about + home + 2 tag pages.
	require.Equal(t, 2, report.Held)
	require.Equal(t, 6, report.Pages)
	require.Equal(t, 1, report.Assets)
	require.Equal(t, OutcomeSuccess, report.Outcome())
}

func TestDraftAndFutureExcludedEverywhere(t *testing.T) {
	cfg := fixtureSite(t, nil)
	buildFixture(t, cfg)

	index := readOutput(t, cfg, "index.html")
	require.NotContains(t, index, "Not Ready")
	require.NotContains(t, index, "Upcoming")
	require.Contains(t, index, "First Post")

	feed := readOutput(t, cfg, "feed.xml")
	require.NotContains(t, feed, "Not Ready")
	require.NotContains(t, feed, "Upcoming")

	sitemap := readOutput(t, cfg, "sitemap.xml")
	require.NotContains(t, sitemap, "not-ready")
	require.NotContains(t, sitemap, "upcoming")

	_, err := os.Stat(filepath.Join(cfg.OutputDir(), "posts/not-ready"))
	require.True(t, os.IsNotExist(err))
}

func TestDraftsIncludedWithPolicy(t *testing.T) {
	cfg := fixtureSite(t, nil)
	cfg.Publish.Drafts = true
	buildFixture(t, cfg)

	index := readOutput(t, cfg, "index.html")
	require.Contains(t, index, "Not Ready")
}

func TestStylesheetOverrideWins(t *testing.T) {
	cfg := fixtureSite(t, nil)
	buildFixture(t, cfg)

	css := readOutput(t, cfg, "assets/site.css")
	// Site override declared before the theme's core module import wins
	// over the module's conditional default.
	require.Contains(t, css, "--primary-color: #88C0D0;")
	require.NotContains(t, css, "#3B6E47")
	// Dark block present.
	require.Contains(t, css, `[data-theme="dark"]`)
	require.Contains(t, css, "--background: #2E3440;")
	// Literal rules come after every module section.
	require.Greater(t, strings.Index(css, ".custom"), strings.LastIndex(css, "/* module:"))
}

func TestBuildIdempotent(t *testing.T) {
	cfg := fixtureSite(t, nil)
	first := buildFixture(t, cfg)

	snapshot := map[string]string{}
	root := cfg.OutputDir()
	require.NoError(t, filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		snapshot[rel] = string(data)
		return nil
	}))

	second := buildFixture(t, cfg)
	require.Equal(t, first.ManifestHash, second.ManifestHash)

	for rel, before := range snapshot {
		after, err := os.ReadFile(filepath.Join(root, rel))
		require.NoError(t, err)
		require.Equal(t, before, string(after), rel)
	}
}

func TestCleanRemovesStaleOutput(t *testing.T) {
	cfg := fixtureSite(t, nil)
	buildFixture(t, cfg)

	stale := filepath.Join(cfg.OutputDir(), "stale.html")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	buildFixture(t, cfg)
	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))
}

func TestMissingStaticDirIsWarning(t *testing.T) {
	cfg := fixtureSite(t, nil)
	require.NoError(t, os.RemoveAll(cfg.StaticDir()))

	report := buildFixture(t, cfg)
	require.Equal(t, OutcomeWarning, report.Outcome())
	require.Equal(t, "warning", report.StageErrorKinds["assets"])
}

func TestUnknownShortcodeIsWarning(t *testing.T) {
	cfg := fixtureSite(t, map[string]string{
		"content/posts/odd.md": "---\ntitle: Odd\ndate: 2024-04-01\n---\n{{< mystery >}}\n",
	})
	report := buildFixture(t, cfg)
	require.Equal(t, OutcomeWarning, report.Outcome())

	page := readOutput(t, cfg, "posts/odd/index.html")
	require.Contains(t, page, "unknown shortcode: mystery")
}

func TestMalformedFrontmatterFailsBuild(t *testing.T) {
	cfg := fixtureSite(t, map[string]string{
		"content/posts/bad.md": "---\ntitle: [broken\n---\nBody.\n",
	})
	g, err := New(cfg)
	require.NoError(t, err)

	report, err := g.Build(context.Background())
	require.Error(t, err)
	require.Equal(t, OutcomeFailed, report.Outcome())
	require.Equal(t, "fatal", report.StageErrorKinds["load"])
}

func TestUnknownThemeRejected(t *testing.T) {
	cfg := fixtureSite(t, nil)
	cfg.Theme.Name = "no-such-theme"
	_, err := New(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme")
}

func TestCanceledContext(t *testing.T) {
	cfg := fixtureSite(t, nil)
	g, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := g.Build(ctx)
	require.Error(t, err)
	require.Equal(t, OutcomeCanceled, report.Outcome())
}
