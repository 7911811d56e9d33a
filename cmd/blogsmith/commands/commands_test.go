package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/frontmatter"
)

func TestApplyBuildFlagsOverridesConfig(t *testing.T) {
	cfg := &config.Config{}
	applyBuildFlags(cfg, &BuildCmd{Output: "./dist", Drafts: true})

	require.Equal(t, "./dist", cfg.Output.Directory)
	require.True(t, cfg.Publish.Drafts)
	require.False(t, cfg.Publish.Future)
}

func TestApplyBuildFlagsLeavesConfigAlone(t *testing.T) {
	cfg := &config.Config{}
	cfg.Output.Directory = "./public"
	applyBuildFlags(cfg, &BuildCmd{})

	require.Equal(t, "./public", cfg.Output.Directory)
}

func TestScaffoldSiteCreatesSkeleton(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, scaffoldSite(dir))

	post := filepath.Join(dir, "content", "posts", "hello-world.md")
	data, err := os.ReadFile(post)
	require.NoError(t, err)

	fm, _, had, err := frontmatter.Split(data)
	require.NoError(t, err)
	require.True(t, had)
	require.Contains(t, string(fm), "Hello, World")

	_, err = os.Stat(filepath.Join(dir, "content", "about.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "static"))
	require.NoError(t, err)
}

func TestScaffoldSiteKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	aboutPath := filepath.Join(dir, "content", "about.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(aboutPath), 0o755))
	require.NoError(t, os.WriteFile(aboutPath, []byte("mine"), 0o644))

	require.NoError(t, scaffoldSite(dir))

	data, err := os.ReadFile(aboutPath)
	require.NoError(t, err)
	require.Equal(t, "mine", string(data))
}
