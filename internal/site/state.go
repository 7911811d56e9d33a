package site

import (
	"fmt"

	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/content"
	"git.home.luguber.info/inful/blogsmith/internal/render"
	"git.home.luguber.info/inful/blogsmith/internal/theme"
)

// BuildState carries mutable state across stages. Rendered output is
// collected in memory and flushed by the write stage, which keeps output
// ordering deterministic and lets the verify stage hash the exact bytes
// that were written.
type BuildState struct {
	Config *config.Config
	Theme  theme.Theme
	Report *BuildReport

	ContentDir string // resolved content root (local dir or cloned workspace)
	cleanupDir string // temporary clone to remove after the build, if any

	Set      *content.Set
	Renderer *render.Renderer
	CSS      []byte

	// Files maps output-relative paths to final bytes.
	Files map[string][]byte
}

func newBuildState(cfg *config.Config, th theme.Theme, report *BuildReport) *BuildState {
	return &BuildState{
		Config: cfg,
		Theme:  th,
		Report: report,
		Files:  map[string][]byte{},
	}
}

// AddFile registers an output file. Two producers claiming the same path
// is a build bug, not a warning.
func (bs *BuildState) AddFile(path string, data []byte) error {
	if _, exists := bs.Files[path]; exists {
		return fmt.Errorf("output path collision: %s", path)
	}
	bs.Files[path] = data
	return nil
}

func (bs *BuildState) siteInfo() render.SiteInfo {
	return render.SiteInfo{
		Title:       bs.Config.Site.Title,
		Description: bs.Config.Site.Description,
		BaseURL:     bs.Config.Site.BaseURL,
		Language:    bs.Config.Site.Language,
		Author:      bs.Config.Site.Author,
	}
}
