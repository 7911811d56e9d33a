package site

import (
	"context"
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/blogsmith/internal/render"
)

// stagePrepare builds the renderer from the active theme and the optional
// site-local layout override directory. Template parse failures abort the
// build before any filesystem work happens.
func stagePrepare(_ context.Context, bs *BuildState) error {
	layoutDir := ""
	if bs.Config.Theme.Layouts != "" {
		layoutDir = bs.Config.ResolvePath(bs.Config.Theme.Layouts)
	}

	r, err := render.New(bs.Theme, layoutDir, bs.siteInfo())
	if err != nil {
		return newFatalStageError(stagePrepareName, err)
	}
	bs.Renderer = r

	if bs.Config.OutputDir() == "" {
		return newFatalStageError(stagePrepareName, fmt.Errorf("output directory not configured"))
	}
	if abs, err := filepath.Abs(bs.Config.OutputDir()); err == nil && abs == string(filepath.Separator) {
		return newFatalStageError(stagePrepareName, fmt.Errorf("refusing to build into filesystem root"))
	}
	return nil
}
