package site

import (
	"context"
	"os"

	"git.home.luguber.info/inful/blogsmith/internal/gitsource"
)

// stageFetch resolves the content source. Local directories resolve in
// place; git URLs are cloned into a temporary workspace removed after the
// build.
func stageFetch(ctx context.Context, bs *BuildState) error {
	cc := &bs.Config.Content
	if !cc.IsGitSource() {
		bs.ContentDir = bs.Config.ResolvePath(cc.Source)
		return nil
	}

	dest, err := os.MkdirTemp("", "blogsmith-content-*")
	if err != nil {
		return newFatalStageError(stageFetchName, err)
	}
	if err := gitsource.Clone(ctx, cc.Source, cc.Branch, dest); err != nil {
		_ = os.RemoveAll(dest)
		return newFatalStageError(stageFetchName, err)
	}
	bs.ContentDir = dest
	bs.cleanupDir = dest
	return nil
}
