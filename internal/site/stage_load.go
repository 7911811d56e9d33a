package site

import (
	"context"

	"git.home.luguber.info/inful/blogsmith/internal/content"
)

// stageLoad walks the content tree into typed entries and applies the
// publishing policy. Load failures (malformed frontmatter, duplicate
// slugs, missing tree) are fatal.
func stageLoad(_ context.Context, bs *BuildState) error {
	loader := content.NewLoader(bs.ContentDir, content.Policy{
		Drafts: bs.Config.Publish.Drafts,
		Future: bs.Config.Publish.Future,
	})

	set, err := loader.Load()
	if err != nil {
		return newFatalStageError(stageLoadName, err)
	}
	bs.Set = set
	bs.Report.Held = len(set.Held)
	return nil
}
