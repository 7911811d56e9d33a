package site

import (
	"context"

	"git.home.luguber.info/inful/blogsmith/internal/render"
)

// stageIndexes renders the homepage and per-tag listing pages. Listings
// only ever see published posts, so draft and future-dated entries cannot
// leak into an index.
func stageIndexes(_ context.Context, bs *BuildState) error {
	posts := bs.Set.Posts()

	home, err := bs.Renderer.Index(render.Refs(posts))
	if err != nil {
		return newFatalStageError(stageIndexesName, err)
	}
	if err := bs.AddFile("index.html", home); err != nil {
		return newFatalStageError(stageIndexesName, err)
	}
	bs.Report.Pages++

	tags, byTag := bs.Set.Tags()
	for _, tag := range tags {
		page, err := bs.Renderer.TagPage(tag, render.Refs(byTag[tag]))
		if err != nil {
			return newFatalStageError(stageIndexesName, err)
		}
		if err := bs.AddFile("tags/"+tag+"/index.html", page); err != nil {
			return newFatalStageError(stageIndexesName, err)
		}
		bs.Report.Pages++
	}
	return nil
}
