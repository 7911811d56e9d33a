package site

import (
	"context"

	"git.home.luguber.info/inful/blogsmith/internal/feeds"
)

// stageFeeds emits the RSS feed and sitemap from published entries only.
func stageFeeds(_ context.Context, bs *BuildState) error {
	fs := feeds.Site{
		Title:       bs.Config.Site.Title,
		Description: bs.Config.Site.Description,
		BaseURL:     bs.Config.Site.BaseURL,
		Language:    bs.Config.Site.Language,
	}

	rss, err := feeds.RSS(fs, bs.Set.Posts())
	if err != nil {
		return newFatalStageError(stageFeedsName, err)
	}
	if err := bs.AddFile("feed.xml", rss); err != nil {
		return newFatalStageError(stageFeedsName, err)
	}

	tags, _ := bs.Set.Tags()
	sitemap, err := feeds.Sitemap(fs, bs.Set.Published(), tags)
	if err != nil {
		return newFatalStageError(stageFeedsName, err)
	}
	if err := bs.AddFile("sitemap.xml", sitemap); err != nil {
		return newFatalStageError(stageFeedsName, err)
	}
	return nil
}
