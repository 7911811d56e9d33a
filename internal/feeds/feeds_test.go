package feeds

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsmith/internal/content"
)

func testEntries() []*content.Entry {
	return []*content.Entry{
		{
			Meta: content.Meta{
				Title:       "Second Post",
				Description: "The follow-up.",
				Date:        time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			},
			Kind: content.KindPost,
			Slug: "second-post",
		},
		{
			Meta: content.Meta{Title: "First Post", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			Kind: content.KindPost,
			Slug: "first-post",
		},
	}
}

func TestRSS(t *testing.T) {
	site := Site{Title: "Blog", Description: "d", BaseURL: "https://example.com/", Language: "en"}
	out, err := RSS(site, testEntries())
	require.NoError(t, err)

	feed := string(out)
	require.Contains(t, feed, `<rss version="2.0">`)
	require.Contains(t, feed, "<link>https://example.com/posts/second-post/</link>")
	require.Contains(t, feed, "<pubDate>Mon, 04 Mar 2024 00:00:00 +0000</pubDate>")
	require.Contains(t, feed, "<description>The follow-up.</description>")
	// Order preserved: newest first as given.
	require.Less(t, strings.Index(feed, "second-post"), strings.Index(feed, "first-post"))
}

func TestSitemap(t *testing.T) {
	site := Site{Title: "Blog", BaseURL: "https://example.com"}
	out, err := Sitemap(site, testEntries(), []string{"go"})
	require.NoError(t, err)

	sm := string(out)
	require.Contains(t, sm, "<loc>https://example.com/</loc>")
	require.Contains(t, sm, "<loc>https://example.com/tags/go/</loc>")
	require.Contains(t, sm, "<loc>https://example.com/posts/first-post/</loc>")
	require.Contains(t, sm, "<lastmod>2024-01-02</lastmod>")
}

func TestFeedsDeterministic(t *testing.T) {
	site := Site{Title: "Blog", BaseURL: "https://example.com"}
	a, err := RSS(site, testEntries())
	require.NoError(t, err)
	b, err := RSS(site, testEntries())
	require.NoError(t, err)
	require.Equal(t, a, b)
}
