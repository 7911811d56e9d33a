package linkcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeOutput(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestExtractLinks(t *testing.T) {
	doc := `<html><head><link rel="stylesheet" href="/assets/site.css"></head>
<body><a href="/about/">About</a>
<a href="https://example.com/posts/x/">Same host</a>
<a href="https://other.example.org/">Elsewhere</a>
<a href="#top">Anchor</a>
<a href="mailto:me@example.com">Mail</a>
<img src="/images/cat.jpg"></body></html>`

	links, err := ExtractLinks(strings.NewReader(doc), "https://example.com")
	require.NoError(t, err)

	byURL := map[string]Link{}
	for _, l := range links {
		byURL[l.URL] = l
	}
	require.True(t, byURL["/assets/site.css"].IsInternal)
	require.True(t, byURL["/about/"].IsInternal)
	require.True(t, byURL["https://example.com/posts/x/"].IsInternal)
	require.False(t, byURL["https://other.example.org/"].IsInternal)
	require.False(t, byURL["#top"].IsInternal)
	require.False(t, byURL["mailto:me@example.com"].IsInternal)
	require.True(t, byURL["/images/cat.jpg"].IsInternal)
}

func TestVerifyFindsBrokenLinks(t *testing.T) {
	dir := writeOutput(t, map[string]string{
		"index.html":            `<a href="/about/">ok</a> <a href="/missing/">broken</a>`,
		"about/index.html":      `<img src="/images/cat.jpg">`,
		"images/cat.jpg":        "jpg",
		"posts/one/index.html":  `<a href="/">home</a> <a href="/assets/site.css">css broken</a>`,
	})

	issues, err := Verify(dir, "https://example.com")
	require.NoError(t, err)
	require.Len(t, issues, 2)

	urls := []string{issues[0].URL, issues[1].URL}
	require.Contains(t, urls, "/missing/")
	require.Contains(t, urls, "/assets/site.css")
}

func TestVerifyDirectoryWithoutIndexIsBroken(t *testing.T) {
	dir := writeOutput(t, map[string]string{
		"index.html":    `<a href="/tags/go/">tag</a>`,
		"tags/go/.keep": "",
	})

	issues, err := Verify(dir, "https://example.com")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, "/tags/go/", issues[0].URL)
}

func TestVerifyCleanSite(t *testing.T) {
	dir := writeOutput(t, map[string]string{
		"index.html":       `<a href="/about/">ok</a> <a href="/feed.xml">feed</a>`,
		"about/index.html": `<a href="/#intro">home anchor</a>`,
		"feed.xml":         "<rss/>",
	})

	issues, err := Verify(dir, "https://example.com")
	require.NoError(t, err)
	require.Empty(t, issues)
}
