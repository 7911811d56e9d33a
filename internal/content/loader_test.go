package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestLoadPostsAndPages(t *testing.T) {
	root := writeTree(t, map[string]string{
		"about.md":             "---\ntitle: About Me\n---\nHi.\n",
		"posts/first-post.md":  "---\ntitle: First Post\ndate: 2024-01-02\ntags: [go]\n---\nHello.\n",
		"posts/second-post.md": "---\ntitle: Second Post\ndate: 2024-03-04\ntags: [go, blog]\n---\nAgain.\n",
	})

	set, err := NewLoader(root, Policy{Now: testNow}).Load()
	require.NoError(t, err)
	require.Len(t, set.All, 3)
	require.Empty(t, set.Held)

	posts := set.Posts()
	require.Len(t, posts, 2)
	require.Equal(t, "second-post", posts[0].Slug) // newest first
	require.Equal(t, "first-post", posts[1].Slug)
	require.Equal(t, "posts/second-post/index.html", posts[0].OutputPath())

	pages := set.Pages()
	require.Len(t, pages, 1)
	require.Equal(t, "about", pages[0].Slug)
	require.Equal(t, "about/index.html", pages[0].OutputPath())
}

func TestDraftsHeldByDefault(t *testing.T) {
	root := writeTree(t, map[string]string{
		"posts/wip.md":  "---\ntitle: WIP\ndate: 2024-01-01\ndraft: true\n---\nSoon.\n",
		"posts/done.md": "---\ntitle: Done\ndate: 2024-01-01\n---\nShipped.\n",
	})

	set, err := NewLoader(root, Policy{Now: testNow}).Load()
	require.NoError(t, err)
	require.Len(t, set.Held, 1)
	require.Equal(t, HeldDraft, set.Held[0].Reason)

	posts := set.Posts()
	require.Len(t, posts, 1)
	require.Equal(t, "done", posts[0].Slug)
}

func TestDraftsIncludedWhenPolicyAllows(t *testing.T) {
	root := writeTree(t, map[string]string{
		"posts/wip.md": "---\ntitle: WIP\ndate: 2024-01-01\ndraft: true\n---\nSoon.\n",
	})

	set, err := NewLoader(root, Policy{Drafts: true, Now: testNow}).Load()
	require.NoError(t, err)
	require.Empty(t, set.Held)
	require.Len(t, set.Posts(), 1)
}

func TestFutureDatedHeld(t *testing.T) {
	root := writeTree(t, map[string]string{
		"posts/later.md": "---\ntitle: Later\ndate: 2030-01-01\n---\nNot yet.\n",
	})

	set, err := NewLoader(root, Policy{Now: testNow}).Load()
	require.NoError(t, err)
	require.Len(t, set.Held, 1)
	require.Equal(t, HeldFuture, set.Held[0].Reason)

	set, err = NewLoader(root, Policy{Future: true, Now: testNow}).Load()
	require.NoError(t, err)
	require.Empty(t, set.Held)
}

func TestMalformedFrontmatterAborts(t *testing.T) {
	root := writeTree(t, map[string]string{
		"posts/bad.md": "---\ntitle: [broken\n---\nBody.\n",
	})

	_, err := NewLoader(root, Policy{Now: testNow}).Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed frontmatter")
	require.Contains(t, err.Error(), "posts/bad.md")
}

func TestMissingTitleAborts(t *testing.T) {
	root := writeTree(t, map[string]string{
		"posts/untitled.md": "---\ndate: 2024-01-01\n---\nBody.\n",
	})

	_, err := NewLoader(root, Policy{Now: testNow}).Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "title is required")
}

func TestDuplicateSlugRejected(t *testing.T) {
	root := writeTree(t, map[string]string{
		"posts/a.md": "---\ntitle: Same Thing\ndate: 2024-01-01\n---\nA.\n",
		"posts/b.md": "---\ntitle: Same Thing!\ndate: 2024-01-02\n---\nB.\n",
	})

	_, err := NewLoader(root, Policy{Now: testNow}).Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate output path")
}

func TestTagsNormalizedAndSorted(t *testing.T) {
	root := writeTree(t, map[string]string{
		"posts/tagged.md": "---\ntitle: Tagged\ndate: 2024-01-01\ntags: [Go, blog, go, ' CSS ']\n---\nT.\n",
	})

	set, err := NewLoader(root, Policy{Now: testNow}).Load()
	require.NoError(t, err)
	require.Equal(t, []string{"blog", "css", "go"}, set.Posts()[0].Tags)
}

func TestUnderscoreAndHiddenSkipped(t *testing.T) {
	root := writeTree(t, map[string]string{
		"posts/real.md":      "---\ntitle: Real\ndate: 2024-01-01\n---\nR.\n",
		"posts/_draft.md":    "garbage not parsed",
		".obsidian/notes.md": "garbage not parsed",
	})

	set, err := NewLoader(root, Policy{Now: testNow}).Load()
	require.NoError(t, err)
	require.Len(t, set.All, 1)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":        "hello-world",
		"Réseaux & Systèmes":   "reseaux-systemes",
		"  spaced   out  ":     "spaced-out",
		"Go 1.24 Release":      "go-1-24-release",
		"ALL CAPS":             "all-caps",
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), in)
	}
}
