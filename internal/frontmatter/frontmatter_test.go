package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitNoFrontmatter(t *testing.T) {
	body := []byte("# Heading\n\nJust markdown.\n")
	fm, out, had, err := Split(body)
	require.NoError(t, err)
	require.False(t, had)
	require.Nil(t, fm)
	require.Equal(t, body, out)
}

func TestSplitBasic(t *testing.T) {
	doc := []byte("---\ntitle: Hello\ndraft: true\n---\nBody text.\n")
	fm, body, had, err := Split(doc)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: Hello\ndraft: true\n", string(fm))
	require.Equal(t, "Body text.\n", string(body))
}

func TestSplitEmptyBlock(t *testing.T) {
	doc := []byte("---\n---\nBody.\n")
	fm, body, had, err := Split(doc)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, "Body.\n", string(body))
}

func TestSplitMissingClose(t *testing.T) {
	_, _, _, err := Split([]byte("---\ntitle: Broken\nno closing"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestSplitNormalizesCRLF(t *testing.T) {
	doc := []byte("---\r\ntitle: Windows\r\n---\r\nBody.\r\n")
	fm, body, had, err := Split(doc)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: Windows\n", string(fm))
	require.Equal(t, "Body.\n", string(body))
}

func TestDecodeTyped(t *testing.T) {
	var meta struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
		Draft bool     `yaml:"draft"`
	}
	doc := []byte("---\ntitle: Typed\ntags: [go, blog]\ndraft: true\n---\nHello.\n")
	body, had, err := Decode(doc, &meta)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "Typed", meta.Title)
	require.Equal(t, []string{"go", "blog"}, meta.Tags)
	require.True(t, meta.Draft)
	require.Equal(t, "Hello.\n", string(body))
}

func TestDecodeMalformedYAML(t *testing.T) {
	var meta map[string]any
	_, had, err := Decode([]byte("---\ntitle: [unclosed\n---\nBody.\n"), &meta)
	require.True(t, had)
	require.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	meta := struct {
		Title string `yaml:"title"`
		Draft bool   `yaml:"draft"`
	}{Title: "New Post", Draft: true}

	doc, err := Encode(meta, []byte("Write here.\n"))
	require.NoError(t, err)

	var back struct {
		Title string `yaml:"title"`
		Draft bool   `yaml:"draft"`
	}
	body, had, err := Decode(doc, &back)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, meta, back)
	require.Equal(t, "Write here.\n", string(body))
}
