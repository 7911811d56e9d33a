package content

import (
	"path"
	"time"
)

// Kind distinguishes dated blog posts from standalone pages.
type Kind string

const (
	KindPost Kind = "post" // lives under content/posts/, listed chronologically
	KindPage Kind = "page" // top-level content file (about.md etc.)
)

// Meta is the typed frontmatter of a content entry.
type Meta struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	Date        time.Time `yaml:"date,omitempty"`
	Author      string    `yaml:"author,omitempty"`
	Authors     []string  `yaml:"authors,omitempty"`
	Tags        []string  `yaml:"tags,omitempty"`
	Draft       bool      `yaml:"draft,omitempty"`
	Slug        string    `yaml:"slug,omitempty"`

	// Render hints.
	Math bool `yaml:"math,omitempty"`
	TOC  bool `yaml:"toc,omitempty"`
}

// Entry is a loaded content file: parsed frontmatter plus the Markdown body.
//
// Entries are immutable after loading; the build pipeline never mutates them.
type Entry struct {
	Meta

	Kind       Kind
	Slug       string // derived identity; unique within the site
	SourcePath string // path relative to the content root
	Body       []byte // Markdown body with frontmatter removed
}

// AuthorList merges the singular and plural author fields, singular first.
func (e *Entry) AuthorList() []string {
	if e.Author == "" {
		return e.Authors
	}
	out := make([]string, 0, len(e.Authors)+1)
	out = append(out, e.Author)
	out = append(out, e.Authors...)
	return out
}

// OutputPath returns the site-relative output file for this entry.
// Each entry maps to exactly one output path derived from its identity.
func (e *Entry) OutputPath() string {
	if e.Kind == KindPost {
		return path.Join("posts", e.Slug, "index.html")
	}
	return path.Join(e.Slug, "index.html")
}

// URLPath returns the site-relative URL for this entry, with leading and
// trailing slashes.
func (e *Entry) URLPath() string {
	if e.Kind == KindPost {
		return "/posts/" + e.Slug + "/"
	}
	return "/" + e.Slug + "/"
}
