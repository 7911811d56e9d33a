package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/content"
	"git.home.luguber.info/inful/blogsmith/internal/theme"
)

// SiteInfo is the site-wide data every template sees.
type SiteInfo struct {
	Title       string
	Description string
	BaseURL     string
	Language    string
	Author      config.AuthorConfig
}

// PostRef is a listing row: enough of a post to render an index line.
type PostRef struct {
	Title       string
	Description string
	URL         string
	Date        time.Time
	Tags        []string
}

// PageData is the template context for every rendered document.
type PageData struct {
	Site        SiteInfo
	Title       string
	Description string
	Content     template.HTML
	Date        time.Time
	Authors     []string
	Tags        []string
	Permalink   string

	// Listing pages only.
	Posts []PostRef
	Tag   string

	// Render hints from frontmatter.
	Math bool
	TOC  bool
}

// Renderer turns entries and listings into final HTML documents using the
// active theme's templates, optionally overridden by a site-local layout
// directory.
type Renderer struct {
	site     SiteInfo
	tpl      *template.Template
	expander *Expander
}

// New builds a Renderer for the theme. If layoutDir is non-empty and
// exists, its *.html files override theme templates by name.
func New(t theme.Theme, layoutDir string, site SiteInfo) (*Renderer, error) {
	tpl, err := t.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse %s theme templates: %w", t.Name(), err)
	}

	if layoutDir != "" {
		if st, err := os.Stat(layoutDir); err == nil && st.IsDir() {
			overrides, err := filepath.Glob(filepath.Join(layoutDir, "*.html"))
			if err == nil && len(overrides) > 0 {
				tpl, err = tpl.ParseFiles(overrides...)
				if err != nil {
					return nil, fmt.Errorf("parse layout overrides: %w", err)
				}
			}
		}
	}

	return &Renderer{
		site:     site,
		tpl:      tpl,
		expander: NewExpander(site.Author),
	}, nil
}

// Entry renders a single content entry to a full HTML document. Warnings
// (unknown shortcodes) do not fail the render.
func (r *Renderer) Entry(e *content.Entry) ([]byte, []string, error) {
	expanded, warnings := r.expander.Expand(e.Body)

	html, err := Markdown(expanded)
	if err != nil {
		return nil, warnings, fmt.Errorf("render %s: %w", e.SourcePath, err)
	}

	data := PageData{
		Site:        r.site,
		Title:       e.Title,
		Description: e.Description,
		Content:     html,
		Date:        e.Date,
		Authors:     e.AuthorList(),
		Tags:        e.Tags,
		Permalink:   r.site.BaseURL + e.URLPath(),
		Math:        e.Math,
		TOC:         e.TOC,
	}

	name := "page"
	if e.Kind == content.KindPost {
		name = "post"
	}
	out, err := r.execute(name, data)
	return out, warnings, err
}

// Index renders the homepage listing.
func (r *Renderer) Index(posts []PostRef) ([]byte, error) {
	return r.execute("index", PageData{Site: r.site, Posts: posts})
}

// TagPage renders the listing for a single tag.
func (r *Renderer) TagPage(tag string, posts []PostRef) ([]byte, error) {
	return r.execute("tag", PageData{
		Site:  r.site,
		Title: tag,
		Tag:   tag,
		Posts: posts,
	})
}

func (r *Renderer) execute(name string, data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Refs converts entries to listing rows.
func Refs(posts []*content.Entry) []PostRef {
	refs := make([]PostRef, 0, len(posts))
	for _, p := range posts {
		refs = append(refs, PostRef{
			Title:       p.Title,
			Description: p.Description,
			URL:         p.URLPath(),
			Date:        p.Date,
			Tags:        p.Tags,
		})
	}
	return refs
}
