package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/frontmatter"
)

// Policy controls which loaded entries count as published.
type Policy struct {
	Drafts bool      // include draft entries
	Future bool      // include entries dated after Now
	Now    time.Time // evaluation time; zero means time.Now()
}

// HeldReason explains why an entry was excluded from published output.
type HeldReason string

const (
	HeldDraft  HeldReason = "draft"
	HeldFuture HeldReason = "future-dated"
)

// Held pairs an excluded entry with the policy reason.
type Held struct {
	Entry  *Entry
	Reason HeldReason
}

// Set is the result of loading a content tree.
type Set struct {
	All  []*Entry // every parsed entry, published or not
	Held []Held   // entries excluded by publishing policy
}

// Loader reads a content tree into typed entries.
type Loader struct {
	root   string
	policy Policy
}

// NewLoader creates a loader rooted at the content directory.
func NewLoader(root string, policy Policy) *Loader {
	if policy.Now.IsZero() {
		policy.Now = time.Now()
	}
	return &Loader{root: root, policy: policy}
}

// Load walks the content tree in lexical order and parses every Markdown
// file. Files under posts/ become dated posts; other Markdown files become
// standalone pages. Malformed frontmatter or a duplicate slug aborts the
// load.
func (l *Loader) Load() (*Set, error) {
	if st, err := os.Stat(l.root); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("content directory not found: %s", l.root)
	}

	set := &Set{}
	seen := map[string]string{} // output path -> source path

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != l.root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(name), ".md") || strings.HasPrefix(name, "_") {
			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		entry, err := l.loadFile(path, filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		out := entry.OutputPath()
		if prev, dup := seen[out]; dup {
			return fmt.Errorf("duplicate output path %s: %s and %s", out, prev, entry.SourcePath)
		}
		seen[out] = entry.SourcePath

		set.All = append(set.All, entry)
		if reason, held := l.heldBy(entry); held {
			set.Held = append(set.Held, Held{Entry: entry, Reason: reason})
			slog.Debug("Entry held back", "source", entry.SourcePath, "reason", reason)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Content loaded", "entries", len(set.All), "held", len(set.Held))
	return set, nil
}

func (l *Loader) loadFile(path, rel string) (*Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}

	var meta Meta
	body, _, err := frontmatter.Decode(raw, &meta)
	if err != nil {
		return nil, fmt.Errorf("malformed frontmatter in %s: %w", rel, err)
	}
	if strings.TrimSpace(meta.Title) == "" {
		return nil, fmt.Errorf("malformed frontmatter in %s: title is required", rel)
	}

	kind := KindPage
	if strings.HasPrefix(rel, "posts/") {
		kind = KindPost
	}

	slug := meta.Slug
	if slug == "" {
		if kind == KindPage {
			base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
			slug = Slugify(base)
		} else {
			slug = Slugify(meta.Title)
		}
	} else {
		slug = Slugify(slug)
	}
	if slug == "" {
		return nil, fmt.Errorf("cannot derive slug for %s", rel)
	}

	// Tags are a set; normalize to sorted unique form so output order
	// never depends on authoring order.
	meta.Tags = normalizeTags(meta.Tags)

	return &Entry{Meta: meta, Kind: kind, Slug: slug, SourcePath: rel, Body: body}, nil
}

func (l *Loader) heldBy(e *Entry) (HeldReason, bool) {
	if e.Draft && !l.policy.Drafts {
		return HeldDraft, true
	}
	if !l.policy.Future && !e.Date.IsZero() && e.Date.After(l.policy.Now) {
		return HeldFuture, true
	}
	return "", false
}

func normalizeTags(tags []string) []string {
	uniq := map[string]struct{}{}
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			uniq[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(uniq))
	for t := range uniq {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Published returns entries that pass the publishing policy, in walk order.
func (s *Set) Published() []*Entry {
	held := map[*Entry]struct{}{}
	for _, h := range s.Held {
		held[h.Entry] = struct{}{}
	}
	out := make([]*Entry, 0, len(s.All))
	for _, e := range s.All {
		if _, ok := held[e]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// Posts returns published posts in reverse-chronological order. Ties and
// undated posts fall back to slug order so the listing stays deterministic.
func (s *Set) Posts() []*Entry {
	var posts []*Entry
	for _, e := range s.Published() {
		if e.Kind == KindPost {
			posts = append(posts, e)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts
}

// Pages returns published standalone pages in slug order.
func (s *Set) Pages() []*Entry {
	var pages []*Entry
	for _, e := range s.Published() {
		if e.Kind == KindPage {
			pages = append(pages, e)
		}
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	return pages
}

// Tags returns tag names (sorted) mapped to their published posts, each
// list in the same order Posts returns.
func (s *Set) Tags() ([]string, map[string][]*Entry) {
	byTag := map[string][]*Entry{}
	for _, p := range s.Posts() {
		for _, t := range p.Tags {
			byTag[t] = append(byTag[t], p)
		}
	}
	names := make([]string, 0, len(byTag))
	for t := range byTag {
		names = append(names, t)
	}
	sort.Strings(names)
	return names, byTag
}
