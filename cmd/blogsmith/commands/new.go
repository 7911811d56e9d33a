package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/content"
	"git.home.luguber.info/inful/blogsmith/internal/frontmatter"
)

// NewCmd implements the 'new' command: it scaffolds a content entry with
// frontmatter filled in.
type NewCmd struct {
	Title string   `arg:"" help:"Title of the new entry"`
	Page  bool     `help:"Create a standalone page instead of a post"`
	Tags  []string `short:"t" help:"Tags for the new entry"`
	Final bool     `help:"Create the entry published instead of as a draft"`
}

func (n *NewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Content.IsGitSource() {
		return fmt.Errorf("content source is a git repository; create entries in that repository instead")
	}

	slug := content.Slugify(n.Title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", n.Title)
	}

	meta := content.Meta{
		Title: n.Title,
		Date:  time.Now().UTC().Truncate(time.Minute),
		Tags:  n.Tags,
		Draft: !n.Final,
	}
	if n.Page {
		// Pages are not dated.
		meta.Date = time.Time{}
		meta.Draft = false
	}

	body := []byte("\nWrite here.\n")
	data, err := frontmatter.Encode(meta, body)
	if err != nil {
		return fmt.Errorf("encode frontmatter: %w", err)
	}

	contentDir := cfg.ResolvePath(cfg.Content.Source)
	var target string
	if n.Page {
		target = filepath.Join(contentDir, slug+".md")
	} else {
		target = filepath.Join(contentDir, "posts", slug+".md")
	}

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("entry already exists: %s", target)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}

	kind := "post"
	if n.Page {
		kind = "page"
	}
	slog.Info("Created "+kind, "path", target, "slug", slug, "draft", meta.Draft)
	if meta.Draft {
		fmt.Printf("Created draft %s\n", target)
	} else {
		fmt.Printf("Created %s\n", target)
	}
	return nil
}
