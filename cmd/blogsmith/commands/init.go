package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/blogsmith/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force    bool `help:"Overwrite existing configuration file"`
	Scaffold bool `help:"Also create sample content and static directories" default:"true" negatable:""`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	slog.Info("Initializing site configuration", "path", root.Config, "force", i.Force)
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}

	if !i.Scaffold {
		return nil
	}
	baseDir := filepath.Dir(root.Config)
	return scaffoldSite(baseDir)
}

const samplePost = `---
title: Hello, World
date: 2024-01-15T10:00:00Z
tags:
  - meta
---

Welcome to your new blog. This post lives in ` + "`content/posts/`" + `;
anything else under ` + "`content/`" + ` becomes a standalone page.

Delete this post and write your own.
`

const samplePage = `---
title: About
---

A few words about yourself. This page is linked from the site header.
`

// scaffoldSite creates the content and static skeleton next to the
// configuration file. Existing files are left alone.
func scaffoldSite(baseDir string) error {
	dirs := []string{
		filepath.Join(baseDir, "content", "posts"),
		filepath.Join(baseDir, "static"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", d, err)
		}
	}

	files := map[string]string{
		filepath.Join(baseDir, "content", "posts", "hello-world.md"): samplePost,
		filepath.Join(baseDir, "content", "about.md"):                samplePage,
	}
	for path, body := range files {
		if _, err := os.Stat(path); err == nil {
			slog.Info("Skipping existing file", "path", path)
			continue
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		slog.Info("Created", "path", path)
	}
	return nil
}
