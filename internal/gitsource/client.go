// Package gitsource clones a remote content repository into a local
// workspace so the loader can treat git-backed content like a directory.
package gitsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Clone performs a shallow, single-branch clone of url into dest. Any
// existing dest content is removed first so repeated builds start clean.
func Clone(ctx context.Context, url, branch, dest string) error {
	slog.Debug("Cloning content repository", "url", url, "branch", branch, "path", dest)

	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("failed to remove existing directory: %w", err)
	}

	opts := &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}
	if branch != "" {
		opts.ReferenceName = plumbing.ReferenceName("refs/heads/" + branch)
		opts.SingleBranch = true
	}

	repo, err := git.PlainCloneContext(ctx, dest, false, opts)
	if err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}

	if ref, herr := repo.Head(); herr == nil {
		slog.Info("Content repository cloned", "url", url, "commit", ref.Hash().String()[:8], "path", dest)
	} else {
		slog.Info("Content repository cloned", "url", url, "path", dest)
	}
	return nil
}
