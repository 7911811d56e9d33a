package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/blogsmith/internal/linkcheck"
)

// CheckCmd implements the 'check' command: verify internal links in a
// previously built output tree.
type CheckCmd struct {
	Strict bool `help:"Exit non-zero when broken links are found"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	outputDir := cfg.OutputDir()
	if _, err := os.Stat(outputDir); err != nil {
		return fmt.Errorf("output directory not found (run 'blogsmith build' first): %s", outputDir)
	}

	issues, err := linkcheck.Verify(outputDir, cfg.Site.BaseURL)
	if err != nil {
		return fmt.Errorf("link check: %w", err)
	}

	if len(issues) == 0 {
		slog.Info("Link check passed", "output", outputDir)
		fmt.Println("No broken internal links found")
		return nil
	}

	for _, issue := range issues {
		fmt.Println(issue.String())
	}
	slog.Warn("Link check found broken links", "count", len(issues))
	if c.Strict {
		return fmt.Errorf("%d broken internal links", len(issues))
	}
	return nil
}
