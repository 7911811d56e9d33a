package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Site: SiteConfig{
			Title:       "My Blog",
			Description: "Notes and projects",
			BaseURL:     "https://example.com",
			Language:    "en",
			Author: AuthorConfig{
				Name: "Jane Doe",
				Bio:  "Writes about software and other things.",
			},
		},
		Content: ContentConfig{
			Source: "./content",
			Static: "./static",
		},
		Theme: ThemeConfig{
			Name: "meadow",
			Tokens: []TokenOverride{
				{Token: "primary-color", Value: "#88C0D0"},
			},
			Dark: []TokenOverride{
				{Token: "background", Value: "#2E3440"},
				{Token: "text-color", Value: "#D8DEE9"},
			},
		},
		Publish: PublishConfig{Drafts: false, Future: false},
		Output:  OutputConfig{Directory: "./public", Clean: true},
		Serve:   ServeConfig{Port: 8080},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
