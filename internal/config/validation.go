package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values that cannot work at build
// time. Defaults are applied before validation, so empty optional fields
// are not errors here.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Output.Directory) == "" {
		problems = append(problems, "output.directory must not be empty")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		problems = append(problems, fmt.Sprintf("serve.port %d out of range", c.Serve.Port))
	}
	for i, ov := range c.Theme.Tokens {
		if strings.TrimSpace(ov.Token) == "" {
			problems = append(problems, fmt.Sprintf("theme.tokens[%d]: token name must not be empty", i))
		}
	}
	for i, ov := range c.Theme.Dark {
		if strings.TrimSpace(ov.Token) == "" {
			problems = append(problems, fmt.Sprintf("theme.dark[%d]: token name must not be empty", i))
		}
	}
	if c.Events.Subject != "" && c.Events.NATSURL == "" {
		problems = append(problems, "events.subject set without events.nats_url")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsGitSource reports whether the content source is a remote git URL
// rather than a local directory.
func (c *ContentConfig) IsGitSource() bool {
	s := c.Source
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "git@") ||
		strings.HasPrefix(s, "ssh://")
}
