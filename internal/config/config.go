package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the site configuration loaded from config.yaml.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Theme   ThemeConfig   `yaml:"theme"`
	Publish PublishConfig `yaml:"publish"`
	Output  OutputConfig  `yaml:"output"`
	Serve   ServeConfig   `yaml:"serve"`
	Events  EventsConfig  `yaml:"events"`
	State   StateConfig   `yaml:"state"`

	// BaseDir is the directory containing the loaded configuration file.
	// Relative paths in the configuration resolve against it.
	BaseDir string `yaml:"-"`
}

// SiteConfig holds site-wide metadata rendered into every page.
type SiteConfig struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description,omitempty"`
	BaseURL     string       `yaml:"base_url,omitempty"`
	Language    string       `yaml:"language,omitempty"`
	Author      AuthorConfig `yaml:"author,omitempty"`
}

// AuthorConfig describes the site author, used by the profile shortcode
// and as the default entry author.
type AuthorConfig struct {
	Name   string `yaml:"name,omitempty"`
	Email  string `yaml:"email,omitempty"`
	Bio    string `yaml:"bio,omitempty"`
	Avatar string `yaml:"avatar,omitempty"`
}

// ContentConfig selects where content comes from.
//
// Source is either a local directory or a git URL (http(s)://, git@, ssh://).
// Git sources are cloned into a temporary workspace before loading.
type ContentConfig struct {
	Source string `yaml:"source"`
	Branch string `yaml:"branch,omitempty"`
	Static string `yaml:"static,omitempty"` // static asset directory, copied verbatim
}

// TokenOverride is a single design-token override.
//
// Overrides are a sequence, not a map: evaluation order is the contract.
// An override only wins against a base module default when it is declared
// before the module is imported.
type TokenOverride struct {
	Token string `yaml:"token"`
	Value string `yaml:"value"`
}

// ThemeConfig selects the theme and its token overrides.
type ThemeConfig struct {
	Name    string          `yaml:"name,omitempty"`
	Tokens  []TokenOverride `yaml:"tokens,omitempty"`
	Dark    []TokenOverride `yaml:"dark,omitempty"`
	Rules   []string        `yaml:"rules,omitempty"`   // literal CSS appended after all token blocks
	Layouts string          `yaml:"layouts,omitempty"` // optional local template override directory
}

// PublishConfig controls which entries reach the published output.
type PublishConfig struct {
	Drafts bool `yaml:"drafts"` // include draft: true entries
	Future bool `yaml:"future"` // include entries dated after the build time
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // clean output directory before build
}

// ServeConfig configures the local preview server.
type ServeConfig struct {
	Port            int      `yaml:"port,omitempty"`
	Metrics         bool     `yaml:"metrics,omitempty"`
	RebuildInterval Duration `yaml:"rebuild_interval,omitempty"` // periodic republish tick, 0 disables
}

// EventsConfig configures the optional NATS build-event publisher.
type EventsConfig struct {
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// StateConfig configures the build-history database.
type StateConfig struct {
	Database string `yaml:"database,omitempty"`
}

// Duration wraps time.Duration with YAML string parsing ("90s", "15m").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg.BaseDir = filepath.Dir(abs)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = "Untitled Site"
	}
	if c.Site.Language == "" {
		c.Site.Language = "en"
	}
	if c.Content.Source == "" {
		c.Content.Source = "./content"
	}
	if c.Content.Branch == "" {
		c.Content.Branch = "main"
	}
	if c.Content.Static == "" {
		c.Content.Static = "./static"
	}
	if c.Theme.Name == "" {
		c.Theme.Name = "meadow"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./public"
		c.Output.Clean = true
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = 8080
	}
	if c.State.Database == "" {
		c.State.Database = ".blogsmith/builds.db"
	}
	if c.Events.NATSURL != "" && c.Events.Subject == "" {
		c.Events.Subject = "blogsmith.builds"
	}
}

// ResolvePath resolves a possibly relative path against the config directory.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// OutputDir returns the resolved output directory.
func (c *Config) OutputDir() string { return c.ResolvePath(c.Output.Directory) }

// StaticDir returns the resolved static asset directory.
func (c *Config) StaticDir() string { return c.ResolvePath(c.Content.Static) }
