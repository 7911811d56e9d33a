// Package meadow is the built-in default theme: a light, single-column
// blog layout with an optional dark scheme driven entirely by design
// tokens.
package meadow

import (
	"html/template"

	"git.home.luguber.info/inful/blogsmith/internal/styles"
	"git.home.luguber.info/inful/blogsmith/internal/theme"
)

type Theme struct{}

func (Theme) Name() string { return "meadow" }

// Modules returns the theme's style modules. All color and layout values
// are conditional defaults so site overrides declared earlier win.
func (Theme) Modules() []styles.Module {
	return []styles.Module{
		{
			Name: "core",
			Defaults: []styles.Default{
				{Token: "primary-color", Value: "#3B6E47"},
				{Token: "accent-color", Value: "#B07A3C"},
				{Token: "background", Value: "#FDFCF8"},
				{Token: "surface", Value: "#F3F1E9"},
				{Token: "text-color", Value: "#23301F"},
				{Token: "muted-color", Value: "#6B7467"},
				{Token: "radius", Value: "6px"},
				{Token: "spacing-unit", Value: "1rem"},
			},
			Rules: []string{
				`* { box-sizing: border-box; }`,
				`body {
  margin: 0;
  background: var(--background);
  color: var(--text-color);
}`,
			},
		},
		{
			Name:     "typography",
			Requires: []string{"core"},
			Defaults: []styles.Default{
				{Token: "font-stack", Value: "Georgia, 'Times New Roman', serif"},
				{Token: "heading-stack", Value: "system-ui, -apple-system, sans-serif"},
				{Token: "mono-stack", Value: "ui-monospace, 'Cascadia Code', monospace"},
				{Token: "line-height", Value: "1.65"},
			},
			Rules: []string{
				`body {
  font-family: var(--font-stack);
  line-height: var(--line-height);
}`,
				`h1, h2, h3, h4 {
  font-family: var(--heading-stack);
  color: var(--primary-color);
}`,
				`code, pre {
  font-family: var(--mono-stack);
  background: var(--surface);
  border-radius: var(--radius);
}`,
				`pre { padding: var(--spacing-unit); overflow-x: auto; }`,
				`a { color: var(--primary-color); }`,
				`a:hover { color: var(--accent-color); }`,
			},
		},
		{
			Name:     "layout",
			Requires: []string{"core"},
			Defaults: []styles.Default{
				{Token: "content-width", Value: "42rem"},
			},
			Rules: []string{
				`main {
  max-width: var(--content-width);
  margin: 0 auto;
  padding: 0 var(--spacing-unit) calc(3 * var(--spacing-unit));
}`,
				`header.site-header {
  max-width: var(--content-width);
  margin: 0 auto;
  padding: var(--spacing-unit);
  display: flex;
  justify-content: space-between;
  align-items: baseline;
}`,
				`footer.site-footer {
  max-width: var(--content-width);
  margin: 0 auto;
  padding: var(--spacing-unit);
  color: var(--muted-color);
  border-top: 1px solid var(--surface);
}`,
			},
		},
		{
			// Components read tokens resolved by the base chain, so this
			// module imports in the extension phase.
			Name:     "components",
			Requires: []string{"core", "typography"},
			Rules: []string{
				`.post-list { list-style: none; padding: 0; }`,
				`.post-list li {
  display: flex;
  gap: var(--spacing-unit);
  align-items: baseline;
  padding: calc(var(--spacing-unit) / 2) 0;
}`,
				`.post-list time { color: var(--muted-color); white-space: nowrap; }`,
				`.tag {
  display: inline-block;
  background: var(--surface);
  border-radius: var(--radius);
  padding: 0 calc(var(--spacing-unit) / 2);
  color: var(--muted-color);
  font-size: 0.85em;
}`,
				`figure.embed { margin: var(--spacing-unit) 0; text-align: center; }`,
				`figure.embed img { max-width: 100%; border-radius: var(--radius); }`,
				`figure.embed figcaption { color: var(--muted-color); font-size: 0.9em; }`,
				`.profile-card {
  display: flex;
  gap: var(--spacing-unit);
  align-items: center;
  background: var(--surface);
  border-radius: var(--radius);
  padding: var(--spacing-unit);
}`,
				`.profile-card img { width: 64px; height: 64px; border-radius: 50%; }`,
			},
		},
	}
}

func (Theme) Base() []string       { return []string{"core", "typography", "layout"} }
func (Theme) Extensions() []string { return []string{"components"} }

// Templates parses the theme's layout set.
func (Theme) Templates() (*template.Template, error) {
	t := template.New("meadow").Funcs(template.FuncMap{
		"fmtdate": fmtDate,
	})
	for name, body := range layouts {
		var err error
		t, err = t.New(name).Parse(body)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func init() { theme.Register(Theme{}) }
