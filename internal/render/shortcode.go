package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/blogsmith/internal/config"
)

// Shortcodes are `{{< name key="value" >}}` directives resolved before
// Markdown parsing. Unknown shortcodes degrade to an HTML comment and a
// per-entry warning rather than failing the build.

var (
	shortcodeRe = regexp.MustCompile(`\{\{<\s*([a-zA-Z][\w-]*)((?:\s+[\w-]+="[^"]*")*)\s*>\}\}`)
	attrRe      = regexp.MustCompile(`([\w-]+)="([^"]*)"`)
)

// Expander resolves shortcodes against site configuration.
type Expander struct {
	author config.AuthorConfig
}

// NewExpander creates an Expander. The author feeds the profile shortcode.
func NewExpander(author config.AuthorConfig) *Expander {
	return &Expander{author: author}
}

// Expand replaces all shortcodes in body and returns the result plus a
// warning per unknown shortcode.
func (x *Expander) Expand(body []byte) ([]byte, []string) {
	var warnings []string
	out := shortcodeRe.ReplaceAllFunc(body, func(match []byte) []byte {
		groups := shortcodeRe.FindSubmatch(match)
		name := string(groups[1])
		attrs := parseAttrs(string(groups[2]))

		switch name {
		case "figure":
			return []byte(x.figure(attrs))
		case "profile":
			return []byte(x.profile())
		default:
			warnings = append(warnings, fmt.Sprintf("unknown shortcode %q", name))
			return []byte(fmt.Sprintf("<!-- unknown shortcode: %s -->", html.EscapeString(name)))
		}
	})
	return out, warnings
}

func parseAttrs(raw string) map[string]string {
	attrs := map[string]string{}
	for _, m := range attrRe.FindAllStringSubmatch(raw, -1) {
		attrs[m[1]] = m[2]
	}
	return attrs
}

func (x *Expander) figure(attrs map[string]string) string {
	src := html.EscapeString(attrs["src"])
	alt := html.EscapeString(attrs["alt"])
	if alt == "" {
		alt = html.EscapeString(attrs["caption"])
	}

	var b strings.Builder
	b.WriteString(`<figure class="embed"><img src="` + src + `" alt="` + alt + `">`)
	if caption := attrs["caption"]; caption != "" {
		b.WriteString(`<figcaption>` + html.EscapeString(caption) + `</figcaption>`)
	}
	b.WriteString(`</figure>`)
	return b.String()
}

func (x *Expander) profile() string {
	var b strings.Builder
	b.WriteString(`<div class="profile-card">`)
	if x.author.Avatar != "" {
		b.WriteString(`<img src="` + html.EscapeString(x.author.Avatar) + `" alt="` + html.EscapeString(x.author.Name) + `">`)
	}
	b.WriteString(`<div><strong>` + html.EscapeString(x.author.Name) + `</strong>`)
	if x.author.Bio != "" {
		b.WriteString(`<p>` + html.EscapeString(x.author.Bio) + `</p>`)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}
