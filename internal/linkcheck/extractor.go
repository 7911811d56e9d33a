// Package linkcheck verifies that internal links in rendered HTML resolve
// to files the build actually produced.
package linkcheck

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Link is a single extracted reference from an HTML document.
type Link struct {
	URL        string
	Tag        string // a, img, link, script
	Attribute  string // href or src
	IsInternal bool
}

// ExtractLinks parses HTML and collects link-like attributes.
func ExtractLinks(r io.Reader, baseURL string) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a", "link":
				if href := attr(n, "href"); href != "" {
					links = append(links, Link{URL: href, Tag: n.Data, Attribute: "href", IsInternal: isInternal(href, base)})
				}
			case "img", "script":
				if src := attr(n, "src"); src != "" {
					links = append(links, Link{URL: src, Tag: n.Data, Attribute: "src", IsInternal: isInternal(src, base)})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func isInternal(raw string, base *url.URL) bool {
	if strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "mailto:") || strings.HasPrefix(raw, "tel:") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Host == "" {
		return true
	}
	return base.Host != "" && u.Host == base.Host
}
