package feeds

import (
	"encoding/xml"

	"git.home.luguber.info/inful/blogsmith/internal/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap renders a sitemap covering the homepage, tag pages and every
// published entry.
func Sitemap(site Site, entries []*content.Entry, tags []string) ([]byte, error) {
	urls := []sitemapURL{{Loc: absURL(site.BaseURL, "/")}}

	for _, t := range tags {
		urls = append(urls, sitemapURL{Loc: absURL(site.BaseURL, "/tags/"+t+"/")})
	}
	for _, e := range entries {
		u := sitemapURL{Loc: absURL(site.BaseURL, e.URLPath())}
		if !e.Date.IsZero() {
			u.LastMod = e.Date.Format("2006-01-02")
		}
		urls = append(urls, u)
	}

	return encode(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}
