// Package feeds emits the RSS feed and sitemap for the generated site.
package feeds

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// Site is the feed-level metadata.
type Site struct {
	Title       string
	Description string
	BaseURL     string
	Language    string
}

// RSS renders an RSS 2.0 feed for the given posts. Posts are emitted in
// the order given (callers pass them newest first).
func RSS(site Site, posts []*content.Entry) ([]byte, error) {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		link := absURL(site.BaseURL, p.URLPath())
		pubDate := ""
		if !p.Date.IsZero() {
			pubDate = p.Date.Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Description,
			PubDate:     pubDate,
			GUID:        link,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Title,
			Link:        site.BaseURL,
			Description: site.Description,
			Language:    site.Language,
			Items:       items,
		},
	}
	return encode(feed)
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func absURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + path
}
