package meadow

import "time"

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// layouts maps template name to source. "post", "page", "index" and "tag"
// are complete documents; the rest are shared partials.
var layouts = map[string]string{
	"head": `<!DOCTYPE html>
<html lang="{{.Site.Language}}" data-theme="light">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .Title}}{{.Title}} · {{end}}{{.Site.Title}}</title>
{{- if .Description}}
<meta name="description" content="{{.Description}}">
{{- end}}
<link rel="stylesheet" href="/assets/site.css">
<link rel="alternate" type="application/rss+xml" title="{{.Site.Title}}" href="/feed.xml">
{{- if .Math}}
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.css">
{{- end}}
</head>
<body>`,

	"header": `<header class="site-header">
<a href="/"><strong>{{.Site.Title}}</strong></a>
<nav><a href="/">posts</a> · <a href="/about/">about</a> · <a href="/feed.xml">rss</a></nav>
</header>`,

	"footer": `<footer class="site-footer">
<p>{{if .Site.Author.Name}}{{.Site.Author.Name}} · {{end}}{{.Site.Title}}</p>
</footer>
</body>
</html>`,

	"postlist": `<ul class="post-list">
{{- range .Posts}}
<li><time datetime="{{.Date.Format "2006-01-02"}}">{{fmtdate .Date}}</time>
<span><a href="{{.URL}}">{{.Title}}</a>
{{- range .Tags}} <span class="tag">{{.}}</span>{{- end}}</span></li>
{{- end}}
</ul>`,

	"post": `{{template "head" .}}
{{template "header" .}}
<main>
<article>
<h1>{{.Title}}</h1>
<p class="meta"><time datetime="{{.Date.Format "2006-01-02"}}">{{fmtdate .Date}}</time>
{{- range .Authors}} · {{.}}{{- end}}
{{- range .Tags}} <span class="tag">{{.}}</span>{{- end}}</p>
{{.Content}}
</article>
</main>
{{template "footer" .}}`,

	"page": `{{template "head" .}}
{{template "header" .}}
<main>
<article>
<h1>{{.Title}}</h1>
{{.Content}}
</article>
</main>
{{template "footer" .}}`,

	"index": `{{template "head" .}}
{{template "header" .}}
<main>
{{- if .Site.Description}}
<p>{{.Site.Description}}</p>
{{- end}}
{{template "postlist" .}}
</main>
{{template "footer" .}}`,

	"tag": `{{template "head" .}}
{{template "header" .}}
<main>
<h1>Tagged “{{.Tag}}”</h1>
{{template "postlist" .}}
</main>
{{template "footer" .}}`,
}
