package linkcheck

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Issue is one broken internal link.
type Issue struct {
	Page string // output-relative HTML file containing the link
	URL  string // the unresolvable link
}

func (i Issue) String() string { return fmt.Sprintf("%s: broken link %s", i.Page, i.URL) }

// Verify walks every HTML file in outputDir and checks that internal
// links resolve to files in the same tree. External links are not
// fetched.
func Verify(outputDir, baseURL string) ([]Issue, error) {
	var issues []Issue

	err := filepath.WalkDir(outputDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return err
		}

		rel, err := filepath.Rel(outputDir, p)
		if err != nil {
			return err
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		links, err := ExtractLinks(f, baseURL)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", rel, err)
		}

		for _, l := range links {
			if !l.IsInternal {
				continue
			}
			if !resolves(outputDir, l.URL) {
				issues = append(issues, Issue{Page: filepath.ToSlash(rel), URL: l.URL})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// resolves reports whether an internal link target exists in the output
// tree. Directory-style URLs resolve through their index.html.
func resolves(outputDir, raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	target := u.Path
	if target == "" { // pure fragment or query
		return true
	}
	target = path.Clean("/" + target)

	candidates := []string{
		filepath.Join(outputDir, filepath.FromSlash(target)),
		filepath.Join(outputDir, filepath.FromSlash(target), "index.html"),
	}
	// A bare directory without index.html does not serve.
	for _, c := range candidates {
		if st, err := os.Stat(c); err == nil && !st.IsDir() {
			return true
		}
	}
	return false
}
