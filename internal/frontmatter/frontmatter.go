package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

var delim = []byte("---\n")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input. CRLF input is normalized to LF before
// splitting; generated output never round-trips the original bytes, so the
// original newline style does not need to survive.
func Split(content []byte) (fm []byte, body []byte, had bool, err error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(content, delim) {
		return nil, content, false, nil
	}

	rest := content[len(delim):]
	if bytes.HasPrefix(rest, delim) {
		// Empty frontmatter block.
		return []byte{}, rest[len(delim):], true, nil
	}

	closeSeq := []byte("\n---\n")
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// Allow a closing delimiter at EOF without trailing newline.
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")+1], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	return rest[:idx+1], rest[idx+len(closeSeq):], true, nil
}

// Decode splits content and unmarshals the frontmatter block into out.
//
// Documents without frontmatter decode nothing and return the full input
// as body.
func Decode(content []byte, out any) (body []byte, had bool, err error) {
	fm, body, had, err := Split(content)
	if err != nil {
		return nil, false, err
	}
	if !had || len(fm) == 0 {
		return body, had, nil
	}
	if err := yaml.Unmarshal(fm, out); err != nil {
		return nil, true, err
	}
	return body, true, nil
}

// Encode prepends a `---` delimited YAML frontmatter block, rendered from
// meta, to body. Used by the entry scaffolder.
func Encode(meta any, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(delim)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.Write(delim)
	buf.Write(body)
	return buf.Bytes(), nil
}
