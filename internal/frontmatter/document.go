package frontmatter

import (
	"bytes"
	"errors"
	"strings"
)

// ErrNoFrontMatter is returned by Parse when the content does not open with
// a complete front-matter block.
var ErrNoFrontMatter = errors.New("no front matter block")

const marker = "---"

// Document is a blog post: a front-matter mapping followed by the body.
// The body is kept byte-for-byte as it appeared after the closing marker.
type Document struct {
	FrontMatter *Mapping
	Body        string
}

// Parse splits content into front matter and body.
//
// The front-matter block must start at the very first byte with a "---" line
// and end with another "---" line. A missing or unterminated block yields
// ErrNoFrontMatter; a block that is not valid YAML yields the parse error.
func Parse(content []byte) (*Document, error) {
	text := string(content)

	if !strings.HasPrefix(text, marker+"\n") {
		return nil, ErrNoFrontMatter
	}

	rest := text[len(marker)+1:]
	end := strings.Index(rest, "\n"+marker+"\n")
	if end == -1 {
		return nil, ErrNoFrontMatter
	}

	block := rest[:end]
	body := rest[end+len(marker)+2:]

	mapping, err := ParseMapping([]byte(block))
	if err != nil {
		return nil, err
	}

	return &Document{
		FrontMatter: mapping,
		Body:        body,
	}, nil
}

// Build reconstructs the post: marker, serialized front matter, marker,
// original body.
func (d *Document) Build() []byte {
	var buf bytes.Buffer
	buf.WriteString(marker + "\n")
	buf.Write(d.FrontMatter.Encode())
	buf.WriteString(marker + "\n")
	buf.WriteString(d.Body)
	return buf.Bytes()
}
